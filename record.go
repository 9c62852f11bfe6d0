package taxlot

import "strings"

// Record is a single sold tax lot, as reported in a 1099-B statement.
//
// Records are values: functions in this package never modify a Record they
// receive, they return new ones.
type Record struct {
	Category      Category `csv:"Category"`
	RefNumber     string   `csv:"RefNumber"`  // optional
	PlanNumber    string   `csv:"PlanNumber"` // optional
	Description   string   `csv:"Description"`
	CUSIP         string   `csv:"CUSIP"`
	Quantity      string   `csv:"Quantity"`
	DateAcquired  string   `csv:"DateAcquired"` // a date or a literal like "VARIOUS"
	DateSold      string   `csv:"DateSold"`
	GrossProceeds string   `csv:"GrossProceeds"`
	CostBasis     string   `csv:"CostBasis"`
}

// Fields is the list of record field names, in output order.
var Fields = []string{
	"Category", "RefNumber", "PlanNumber", "Description", "CUSIP", "Quantity",
	"DateAcquired", "DateSold", "GrossProceeds", "CostBasis",
}

// values returns the record field values in the Fields order.
func (r Record) values() []string {
	return []string{
		string(r.Category), r.RefNumber, r.PlanNumber, r.Description, r.CUSIP, r.Quantity,
		r.DateAcquired, r.DateSold, r.GrossProceeds, r.CostBasis,
	}
}

// groupKey identifies records describing the same sale, regardless of the lot.
type groupKey struct {
	category     Category
	description  string
	cusip        string
	dateAcquired string
	dateSold     string
}

func (r Record) key() groupKey {
	return groupKey{r.Category, r.Description, r.CUSIP, r.DateAcquired, r.DateSold}
}

// TXFDescription returns the description reported in TXF files: the
// reference number, the plan number and the description joined by a single
// space, empty parts being omitted.
func (r Record) TXFDescription() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{r.RefNumber, r.PlanNumber, r.Description} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
