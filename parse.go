package taxlot

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Logger receives the parsing details. It discards everything until an
// application sets it.
var Logger = zerolog.Nop()

// sectionExpr matches a section of sales for one category.
//
// The closing line can be "Total Short Term – Noncovered Securities" or
// "Total Short Term Noncovered Securities" (without the dash) so only
// "^Total" is matched.
var sectionExpr = regexp.MustCompile(`(?ms)(` + categoriesPattern() + `)(.*?)^Total`)

func categoriesPattern() string {
	labels := make([]string, 0, len(Categories))
	for _, c := range Categories {
		labels = append(labels, regexp.QuoteMeta(string(c)))
	}
	return strings.Join(labels, "|")
}

// rowExpr matches a single sold lot.
//
// Words are Unicode letters and digits. A row can be spread over several
// lines:
//
//	1234 R18 ALPHABET INC CL C
//	12345A678
//	1.000000 VARIOUS 02/01/20 $2,000.00 $1,999.00
var rowExpr = regexp.MustCompile(`(?m)^` +
	`(?:(\d+)` + sep + `)?` + // RefNumber (optional)
	`(?:([a-zA-Z]\d\d)` + sep + `)?` + // PlanNumber (optional)
	`([\p{L}\p{N}_ ]+)` + sep + // Description
	`([\p{L}\p{N}_]+)` + sep + // CUSIP
	`(\d+\.\d+)` + sep + // Quantity
	`(\d+/\d+/\d+|[\p{L}\p{N}_]+)` + sep + // DateAcquired
	`(\d+/\d+/\d+)` + sep + // DateSold
	`(\$[0-9,.]+)` + sep + // GrossProceeds
	`(\$[0-9,.]+)[\s\p{Zs}]`) // CostBasis

// sep separates the fields of a row. pdftotext may output non-breaking
// spaces, which \s alone does not match.
const sep = `[\s\p{Zs}]+`

// Section is the text reported under a category label.
type Section struct {
	Category Category
	Body     string
}

// Sections returns all the category sections found in text, in order.
//
// A section runs from a category label to the next line starting with
// "Total". A label without such a line after it does not start a section.
func Sections(text string) []Section {
	var sections []Section
	for _, m := range sectionExpr.FindAllStringSubmatch(text, -1) {
		sections = append(sections, Section{Category: Category(m[1]), Body: m[2]})
	}
	return sections
}

// ParseSection returns the records found in a section body, in order.
//
// Lines that do not match a record (headers, subtotals, page breaks) are
// skipped. Spaces separating the description from the CUSIP are not part of
// the description.
func ParseSection(s Section) []Record {
	var records []Record
	for _, m := range rowExpr.FindAllStringSubmatch(s.Body, -1) {
		records = append(records, Record{
			Category:      s.Category,
			RefNumber:     m[1],
			PlanNumber:    m[2],
			Description:   strings.TrimRight(m[3], " "),
			CUSIP:         m[4],
			Quantity:      m[5],
			DateAcquired:  m[6],
			DateSold:      m[7],
			GrossProceeds: m[8],
			CostBasis:     m[9],
		})
	}
	Logger.Debug().Str("category", string(s.Category)).Int("records", len(records)).Msg("parsed section")
	return records
}

// ParseText returns all the records found in a statement text.
//
// A text with no recognizable section has no record, this is not an error.
func ParseText(text string) []Record {
	var records []Record
	sections := Sections(text)
	if len(sections) == 0 {
		Logger.Debug().Msg("no category section found")
	}
	for _, s := range sections {
		records = append(records, ParseSection(s)...)
	}
	return records
}
