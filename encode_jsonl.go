package taxlot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON writes the record fields in a stable order. Empty reference
// and plan numbers are omitted.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", r.Category)
	w.Optional("refNumber", r.RefNumber)
	w.Optional("planNumber", r.PlanNumber)
	w.Append("description", r.Description)
	w.Append("cusip", r.CUSIP)
	w.Append("quantity", r.Quantity)
	w.Append("dateAcquired", r.DateAcquired)
	w.Append("dateSold", r.DateSold)
	w.Append("grossProceeds", r.GrossProceeds)
	w.Append("costBasis", r.CostBasis)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a record written by MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var jr struct {
		Category      Category `json:"category"`
		RefNumber     string   `json:"refNumber"`
		PlanNumber    string   `json:"planNumber"`
		Description   string   `json:"description"`
		CUSIP         string   `json:"cusip"`
		Quantity      string   `json:"quantity"`
		DateAcquired  string   `json:"dateAcquired"`
		DateSold      string   `json:"dateSold"`
		GrossProceeds string   `json:"grossProceeds"`
		CostBasis     string   `json:"costBasis"`
	}
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	*r = Record(jr)
	return nil
}

// EncodeJSONL writes records to w, one JSON object per line.
func EncodeJSONL(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		line, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("cannot encode record %q: %w", r.Description, err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DecodeJSONL reads records written by EncodeJSONL. Empty lines are skipped.
func DecodeJSONL(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse record line %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
