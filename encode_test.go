package taxlot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/taxlot/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "Category,RefNumber,PlanNumber,Description,CUSIP,Quantity,DateAcquired,DateSold,GrossProceeds,CostBasis\r\n"

func TestEncodeCSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeCSV(&b, []Record{alphabet}))
	want := csvHeader +
		`Short Term – Noncovered Securities,1234,R18,ALPHABET INC CL C,12345A678,1.000000,01/01/20,02/01/20,"$2,000.00","$1,999.00"` + "\r\n"
	assert.Equal(t, want, b.String())
}

func TestEncodeCSVEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeCSV(&b, nil))
	assert.Equal(t, csvHeader, b.String())
}

func TestCSVRoundTrip(t *testing.T) {
	records := ParseText(readStatement(t))
	quoted := alphabet
	quoted.Description = `ACME, "THE" CORP`
	records = append(records, quoted)

	var b bytes.Buffer
	require.NoError(t, EncodeCSV(&b, records))
	got, err := DecodeCSV(&b)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestEncodeTXF(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeTXF(&b, []Record{alphabet}, date.MustParse("2020-03-15")))
	want := strings.Join([]string{
		"V042",
		"A mssb_1099b_to_txf",
		"D 03/15/2020",
		"^",
		"TD",
		"N711",
		"C1",
		"L1",
		"P1234 R18 ALPHABET INC CL C",
		"D01/01/20",
		"D02/01/20",
		"$1,999.00",
		"$2,000.00",
		"$",
		"^",
	}, "\n") + "\n"
	assert.Equal(t, want, b.String())
}

func TestEncodeTXFLongTermWithoutReference(t *testing.T) {
	r := alphabet
	r.Category = LongTermNoncovered
	r.RefNumber = ""
	r.PlanNumber = ""

	var b bytes.Buffer
	require.NoError(t, EncodeTXF(&b, []Record{r}, date.New(2021, 1, 2)))
	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, "D 01/02/2021", lines[2])
	assert.Equal(t, "N713", lines[5])
	assert.Equal(t, "PALPHABET INC CL C", lines[8])
}

func TestEncodeTXFUnknownCategory(t *testing.T) {
	r := alphabet
	r.Category = "Short Term – Covered Securities"

	var b bytes.Buffer
	err := EncodeTXF(&b, []Record{r}, date.New(2021, 1, 2))
	assert.True(t, errors.Is(err, ErrUnknownCategory), "got %v", err)
	assert.Empty(t, b.String())
}

func TestTXFDescription(t *testing.T) {
	tests := []struct {
		ref, plan, desc string
		want            string
	}{
		{"1234", "R18", "ALPHABET INC CL C", "1234 R18 ALPHABET INC CL C"},
		{"1234", "", "ALPHABET INC CL C", "1234 ALPHABET INC CL C"},
		{"", "R18", "ALPHABET INC CL C", "R18 ALPHABET INC CL C"},
		{"", "", "ALPHABET INC CL C", "ALPHABET INC CL C"},
	}
	for _, tt := range tests {
		r := Record{RefNumber: tt.ref, PlanNumber: tt.plan, Description: tt.desc}
		assert.Equal(t, tt.want, r.TXFDescription())
	}
}

func TestEncodeJSONL(t *testing.T) {
	grouped := alphabet
	grouped.RefNumber, grouped.PlanNumber = "", ""

	var b bytes.Buffer
	require.NoError(t, EncodeJSONL(&b, []Record{alphabet, grouped}))
	want := `{"category":"Short Term – Noncovered Securities","refNumber":"1234","planNumber":"R18","description":"ALPHABET INC CL C","cusip":"12345A678","quantity":"1.000000","dateAcquired":"01/01/20","dateSold":"02/01/20","grossProceeds":"$2,000.00","costBasis":"$1,999.00"}
{"category":"Short Term – Noncovered Securities","description":"ALPHABET INC CL C","cusip":"12345A678","quantity":"1.000000","dateAcquired":"01/01/20","dateSold":"02/01/20","grossProceeds":"$2,000.00","costBasis":"$1,999.00"}
`
	assert.Equal(t, want, b.String())

	got, err := DecodeJSONL(&b)
	require.NoError(t, err)
	assert.Equal(t, []Record{alphabet, grouped}, got)
}

func TestDecodeJSONLInvalid(t *testing.T) {
	_, err := DecodeJSONL(strings.NewReader("{\"category\":\n"))
	assert.Error(t, err)
}

func TestXLSXRoundTrip(t *testing.T) {
	records := ParseText(readStatement(t))
	grouped, err := Group(records)
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, EncodeXLSX(&b, grouped))
	got, err := DecodeXLSX(&b)
	require.NoError(t, err)
	assert.Equal(t, grouped, got)
}

func TestCategoryTXFCode(t *testing.T) {
	code, err := ShortTermNoncovered.TXFCode()
	require.NoError(t, err)
	assert.Equal(t, "711", code)

	code, err = LongTermNoncovered.TXFCode()
	require.NoError(t, err)
	assert.Equal(t, "713", code)

	_, err = Category("Total").TXFCode()
	assert.ErrorIs(t, err, ErrUnknownCategory)
	for _, c := range Categories {
		_, err := c.TXFCode()
		assert.NoError(t, err, c)
	}
}
