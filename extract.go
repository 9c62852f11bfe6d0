package taxlot

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultPdfToText is the default text converter binary, from poppler-utils.
const DefaultPdfToText = "pdftotext"

// Extractor returns the plain text content of a statement file.
type Extractor interface {
	Extract(path string) (string, error)
}

// PdfToText extracts text by running pdftotext in raw mode.
type PdfToText struct {
	// Bin is the pdftotext binary name or path. DefaultPdfToText if empty.
	Bin string
}

// Extract runs `pdftotext -raw path -` and returns its standard output.
//
// Files with a ".txt" extension are considered already extracted and are
// returned as is.
func (p PdfToText) Extract(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("cannot read text statement %q: %w", path, err)
		}
		return string(content), nil
	}

	bin := p.Bin
	if bin == "" {
		bin = DefaultPdfToText
	}
	lp, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("text converter %q not found: %w", bin, err)
	}
	Logger.Debug().Str("bin", lp).Str("file", path).Msg("extracting text")

	cmd := exec.Command(lp, "-raw", path, "-")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s failed on %q: %w: %s", bin, path, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s failed on %q: %w", bin, path, err)
	}
	return string(out), nil
}

// ParseFiles extracts and parses all the files in order, and returns all
// their records.
//
// The first file that cannot be extracted aborts the parsing.
func ParseFiles(x Extractor, paths ...string) ([]Record, error) {
	var records []Record
	for _, path := range paths {
		text, err := x.Extract(path)
		if err != nil {
			return nil, err
		}
		found := ParseText(text)
		Logger.Debug().Str("file", path).Int("records", len(found)).Msg("parsed statement")
		records = append(records, found...)
	}
	return records, nil
}

// Options control the post-processing of records.
type Options struct {
	Sort  bool // sort records.
	Group bool // group equivalent lots, implies Sort.
}

// Process applies the grouping and sorting options to records.
func (o Options) Process(records []Record) ([]Record, error) {
	if o.Group {
		var err error
		if records, err = Group(records); err != nil {
			return nil, err
		}
	}
	if o.Sort || o.Group {
		records = Sort(records)
	}
	return records, nil
}
