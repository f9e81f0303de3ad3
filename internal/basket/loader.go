package basket

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RowError reports a malformed row in a transactions CSV. The load fails
// on the first malformed row; no partial collection is returned.
type RowError struct {
	Line   int    // 1-based line number, header included
	Reason string // what was wrong with the row
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// ReadCollection reads a two-column transactions table (basket id, item id)
// from r and builds a Collection. The first row is a header and is skipped.
// Fields are whitespace-trimmed; duplicate (basket, item) rows are harmless
// since baskets are sets.
func ReadCollection(r io.Reader) (Collection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width is validated here, with line numbers
	cr.TrimLeadingSpace = true

	coll := make(Collection)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read transactions: %w", err)
		}
		line++
		if line == 1 {
			continue // header
		}

		if len(record) != 2 {
			return nil, &RowError{Line: line, Reason: fmt.Sprintf("expected 2 fields (basket, item), got %d", len(record))}
		}
		basketID := strings.TrimSpace(record[0])
		item := strings.TrimSpace(record[1])
		if basketID == "" || item == "" {
			return nil, &RowError{Line: line, Reason: "empty basket or item field"}
		}

		coll.Add(basketID, item)
	}

	return coll, nil
}

// LoadCSV reads a transactions CSV file into a Collection.
func LoadCSV(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer f.Close()

	coll, err := ReadCollection(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coll, nil
}
