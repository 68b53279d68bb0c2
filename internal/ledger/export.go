// History export in spreadsheet-friendly formats.
package ledger

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dukaforge/fincalc/pkg/types"
)

// ExportCSV writes the full history as CSV with a header row, the
// spreadsheet-interchange form of the ledger.
func (s *Store) ExportCSV(w io.Writer) error {
	entries, err := s.List(0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"entry_id", "created_at", "operation", "inputs", "result"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.EntryID,
			e.CreatedAt.Format(timeLayout),
			e.Operation,
			e.Inputs,
			strconv.FormatFloat(e.Result, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON writes the full history as one indented JSON array.
func (s *Store) ExportJSON(w io.Writer) error {
	entries, err := s.List(0)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*types.Entry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
