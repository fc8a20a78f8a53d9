// Package runlog keeps an append-only CSV history of reconciliation runs
// next to the files they updated.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/checkmatch-dev/checkmatch/internal/match"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp           time.Time
	RunID               string
	TargetFile          string
	TotalRows           int
	MatchedRows         int
	UnmatchedRows       int
	VendorNamesReplaced int
	SkippedRows         int
}

// Header is the CSV header for checkmatch-log.csv.
const Header = "timestamp,run_id,target_file,total_rows,matched_rows,unmatched_rows,vendor_names_replaced,skipped_rows"

const (
	numFields    = 8
	logFile      = "checkmatch-log.csv"
	colTimestamp = 0
	colRunID     = 1
	colTarget    = 2
	colTotal     = 3
	colMatched   = 4
	colUnmatched = 5
	colReplaced  = 6
	colSkipped   = 7
)

// New builds a log entry for a finished run with a fresh run ID.
func New(targetFile string, summary match.Summary) Entry {
	return Entry{
		Timestamp:           time.Now().UTC(),
		RunID:               uuid.NewString(),
		TargetFile:          targetFile,
		TotalRows:           summary.TotalRows,
		MatchedRows:         summary.MatchedRows,
		UnmatchedRows:       summary.UnmatchedRows,
		VendorNamesReplaced: summary.VendorNamesReplaced,
		SkippedRows:         summary.SkippedRows,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colTarget] = e.TargetFile
	row[colTotal] = strconv.Itoa(e.TotalRows)
	row[colMatched] = strconv.Itoa(e.MatchedRows)
	row[colUnmatched] = strconv.Itoa(e.UnmatchedRows)
	row[colReplaced] = strconv.Itoa(e.VendorNamesReplaced)
	row[colSkipped] = strconv.Itoa(e.SkippedRows)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 5)
	for i, col := range []int{colTotal, colMatched, colUnmatched, colReplaced, colSkipped} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing %q: %w", record[col], err)
		}
		counts[i] = n
	}

	return Entry{
		Timestamp:           ts,
		RunID:               record[colRunID],
		TargetFile:          record[colTarget],
		TotalRows:           counts[0],
		MatchedRows:         counts[1],
		UnmatchedRows:       counts[2],
		VendorNamesReplaced: counts[3],
		SkippedRows:         counts[4],
	}, nil
}

// Append writes entries to <dir>/checkmatch-log.csv, creating the file and
// header if needed.
func Append(dir string, entries []Entry) error {
	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dir>/checkmatch-log.csv.
// Returns nil if the file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
