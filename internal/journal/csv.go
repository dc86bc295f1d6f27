package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,description,debit_account,credit_account,amount,reference,posted_at"

const (
	numFields   = 8
	colEntryID  = 0
	colDate     = 1
	colDesc     = 2
	colDebit    = 3
	colCredit   = 4
	colAmount   = 5
	colRef      = 6
	colPostedAt = 7
)

// ReadEntries reads all entries from a journal.csv reader.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing journal.csv writer (no header).
func AppendEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colEntryID] = e.ID
	row[colDate] = e.Date.Format(DateFormat)
	row[colDesc] = e.Description
	row[colDebit] = e.DebitAccountID
	row[colCredit] = e.CreditAccountID
	row[colAmount] = e.Amount.StringFixed(2)
	row[colRef] = e.Reference
	if !e.PostedAt.IsZero() {
		row[colPostedAt] = e.PostedAt.UTC().Format(time.RFC3339)
	}
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(DateFormat, record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var postedAt time.Time
	if record[colPostedAt] != "" {
		postedAt, err = time.Parse(time.RFC3339, record[colPostedAt])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing posted_at %q: %w", record[colPostedAt], err)
		}
	}

	return model.Entry{
		ID:              record[colEntryID],
		Date:            date,
		Description:     record[colDesc],
		DebitAccountID:  record[colDebit],
		CreditAccountID: record[colCredit],
		Amount:          amount,
		Reference:       record[colRef],
		PostedAt:        postedAt,
	}, nil
}
