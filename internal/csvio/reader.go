// Package csvio reads the FJC commission-centered CSV export and writes the
// normalized output table. Columns are located by header name so the export
// may carry extra columns in any order.
package csvio

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jurimetrics/fjcnorm/internal/domain/commission"
	apperrors "github.com/jurimetrics/fjcnorm/pkg/errors"
)

// Required input columns. Their presence is checked once against the header;
// a missing column is a fatal, unrecovered failure.
var requiredColumns = []string{
	"Judge Name",
	"Seat ID",
	"Court Name",
	"Party of Appointing President",
	"Commission Date",
	"Recess Appointment Date",
	"Termination Date",
}

// Reader streams commission records out of the export. It is a thin layer
// over encoding/csv with header-name column resolution.
type Reader struct {
	cr   *csv.Reader
	idx  map[string]int
	line int // 1-based data row counter, header excluded
}

// NewReader consumes the header row of r and resolves the required columns.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	// Ragged rows are tolerated by the csv layer; Next checks that each row
	// reaches the columns it actually needs.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInputMalformed, "read header row")
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, apperrors.Newf(apperrors.CodeInputMalformed, "input is missing required column %q", col)
		}
	}

	return &Reader{cr: cr, idx: idx}, nil
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (commission.Record, error) {
	fields, err := r.cr.Read()
	if err == io.EOF {
		return commission.Record{}, io.EOF
	}
	if err != nil {
		return commission.Record{}, apperrors.Wrapf(err, apperrors.CodeInputMalformed, "read row %d", r.line+1)
	}
	r.line++

	get := func(col string) string { return fields[r.idx[col]] }
	for _, col := range requiredColumns {
		if r.idx[col] >= len(fields) {
			return commission.Record{}, apperrors.Newf(apperrors.CodeInputMalformed,
				"row %d has %d fields, column %q is out of range", r.line, len(fields), col)
		}
	}

	return commission.Record{
		JudgeName:       get("Judge Name"),
		SeatID:          get("Seat ID"),
		CourtName:       get("Court Name"),
		Party:           get("Party of Appointing President"),
		CommissionDate:  get("Commission Date"),
		RecessDate:      get("Recess Appointment Date"),
		TerminationDate: get("Termination Date"),
	}, nil
}

// Line reports the number of data rows read so far.
func (r *Reader) Line() int { return r.line }
