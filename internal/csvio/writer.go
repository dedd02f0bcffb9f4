package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jurimetrics/fjcnorm/internal/domain/commission"
	apperrors "github.com/jurimetrics/fjcnorm/pkg/errors"
)

// outputHeader is the output column set, in order. SeatID is carried on the
// in-memory row for diagnostics but is not part of the output contract.
var outputHeader = []string{"Judge", "Circuit", "Party", "StartYear", "EndYear"}

// Writer emits normalized rows as CSV. Nil year/party values render as empty
// cells.
type Writer struct {
	cw *csv.Writer
}

// NewWriter wraps w and writes the header row immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(outputHeader); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeOutputWrite, "write header row")
	}
	return &Writer{cw: cw}, nil
}

// Write emits one normalized commission row.
func (w *Writer) Write(row commission.Row) error {
	record := []string{
		row.Judge,
		row.Circuit,
		intCell(row.Party),
		intCell(row.StartYear),
		intCell(row.EndYear),
	}
	if err := w.cw.Write(record); err != nil {
		return apperrors.Wrapf(err, apperrors.CodeOutputWrite, "write row for %q", row.Judge)
	}
	return nil
}

// Flush drains buffered rows to the underlying writer and reports any write
// error encountered during the run.
func (w *Writer) Flush() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeOutputWrite, "flush output")
	}
	return nil
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
