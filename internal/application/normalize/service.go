// Package normalize orchestrates one full normalization pass: it streams the
// FJC export through the commission normalizer and writes the resulting
// table, collecting run counters along the way.
package normalize

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jurimetrics/fjcnorm/internal/csvio"
	"github.com/jurimetrics/fjcnorm/internal/domain/commission"
	"github.com/jurimetrics/fjcnorm/internal/logging"
	apperrors "github.com/jurimetrics/fjcnorm/pkg/errors"
)

// Options configures a single run.
type Options struct {
	// Input is the path of the FJC commission-centered CSV export.
	Input string

	// Output is the path the normalized table is written to. An existing file
	// is truncated.
	Output string

	// AsOfYear substitutes for the end year of ongoing commissions.
	// Zero means the wall-clock year.
	AsOfYear int
}

// Result carries the counters of a completed (or aborted) run.
type Result struct {
	// RowsRead is the number of data rows consumed from the input.
	RowsRead int

	// RowsEmitted is the number of output rows written, alias expansions
	// included.
	RowsEmitted int

	// RowsDropped is the number of input rows that contributed no output
	// (unmapped court or no start date).
	RowsDropped int

	// ByCircuit counts emitted rows per circuit code.
	ByCircuit map[string]int
}

// Service runs normalization passes. Construct with NewService; the zero
// value is not usable.
type Service struct {
	logger logging.Logger
}

// NewService returns a Service logging through logger. A nil logger is
// replaced by a no-op one.
func NewService(logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{logger: logger.Named("normalize")}
}

// Run executes one full pass. The input is consumed sequentially; the first
// structural failure aborts the run with no partial-row recovery beyond
// whatever was already flushed. The context is consulted between rows, so a
// cancelled ctx stops the pass at the next row boundary.
func (s *Service) Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	log := s.logger.With(logging.String("run_id", uuid.NewString()))
	log.Info("starting normalization pass",
		logging.String("input", opts.Input),
		logging.String("output", opts.Output),
	)

	res := Result{ByCircuit: make(map[string]int)}

	in, err := os.Open(opts.Input)
	if err != nil {
		return res, apperrors.Wrapf(err, apperrors.CodeInputOpen, "open input %q", opts.Input)
	}
	defer in.Close()

	reader, err := csvio.NewReader(in)
	if err != nil {
		return res, err
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return res, apperrors.Wrapf(err, apperrors.CodeOutputCreate, "create output %q", opts.Output)
	}
	defer out.Close()

	writer, err := csvio.NewWriter(out)
	if err != nil {
		return res, err
	}

	norm := commission.NewNormalizer(opts.AsOfYear)
	log.Debug("normalizer ready", logging.Int("as_of_year", norm.AsOfYear()))

	for {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, err
		}
		res.RowsRead++

		rows := norm.Next(rec)
		if len(rows) == 0 {
			res.RowsDropped++
			log.Debug("row dropped",
				logging.Int("row", reader.Line()),
				logging.String("judge", rec.JudgeName),
				logging.String("seat_id", rec.SeatID),
				logging.String("court", rec.CourtName),
			)
			continue
		}
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return res, err
			}
			res.RowsEmitted++
			res.ByCircuit[row.Circuit]++
		}
	}

	if err := writer.Flush(); err != nil {
		return res, err
	}
	if err := out.Close(); err != nil {
		return res, apperrors.Wrapf(err, apperrors.CodeOutputWrite, "close output %q", opts.Output)
	}

	log.Info("normalization pass complete",
		logging.Int("rows_read", res.RowsRead),
		logging.Int("rows_emitted", res.RowsEmitted),
		logging.Int("rows_dropped", res.RowsDropped),
		logging.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
