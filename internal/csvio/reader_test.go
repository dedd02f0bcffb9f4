package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jurimetrics/fjcnorm/pkg/errors"
)

const canonicalHeader = "Judge Name,Seat ID,Court Name,Party of Appointing President,Commission Date,Recess Appointment Date,Termination Date"

func TestReaderCanonicalOrder(t *testing.T) {
	in := canonicalHeader + "\n" +
		`"Smith, Jane",9-1,U.S. Court of Appeals for the Ninth Circuit,Democratic,1995-03-01,,2010-06-30` + "\n"

	r, err := NewReader(strings.NewReader(in))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Smith, Jane", rec.JudgeName)
	assert.Equal(t, "9-1", rec.SeatID)
	assert.Equal(t, "U.S. Court of Appeals for the Ninth Circuit", rec.CourtName)
	assert.Equal(t, "Democratic", rec.Party)
	assert.Equal(t, "1995-03-01", rec.CommissionDate)
	assert.Empty(t, rec.RecessDate)
	assert.Equal(t, "2010-06-30", rec.TerminationDate)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 1, r.Line())
}

func TestReaderReorderedAndExtraColumns(t *testing.T) {
	in := "nid,Court Name,Judge Name,Termination Date,Recess Appointment Date,Commission Date,Party of Appointing President,Seat ID,Birth Year\n" +
		`1385,U.S. Court of International Trade,"Restani, Jane",,,1983-11-21,Republican,CIT-3,1948` + "\n"

	r, err := NewReader(strings.NewReader(in))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Restani, Jane", rec.JudgeName)
	assert.Equal(t, "CIT-3", rec.SeatID)
	assert.Equal(t, "U.S. Court of International Trade", rec.CourtName)
	assert.Equal(t, "1983-11-21", rec.CommissionDate)
}

func TestReaderHeaderWhitespace(t *testing.T) {
	in := strings.ReplaceAll(canonicalHeader, "Judge Name", " Judge Name ") + "\n"
	_, err := NewReader(strings.NewReader(in))
	assert.NoError(t, err)
}

func TestReaderMissingColumn(t *testing.T) {
	in := "Judge Name,Seat ID,Court Name,Commission Date,Recess Appointment Date,Termination Date\n"

	_, err := NewReader(strings.NewReader(in))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInputMalformed, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "Party of Appointing President")
}

func TestReaderEmptyInput(t *testing.T) {
	_, err := NewReader(strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInputMalformed, apperrors.CodeOf(err))
}

func TestReaderShortRow(t *testing.T) {
	in := canonicalHeader + "\n" + `"Smith, Jane",9-1` + "\n"

	r, err := NewReader(strings.NewReader(in))
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInputMalformed, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "row 1")
}
