package csvio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurimetrics/fjcnorm/internal/domain/commission"
)

func intPtr(v int) *int { return &v }

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Write(commission.Row{
		Judge:     "Smith<Jane",
		Circuit:   "2",
		Party:     intPtr(1),
		StartYear: intPtr(1995),
		EndYear:   intPtr(2024),
	}))
	require.NoError(t, w.Write(commission.Row{
		Judge:   "Doe<John",
		Circuit: "CIT",
		// nil Party, StartYear, EndYear render as empty cells
	}))
	require.NoError(t, w.Flush())

	want := "Judge,Circuit,Party,StartYear,EndYear\n" +
		"Smith<Jane,2,1,1995,2024\n" +
		"Doe<John,CIT,,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriterRepublicanZero(t *testing.T) {
	// Party 0 must render as "0", not as an empty cell.
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Write(commission.Row{
		Judge:     "Moore<John",
		Circuit:   "10",
		Party:     intPtr(0),
		StartYear: intPtr(1985),
		EndYear:   intPtr(1996),
	}))
	require.NoError(t, w.Flush())

	assert.Contains(t, buf.String(), "Moore<John,10,0,1985,1996\n")
}
