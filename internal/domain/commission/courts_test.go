package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircuitFor(t *testing.T) {
	cases := map[string]string{
		"U.S. Court of Appeals for the First Circuit":                "1",
		"U.S. Court of Appeals for the Ninth Circuit":                "9",
		"U.S. Court of Appeals for the Eleventh Circuit":             "11",
		"U.S. Court of Appeals for the District of Columbia Circuit": "DC",
		"U.S. Court of Appeals for the Federal Circuit":              "FC",
		"U.S. Court of International Trade":                          "CIT",
	}
	for court, want := range cases {
		assert.Equal(t, want, CircuitFor(court), court)
	}
}

func TestCircuitForUnknown(t *testing.T) {
	assert.Empty(t, CircuitFor("Supreme Court of the United States"))
	assert.Empty(t, CircuitFor("U.S. District Court for the District of Columbia"))
	assert.Empty(t, CircuitFor(""))
	// Court names match exactly; near misses do not map.
	assert.Empty(t, CircuitFor("US Court of Appeals for the Ninth Circuit"))
}

func TestCourtTableIsComplete(t *testing.T) {
	assert.Len(t, courtCircuits, 14)

	seen := map[string]bool{}
	for _, code := range courtCircuits {
		assert.False(t, seen[code], "duplicate circuit code %q", code)
		seen[code] = true
	}
}
