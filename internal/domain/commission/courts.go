package commission

// courtCircuits maps the FJC's appellate court names to short circuit codes.
// The table is exhaustive: the eleven numbered circuits, the DC and Federal
// Circuits, and the Court of International Trade. A court name absent from
// this table is a normal outcome (district courts, the Supreme Court, and
// defunct courts all appear in the export) and marks the row for dropping.
var courtCircuits = map[string]string{
	"U.S. Court of Appeals for the First Circuit":                "1",
	"U.S. Court of Appeals for the Second Circuit":               "2",
	"U.S. Court of Appeals for the Third Circuit":                "3",
	"U.S. Court of Appeals for the Fourth Circuit":               "4",
	"U.S. Court of Appeals for the Fifth Circuit":                "5",
	"U.S. Court of Appeals for the Sixth Circuit":                "6",
	"U.S. Court of Appeals for the Seventh Circuit":              "7",
	"U.S. Court of Appeals for the Eighth Circuit":               "8",
	"U.S. Court of Appeals for the Ninth Circuit":                "9",
	"U.S. Court of Appeals for the Tenth Circuit":                "10",
	"U.S. Court of Appeals for the Eleventh Circuit":             "11",
	"U.S. Court of Appeals for the District of Columbia Circuit": "DC",
	"U.S. Court of Appeals for the Federal Circuit":              "FC",
	"U.S. Court of International Trade":                          "CIT",
}

// CircuitFor returns the short circuit code for an FJC court name, or ""
// when the court is not an appellate court covered by the table.
func CircuitFor(courtName string) string {
	return courtCircuits[courtName]
}
