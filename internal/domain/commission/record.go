// Package commission implements the normalization rules that turn rows of
// the Federal Judicial Center's commission-centered export into per-commission
// records of the form (Judge, Circuit, Party, StartYear, EndYear).
//
// The rules are small but specific: judge names are re-separated so they
// survive downstream comma-delimited processing, court names collapse to
// short circuit codes, the appointing president's party becomes a ternary
// indicator backfilled from the judge's previous commission when the export
// leaves it blank, and a handful of judges with documented identity changes
// are emitted under both identities.
package commission

// Record is one row of the FJC export, already keyed out of its CSV columns.
// All fields are the raw strings from the export; empty means the column was
// blank.
type Record struct {
	JudgeName       string // "Last, First Middle"
	SeatID          string
	CourtName       string
	Party           string // party of the appointing president
	CommissionDate  string // "YYYY-MM-DD" or blank
	RecessDate      string // recess appointment date, used when CommissionDate is blank
	TerminationDate string // blank while service is ongoing
}

// Party indicator values. Anything other than a Democratic or Republican
// appointment (including unknown) is represented as a nil Party on the Row.
const (
	PartyDemocratic = 1
	PartyRepublican = 0
)

// Row is one normalized output commission. Nil pointer fields render as
// empty cells in the output table.
type Row struct {
	// Judge is the normalized identifier, "Last<First Middle".
	Judge string

	// SeatID is carried for diagnostics only; it is never written to output.
	SeatID string

	// Circuit is the short court code: "1".."11", "DC", "FC", or "CIT".
	Circuit string

	// Party is 1 for a Democratic appointment, 0 for Republican, nil otherwise.
	Party *int

	// StartYear is the commission (or recess appointment) year.
	StartYear *int

	// EndYear is the termination year, or the as-of year while service is
	// ongoing.
	EndYear *int
}
