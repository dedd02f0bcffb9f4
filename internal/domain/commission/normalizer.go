package commission

import (
	"strings"
	"time"
)

// NameSeparator replaces the first comma of the raw "Last, First Middle"
// judge name so the identifier survives comma-delimited downstream
// processing.
const NameSeparator = "<"

// Normalizer applies the per-row transformation rules, carrying exactly one
// piece of state across the input sequence: the previously processed
// commission, used to backfill a missing appointing-party value when a judge
// moves between seats (e.g. the Fifth-to-Eleventh Circuit split). It is not
// safe for concurrent use; the input is a strictly ordered sequence.
type Normalizer struct {
	asOfYear  int
	prevJudge string
	prevParty string // resolved textual party of the previous record
}

// NewNormalizer returns a Normalizer that substitutes asOfYear for the end
// year of ongoing commissions. Zero or negative means the wall-clock year.
func NewNormalizer(asOfYear int) *Normalizer {
	if asOfYear <= 0 {
		asOfYear = time.Now().Year()
	}
	return &Normalizer{asOfYear: asOfYear}
}

// AsOfYear reports the year substituted for open-ended commissions.
func (n *Normalizer) AsOfYear() int { return n.asOfYear }

// Next processes one input record and returns the rows it contributes to the
// output: none for rows without a recognized circuit or without any start
// date, one for the common case, two when an alias exception applies. Rows
// never reorder relative to input.
//
// Every record updates the previous-commission state, including records that
// contribute no output, so party backfill sees the judge's true prior
// commission even when that commission sat on a non-appellate court.
func (n *Normalizer) Next(rec Record) []Row {
	judge := normalizeJudge(rec.JudgeName)
	party := n.resolveParty(judge, rec.Party)
	circuit := CircuitFor(rec.CourtName)
	start, commissioned := startYear(rec)

	n.prevJudge = judge
	n.prevParty = party

	if circuit == "" || !commissioned {
		return nil
	}

	row := Row{
		Judge:     judge,
		SeatID:    rec.SeatID,
		Circuit:   circuit,
		Party:     partyIndicator(party),
		StartYear: start,
		EndYear:   n.endYear(rec.TerminationDate),
	}

	// Alias expansion needs a concrete start year to override; a row whose
	// date survived only as "present but unparseable" is emitted as-is.
	if start == nil {
		return []Row{row}
	}
	return expand(row)
}

// normalizeJudge rewrites "Last, First Middle" as "Last<First Middle". Only
// the first comma is the name separator; any further commas are part of the
// name and kept.
func normalizeJudge(raw string) string {
	return strings.Replace(raw, ",", NameSeparator, 1)
}

// partyIsUnknown reports whether a raw party value carries no information.
// The export writes variants like "None (reassignment)" for seat moves; the
// check is a case-sensitive prefix match, as in the source data.
func partyIsUnknown(raw string) bool {
	return raw == "" || strings.HasPrefix(raw, "None")
}

// resolveParty returns the textual party for the current record: the raw
// value, unless it is unknown and the immediately preceding record belongs
// to the same judge, in which case that record's resolved party carries
// forward.
func (n *Normalizer) resolveParty(judge, raw string) string {
	if partyIsUnknown(raw) && n.prevJudge == judge {
		return n.prevParty
	}
	return raw
}

// partyIndicator maps a resolved textual party to the ternary output value.
func partyIndicator(party string) *int {
	switch party {
	case "Democratic":
		return intPtr(PartyDemocratic)
	case "Republican":
		return intPtr(PartyRepublican)
	}
	return nil
}

// endYear resolves the service end year: the termination date's year, or the
// as-of year when service is ongoing.
func (n *Normalizer) endYear(termination string) *int {
	if termination == "" {
		return intPtr(n.asOfYear)
	}
	return yearOf(termination)
}
