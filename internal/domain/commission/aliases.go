package commission

import "strings"

// aliasRule describes one historical identity exception. The exceptions are
// data, not logic: a rule either matches a judge identifier exactly and
// duplicates the row under a second identifier with year overrides, or it
// strips a leading name prefix so downstream sources that omit the prefix
// still match.
type aliasRule struct {
	// match, when non-empty, is the exact judge identifier the rule applies to.
	match string

	// startYear overrides StartYear on the primary row (exact-match rules only).
	startYear int

	// alias is the identifier for the duplicated row (exact-match rules only).
	alias string

	// aliasEndYear overrides EndYear on the duplicated row.
	aliasEndYear int

	// prefix, when non-empty, makes this a prefix-stripping rule instead.
	prefix string
}

// aliasRules holds the known exceptions, checked in order; the first matching
// rule wins.
//
//   - John Carbone Porfilio served as John Moore until 1996, then under his
//     birth name; sources before 1996 know him only as Moore.
//   - Carolyn Dineen King sat as Carolyn Randall until her 1988 remarriage.
//   - "Van " and "O'" name prefixes are dropped by several downstream
//     datasets, so prefixed judges are also emitted without the prefix.
var aliasRules = []aliasRule{
	{match: "Porfilio<John Carbone", startYear: 1996, alias: "Moore<John", aliasEndYear: 1996},
	{match: "King<Carolyn Dineen", startYear: 1988, alias: "Randall<Carolyn", aliasEndYear: 1988},
	{prefix: "Van "},
	{prefix: "O'"},
}

// expand applies the alias table to a normalized row, returning the one or
// two rows to emit. Callers must only pass rows that already have a circuit
// and a resolved start year.
func expand(row Row) []Row {
	for _, rule := range aliasRules {
		switch {
		case rule.match != "" && row.Judge == rule.match:
			primary := row
			primary.StartYear = intPtr(rule.startYear)

			alias := row
			alias.Judge = rule.alias
			alias.EndYear = intPtr(rule.aliasEndYear)
			return []Row{primary, alias}

		case rule.prefix != "" && strings.HasPrefix(row.Judge, rule.prefix):
			alias := row
			alias.Judge = strings.TrimPrefix(row.Judge, rule.prefix)
			return []Row{row, alias}
		}
	}
	return []Row{row}
}

func intPtr(v int) *int { return &v }
