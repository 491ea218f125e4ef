// Package match holds the pure reconciliation core: filename identity keys,
// key grouping, and the matching policy. Nothing in this package performs I/O.
package match

import (
	"regexp"
	"strings"
)

// trailingCounter matches a single disambiguating counter at the end of a
// base name, e.g. " (2)" in "report_a (1) (2)".
var trailingCounter = regexp.MustCompile(`\s*\(\d+\)$`)

// DocumentKey derives the identity key of a customer document from its raw
// file name: the trailing extension is stripped, nothing else. A parenthetical
// suffix like "(1)" is part of the identity, because the customer's submitted
// files are literally distinct objects.
func DocumentKey(name string) string {
	return strings.ToLower(strings.TrimSpace(stripExt(name)))
}

// ReportKey derives the identity key of an uploaded report file. Admin
// tooling appends a counter when several reports share a base name, so
// exactly one trailing "(N)" is removed after the extension:
//
//	"report_a.pdf"         -> "report_a"
//	"report_a (1).pdf"     -> "report_a"
//	"report_a (1) (2).pdf" -> "report_a (1)"
//
// Not a loop: "report_a (1) (2)" must still reach the document literally
// named "report_a (1)".
func ReportKey(name string) string {
	base := strings.TrimSpace(stripExt(name))
	base = trailingCounter.ReplaceAllString(base, "")
	return strings.ToLower(strings.TrimSpace(base))
}

// stripExt removes the last "." and everything after it. Names without a dot
// pass through unchanged.
func stripExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
