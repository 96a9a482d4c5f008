// Package steptype resolves the semantic type of a WISE 2 step.
//
// Resolution pipeline:
//  1. An explicit <type> value (other than "Unspecified") wins.
//  2. Otherwise the authoringURL is matched against an ordered substring
//     table, falling back to the plain url for spreadsheet steps.
//  3. OutsideUrl steps whose authoringURL mentions SelfTest are re-typed as
//     SelfTest.
//
// The substring table is case-sensitive and order-sensitive; the first
// matching rule wins.
package steptype
