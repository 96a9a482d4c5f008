// Package legacy provides read-only access to the WISE 2 project document.
//
// A Node wraps one XML element and exposes the small query surface the
// converters need: path lookups relative to the element, direct text,
// attributes and the element's serialized form for failure reports.
//
// Paths use the etree path syntax, e.g. "parameters/html", "activity" or
// ".//prompt". Text returns the element's own character data (entities and
// CDATA decoded) without descending into child elements.
package legacy
