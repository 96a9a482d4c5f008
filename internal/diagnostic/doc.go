// Package diagnostic collects structured errors and warnings about the
// steps of a conversion run.
//
// Every step that could not be converted produces one error carrying the
// step's type, its position in the project and its raw XML, so a failed
// run can be reviewed without reopening the archive.
package diagnostic
