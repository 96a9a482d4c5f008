// Package wise4 defines the WISE 4 project format produced by the migrator:
// the project manifest, the node descriptors it lists, and the content
// payload of every supported step kind.
//
// Payload structs list their fields in the order WISE 4 authoring tools
// write them. JSON output is indented with three spaces and does not escape
// HTML characters or forward slashes, so embedded markup stays readable.
package wise4
