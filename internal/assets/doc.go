// Package assets localizes images referenced by step content.
//
// Step markup exported from WISE 2 points at images on the WISE 2 upload
// server. The Localizer downloads every matching image into the project's
// assets folder and rewrites the reference to "assets/<file>". Download
// failures leave the original reference in place.
//
// The package also measures images (stamps and drawing backgrounds) by
// decoding only their headers.
package assets
