// Package project converts a whole WISE 2 project archive.
//
// A run proceeds as follows:
//
//  1. open the archive and derive the project id from its file name
//  2. create the project folder and extract the uploaded files into assets/
//  3. read wise-project.xml
//  4. resolve and convert every step of every activity in document order
//  5. write the manifest and the convert log
//
// Only a failure to read the archive aborts a run. Every step produces a
// StepResult; failed steps are logged together with their XML.
package project
