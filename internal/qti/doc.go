// Package qti parses the QTI 2.0 assessment markup embedded in legacy
// assessment steps and assembles it into WISE 4 question payloads.
//
// Parsing works in three passes over a standalone document:
//
//  1. collect every assessmentItem in the QTI namespace, at any depth
//  2. read the interactions found directly under each item's itemBody
//  3. read the responseDeclaration children of each item
//
// Markup that is not well formed yields an empty Document. A present element
// missing one of its required attributes is an error, which fails the step
// being converted.
//
// Two profiles exist. Standard is used by notes and self tests; Challenge
// requires inline feedback on every choice and a correct response on every
// declaration.
package qti
