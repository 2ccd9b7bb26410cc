// Package book models the CP4 problem listings scraped from cpbook.net.
//
// The book package handles the hierarchy the listings follow (chapter,
// section, subsection, per-judge problem lists), the parsing of the
// "{chapter}.{section}{letter}, {Title}" description strings found in the
// problem tables, the merge of the two per-judge table parses into one
// chapter mapping, and the final rename of every key into a human-readable,
// filesystem-safe directory name.
package book
