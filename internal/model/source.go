// Package model defines the data structures read from mutation reports and
// the prompts derived from them.
package model

// Path represents a file system path.
type Path string

// NotAvailable is the placeholder used when a value is missing from the report
// or cannot be resolved from the source text.
const NotAvailable = "N/A"
