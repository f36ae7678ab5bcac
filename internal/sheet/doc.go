// Package sheet is the spreadsheet input adapter. It decodes an .xlsx export
// into plain tabular rows and knows nothing about meetings; interpreting the
// layout is internal/meeting's job.
package sheet
