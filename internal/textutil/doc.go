// Package textutil sanitizes spreadsheet-sourced text before it becomes part
// of a filename. Meeting themes are free-form user input; a path separator or
// control character in a theme must never change where a rename lands.
package textutil
