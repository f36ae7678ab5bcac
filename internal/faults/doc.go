// Package faults defines the error taxonomy shared across extraction,
// matching, and renaming.
//
// Errors are tagged with sentinel markers so callers can classify them with
// errors.Is without parsing messages. Batch processing treats everything
// except a missing batch root as a per-meeting failure.
package faults
