// Package renamer is the batch orchestrator. It discovers pending meeting
// exports under a root directory, drives extraction, pattern generation, and
// match resolution for each, applies the configured admission policy, and
// moves admitted files to their canonical names.
//
// Each meeting is processed in isolation: extraction or matching failures are
// recorded in the batch result and never abort the remaining meetings. A
// flock-held lock file prevents two runs from racing the same root. Nothing
// is persisted between runs; a re-run re-derives everything from directory
// contents and finds nothing to do once a batch has fully succeeded.
package renamer
