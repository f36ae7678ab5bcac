// Package match finds the artifact files belonging to a meeting.
//
// The recording service names files by wall-clock write time, which lags the
// meeting's logical timestamps by a small, unpredictable number of seconds.
// Patterns therefore expands each anchor timestamp across a tolerance window
// of signed second offsets into per-kind filename globs, Dir matches them
// against a directory's direct children, and Resolve admits a file only when
// exactly one candidate matched. Zero or multiple candidates are typed
// rejections; an ambiguous artifact is never picked arbitrarily.
package match
