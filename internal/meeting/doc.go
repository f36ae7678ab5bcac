// Package meeting turns a decoded meeting export into a validated Record of
// identity and timing facts.
//
// Two export layouts exist: an attendance table with per-participant
// join/leave timestamps, and a scheduled-start/duration header. The record
// exposes uniform anchors either way so pattern generation never needs to
// know which layout produced it.
package meeting
