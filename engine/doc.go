// SPDX-License-Identifier: EPL-2.0

// Package engine executes conversion plans against audio sources.
//
// The Engine interface is the boundary between planning and signal
// processing: it takes an ordered stage list from the plan package and a
// source stream, and hands back a finished buffer of signed 8-bit mono
// samples at the plan's target rate. Callers that only need the contract
// (or a test double) depend on the interface; Pipeline is the shipped
// implementation.
//
// Pipeline applies stages strictly in the order given and never reorders
// or merges them. Failures are wrapped in *Error, which carries the stage
// sequence that was executing so diagnostics can show exactly what the
// conversion was attempting. The engine neither interprets nor retries a
// failure.
package engine
