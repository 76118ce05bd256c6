// Package master owns the initiator side of the ranging exchange.
//
// Ownership boundary:
// - one request/response exchange per invocation, no retry
// - exchange error taxonomy (no response, malformed, peer error)
// - run orchestration: prompt, fetch, solve, report
//
// Master never answers requests; it only initiates.
package master
