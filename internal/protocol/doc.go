// Package protocol owns the wire contract for the ranging link.
//
// Ownership boundary:
// - message variants (request, distance response, error response)
// - JSON line encode/decode
// - decode error taxonomy
//
// One message per line; the transport owns the newline delimiter.
package protocol
