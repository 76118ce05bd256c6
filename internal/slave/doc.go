// Package slave owns the responder side of the ranging exchange.
//
// Ownership boundary:
// - the listen loop: bounded reads, recover from timeouts and garbage
// - request dispatch and response emission
//
// Slave never initiates; it only reacts, one request at a time. The
// half-duplex link guarantees a second request cannot arrive before the
// response to the first is written.
package slave
