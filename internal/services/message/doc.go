// Package message orchestrates sealing and opening envelopes against the
// local keystore and peer registry.
//
// The service does not transport anything: Seal hands the assembled
// envelope back to the caller, and Open consumes an envelope the caller
// obtained elsewhere. Delivery, retries, and storage belong to whatever
// sits on the other side of that boundary.
package message
