// Package relayclient is an HTTP client for the relay's JSON API. It is used
// by the relayctl command and is the reference for how devices talk to the
// relay: plain JSON over HTTP, no credentials.
package relayclient
