// Package api handles incoming HTTP requests, request validation, and
// response formatting for the relay. It acts as an adapter between external
// clients (typically microcontrollers that cannot speak TLS or hold an API
// key) and the generation.Generator that talks to the language model.
package api
