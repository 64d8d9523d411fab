// Package modeladapter holds the HTTP plumbing shared by hosted model clients.
//
// It contains:
//   - [ModelAdapter], an embeddable base struct with request building, auth and custom headers
//   - [TransportError] and [StatusError], which separate "the request never completed"
//     from "the server answered with an error status"
//
// This package contains no provider-specific code. Concrete clients live in
// separate packages under pkg/providers that import modeladapter.
package modeladapter
