// Package errs defines the error contract of the API.
//
// Every failure a client sees is one of a small, fixed set of
// HTTPErrors. Each carries its status code and a fixed message so the
// frontend can branch on the status alone.
package errs
