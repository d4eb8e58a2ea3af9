// Package handler is the HTTP layer of the trivia API.
//
// Handlers bind and validate requests through the validation package, call
// the services, and shape their results into the JSON bodies the quiz
// frontend expects. Errors are returned untouched to the global error
// handler.
package handler
