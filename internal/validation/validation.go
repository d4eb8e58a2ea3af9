// Package validation contains the logic for binding and validating
// request data.
//
// It uses the `validator` library to enforce rules defined in struct
// tags and turns validation errors into field messages for the logs.
// Clients only ever see the fixed error body of the status a payload
// maps its failures to.
package validation
