// Package sqlerr classifies PostgreSQL driver errors.
//
// It maps SQLSTATE codes onto a small set of categories, builds log-friendly
// codes and messages from the table and column involved (for example
// QUESTION_REQUIRED, "The Answer is required"), and converts unclassified
// errors reaching the HTTP boundary into the fixed error taxonomy.
package sqlerr
