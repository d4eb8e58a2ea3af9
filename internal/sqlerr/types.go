package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a coarse classification of a PostgreSQL SQLSTATE.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	StringDataRightTruncation Code = "string_data_right_truncation"
	UndefinedTable            Code = "undefined_table"
	UndefinedColumn           Code = "undefined_column"
	ConnectionException       Code = "connection_exception"
	QueryCanceled             Code = "query_canceled"
)

// MapCode maps a SQLSTATE to a Code. Unlisted states, including whole
// classes, map to Other except for class 08 (connection exceptions).
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22P02":
		return InvalidTextRepresentation
	case "22003":
		return NumericValueOutOfRange
	case "22001":
		return StringDataRightTruncation
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "57014":
		return QueryCanceled
	}

	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionException
	}

	return Other
}

// IsDataError reports whether the code means the submitted values were
// rejected, as opposed to the database failing.
func (c Code) IsDataError() bool {
	switch c {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation, CheckViolation,
		ExclusionViolation, InvalidTextRepresentation, NumericValueOutOfRange,
		StringDataRightTruncation:
		return true
	default:
		return false
	}
}

// Severity mirrors the severity field PostgreSQL attaches to errors.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps the severity string of a PgError. Unknown values are
// treated as SeverityError.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}

// Error is a classified PostgreSQL error. Its message is safe to log; it is
// never sent to clients.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)",
		generateErrorCode(e.TableName, e.Code),
		formatUserFriendlyMessage(e),
		e.DatabaseCode,
	)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
