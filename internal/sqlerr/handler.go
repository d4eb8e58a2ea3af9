package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/manar-nas/trivia-api/internal/errs"
	"github.com/marshallshelly/pebble-orm/pkg/runtime"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Convert replaces a *pgconn.PgError found in err's chain with its *Error
// classification. Other errors are returned unchanged.
func Convert(err error) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}
	return err
}

// generateErrorCode builds a <DOMAIN>_<ACTION> code for logs, for example
// QUESTION_REQUIRED for a NOT NULL violation on questions.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singular(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation, NumericValueOutOfRange, StringDataRightTruncation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepresentation, NumericValueOutOfRange, StringDataRightTruncation:
		return "One or more values have an invalid format"

	default:
		if sqlErr.Message != "" {
			return sqlErr.Message
		}
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a *_id column ("category_id" -> "Category"), then
// the singular table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

// singular handles the two plural forms the schema uses: categories and
// questions.
func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the column from constraint names
// shaped like unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts an error that reached the HTTP boundary without
// being classified into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - rejected values (constraint or format violations): Unprocessable
//   - no rows / record not found: NotFound
//   - anything else: InternalServerError
//
// The original error is kept as the cause for logging.
func HandleError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var sqlErr *Error
	if !errors.As(err, &sqlErr) {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) {
			sqlErr = ConvertPgError(pgerr)
		}
	}

	if sqlErr != nil {
		if sqlErr.Code.IsDataError() {
			return errs.NewUnprocessableError(sqlErr)
		}
		return errs.NewInternalServerError(sqlErr)
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows), errors.Is(err, runtime.ErrNotFound):
		return errs.NewNotFoundError().WithCause(err)
	}

	return errs.NewInternalServerError(err)
}
