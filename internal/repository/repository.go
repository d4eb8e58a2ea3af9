// Package repository implements question and category persistence on
// top of pebble-orm's typed query builders.
//
// Repositories never map errors onto HTTP statuses. They return
// ErrNotFound for missing rows and wrap everything else with a stack
// trace; PostgreSQL errors are classified by sqlerr on the way out.
package repository

import (
	"github.com/manar-nas/trivia-api/internal/sqlerr"
	"github.com/marshallshelly/pebble-orm/pkg/runtime"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = runtime.ErrNotFound

// wrap classifies database errors and attaches a stack trace.
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(sqlerr.Convert(err), msg)
}
