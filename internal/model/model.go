// Package model holds the trivia storage models, their response
// representations and the request payloads accepted by the API.
package model

import (
	"github.com/marshallshelly/pebble-orm/pkg/registry"
	"github.com/marshallshelly/pebble-orm/pkg/schema"
)

// QuestionsPerPage is the fixed page size of every paginated listing.
const QuestionsPerPage = 10

func init() {
	schema.RegisterTableName("Question", "questions")
	schema.RegisterTableName("Category", "categories")
}

// RegisterAll registers every model with pebble-orm so column lookups
// resolve before the first query runs.
func RegisterAll() error {
	models := []any{
		Question{},
		Category{},
	}

	for _, model := range models {
		if err := registry.Register(model); err != nil {
			return err
		}
	}

	return nil
}
