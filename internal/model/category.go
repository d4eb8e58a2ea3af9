package model

import "strconv"

// table_name: categories
type Category struct {
	ID   int    `po:"id,primaryKey,serial"`
	Type string `po:"type,text,notNull"`
}

// CategoryMap keys category labels by their 1-based position in the given
// order. The keys are positions, not category ids.
func CategoryMap(categories []Category) map[string]string {
	m := make(map[string]string, len(categories))
	for i, c := range categories {
		m[strconv.Itoa(i+1)] = c.Type
	}
	return m
}
