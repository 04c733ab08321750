// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a trivia topic such as "Science" or "Sports". Categories are
// created by seeding and are read-only through the API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap indexes category labels by id. It serializes to a JSON object
// keyed by the stringified id, e.g. {"1": "Science"}.
type CategoryMap map[int]string

// NewCategoryMap builds the id → label map for a list of categories.
func NewCategoryMap(categories []Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
