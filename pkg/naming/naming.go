// Package naming maps Go-ish type names onto the URL segments used by
// conventional resource routes, e.g. "LineItem" -> "line_items".
package naming

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"strings"
)

// Segment tableizes the given type name: it is converted to snake case and its
// final word is pluralized. Package-qualified names ("store.Order") are
// stripped to their last element first.
func Segment(typeName string) string {
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		typeName = typeName[i+1:]
	}
	return inflection.Plural(strcase.ToSnake(typeName))
}

// Singular is the inverse of Segment for a single word. Index helpers use it to
// register a type given in plural form ("widgets") under its singular name too.
func Singular(segment string) string { return inflection.Singular(segment) }
