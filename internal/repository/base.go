package repository

import "strings"

// lowered normalizes a substring predicate for case-insensitive matching.
// LOWER(...) LIKE is used instead of ILIKE so the same query text works on
// both PostgreSQL and the SQLite test database.
func lowered(s string) string {
	return strings.ToLower(s)
}
