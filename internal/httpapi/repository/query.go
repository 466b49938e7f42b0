package repository

import (
	"regexp"
	"strings"

	"newshub/internal/httpapi/apperrors"
)

// Columns callers may sort the article listing by. The sort column and
// direction are spliced into the ORDER BY clause as raw identifiers,
// which cannot be bound as parameters, so membership in this set is the
// only thing standing between the query string and the SQL text.
var sortableColumns = map[string]bool{
	"article_id":    true,
	"title":         true,
	"topic":         true,
	"author":        true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

var topicSlugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateSortColumn admits only columns from the fixed allow-list.
func ValidateSortColumn(column string) (string, error) {
	if !sortableColumns[column] {
		return "", apperrors.BadRequest("Invalid sort column")
	}
	return column, nil
}

// ValidateOrder normalises the sort direction, case-insensitively.
func ValidateOrder(order string) (string, error) {
	switch strings.ToLower(order) {
	case "asc":
		return "asc", nil
	case "desc":
		return "desc", nil
	}
	return "", apperrors.BadRequest("Invalid order query")
}

// ValidateTopicSlug checks the filter value against a conservative
// character class. The topic itself is always bound as a parameter;
// this is defence in depth, not the primary barrier.
func ValidateTopicSlug(slug string) (string, error) {
	if !topicSlugPattern.MatchString(slug) {
		return "", apperrors.BadRequest("Invalid topic query")
	}
	return slug, nil
}
