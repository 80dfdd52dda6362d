package usecase

import (
	"strings"

	"devportal/internal/domain/entity"
)

// FilterProducts narrows rows to those whose display fields contain the
// query, case-insensitively. An empty or whitespace-only query returns
// the input unchanged.
func FilterProducts(rows []*entity.Product, query string) []*entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}

	var matched []*entity.Product
	for _, row := range rows {
		haystack := strings.ToLower(row.Name + " " + row.Category + " " + row.Status + " " + row.Visibility)
		if strings.Contains(haystack, q) {
			matched = append(matched, row)
		}
	}

	return matched
}
