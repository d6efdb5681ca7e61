// internal/core/query_params.go
package core

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Default and limit constants for pagination
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ListQueryOptions holds parsed query parameters for listing schemas
type ListQueryOptions struct {
	// Case-insensitive substring matched against schema names; empty matches all
	Filter string

	// Pagination over the filtered list, which keeps store order
	Limit  int
	Offset int
}

// ParseListQueryOptions extracts the name filter and pagination options from query parameters.
// Returns the parsed options and any validation error.
func ParseListQueryOptions(queryParams url.Values) (*ListQueryOptions, error) {
	opts := &ListQueryOptions{
		Filter: queryParams.Get("q"),
		Limit:  DefaultLimit,
		Offset: 0,
	}

	if limitStr := queryParams.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("%w: 'limit' must be an integer", ErrInvalidQuery)
		}
		if limit < 1 {
			return nil, fmt.Errorf("%w: 'limit' must be at least 1", ErrInvalidQuery)
		}
		if limit > MaxLimit {
			return nil, fmt.Errorf("%w: 'limit' maximum is %d", ErrInvalidQuery, MaxLimit)
		}
		opts.Limit = limit
	}

	if offsetStr := queryParams.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, fmt.Errorf("%w: 'offset' must be an integer", ErrInvalidQuery)
		}
		if offset < 0 {
			return nil, fmt.Errorf("%w: 'offset' must be non-negative", ErrInvalidQuery)
		}
		opts.Offset = offset
	}

	return opts, nil
}

// MatchesFilter reports whether name contains filter, ignoring case.
func MatchesFilter(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// Page returns the [offset, offset+limit) window of n items as slice bounds.
func (o *ListQueryOptions) Page(n int) (start, end int) {
	start = min(o.Offset, n)
	end = min(start+o.Limit, n)
	return start, end
}
