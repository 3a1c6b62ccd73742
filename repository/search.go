package repository

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination bounds applied to every list query.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ErrInvalidSort is returned when the requested sort column is not in the
// entity's whitelist. Handlers translate it to a validation failure.
var ErrInvalidSort = errors.New("invalid sort column")

// Filter is one optional search condition. Fuzzy filters render as
// ILIKE '%term%', exact filters as equality.
type Filter struct {
	Column string
	Value  any
	Fuzzy  bool
}

// SearchOptions carries validated pagination, sorting and optional filters.
type SearchOptions struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
	Filters   []Filter
}

// buildSearch renders the SELECT and COUNT statements for a list query over
// one table. conds are mandatory scope conditions (e.g. user_id); sortable
// whitelists ORDER BY columns; defaultSort/defaultOrder apply when the
// options carry none. The COUNT statement shares the WHERE clause so the
// returned total matches the filtered set.
func buildSearch(columns, table string, conds []Cond, opts SearchOptions, sortable map[string]bool, defaultSort, defaultOrder string) (sel, count string, selArgs, countArgs []any, err error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = defaultSort
	}
	sortOrder := strings.ToLower(opts.SortOrder)
	if sortOrder == "" {
		sortOrder = defaultOrder
	}
	if !sortable[sortBy] {
		return "", "", nil, nil, fmt.Errorf("%w: %q", ErrInvalidSort, sortBy)
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		return "", "", nil, nil, fmt.Errorf("%w: order %q", ErrInvalidSort, sortOrder)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	var parts []string
	var args []any
	for _, c := range conds {
		args = append(args, c.Value)
		parts = append(parts, fmt.Sprintf("%s = $%d", c.Column, len(args)))
	}
	for _, f := range opts.Filters {
		if f.Fuzzy {
			args = append(args, fmt.Sprintf("%%%v%%", f.Value))
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", f.Column, len(args)))
		} else {
			args = append(args, f.Value)
			parts = append(parts, fmt.Sprintf("%s = $%d", f.Column, len(args)))
		}
	}

	where := ""
	if len(parts) > 0 {
		where = " WHERE " + strings.Join(parts, " AND ")
	}

	countArgs = make([]any, len(args))
	copy(countArgs, args)
	count = "SELECT COUNT(*) FROM " + table + where

	selArgs = make([]any, len(args), len(args)+2)
	copy(selArgs, args)
	selArgs = append(selArgs, limit, offset)
	sel = fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		columns, table, where, sortBy, sortOrder, len(args)+1, len(args)+2)

	return sel, count, selArgs, countArgs, nil
}
