package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListParams carries the raw list query: equality filters keyed by their
// public name, a free-text search term, an ordering expression such as
// "-created_at,name", and pagination.
type ListParams struct {
	Filters  map[string]string
	Search   string
	Ordering string
	Page     int
	Limit    int
}

// Normalize clamps page and limit to their allowed ranges.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Page is one page of a filtered list.
type Page[T any] struct {
	Results    []T `json:"results"`
	TotalCount int `json:"count"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

type filterKind int

const (
	filterText filterKind = iota
	filterBool
	filterUUID
	filterDate
	filterNullableUUID
)

type filterColumn struct {
	column string
	kind   filterKind
}

// listSpec describes which columns a resource exposes for filtering,
// searching and ordering.
type listSpec struct {
	from         string
	columns      string
	filters      map[string]filterColumn
	search       []string
	ordering     map[string]string
	defaultOrder string
	tiebreak     string
}

func (spec listSpec) where(params ListParams) (string, []interface{}, error) {
	var (
		clauses []string
		args    []interface{}
	)

	names := make([]string, 0, len(params.Filters))
	for name := range params.Filters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := params.Filters[name]
		col, ok := spec.filters[name]
		if !ok || raw == "" {
			continue
		}
		clause, arg, err := col.condition(raw)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s", ErrInvalidFilter, name)
		}
		clauses = append(clauses, clause)
		if arg != nil {
			args = append(args, arg)
		}
	}

	if term := strings.TrimSpace(params.Search); term != "" && len(spec.search) > 0 {
		like := "%" + strings.ToLower(term) + "%"
		ors := make([]string, 0, len(spec.search))
		for _, col := range spec.search {
			ors = append(ors, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, like)
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}

	if len(clauses) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func (c filterColumn) condition(raw string) (string, interface{}, error) {
	switch c.kind {
	case filterBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return "", nil, err
		}
		return c.column + " = ?", v, nil
	case filterUUID:
		v, err := uuid.Parse(raw)
		if err != nil {
			return "", nil, err
		}
		return c.column + " = ?", v, nil
	case filterNullableUUID:
		if raw == "null" {
			return c.column + " IS NULL", nil, nil
		}
		v, err := uuid.Parse(raw)
		if err != nil {
			return "", nil, err
		}
		return c.column + " = ?", v, nil
	case filterDate:
		v, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return "", nil, err
		}
		return c.column + " = ?", dateOnly(v), nil
	default:
		return c.column + " = ?", raw, nil
	}
}

func (spec listSpec) orderBy(ordering string) string {
	var parts []string
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		col, ok := spec.ordering[field]
		if !ok {
			continue
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		parts = append(parts, spec.defaultOrder)
	}
	if spec.tiebreak != "" {
		parts = append(parts, spec.tiebreak)
	}
	return strings.Join(parts, ", ")
}

func listPage[T any](ctx context.Context, db sqlx.QueryerContext, rebind func(string) string, spec listSpec, params ListParams) (Page[T], error) {
	params = params.Normalize()

	where, args, err := spec.where(params)
	if err != nil {
		return Page[T]{}, err
	}

	var total int
	if err := sqlx.GetContext(ctx, db, &total, rebind("SELECT COUNT(*) FROM "+spec.from+where), args...); err != nil {
		return Page[T]{}, fmt.Errorf("failed to count rows: %w", err)
	}

	query := "SELECT " + spec.columns + " FROM " + spec.from + where +
		" ORDER BY " + spec.orderBy(params.Ordering) + " LIMIT ? OFFSET ?"
	pageArgs := append(append([]interface{}{}, args...), params.Limit, (params.Page-1)*params.Limit)

	results := []T{}
	if err := sqlx.SelectContext(ctx, db, &results, rebind(query), pageArgs...); err != nil {
		return Page[T]{}, fmt.Errorf("failed to list rows: %w", err)
	}

	return Page[T]{
		Results:    results,
		TotalCount: total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: (total + params.Limit - 1) / params.Limit,
	}, nil
}

// inClause expands a slice argument into a "col IN (?, ?, ...)" fragment.
func inClause(query string, ids []uuid.UUID, args ...interface{}) (string, []interface{}, error) {
	all := append(append([]interface{}{}, args...), ids)
	return sqlx.In(query, all...)
}
