package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterIsNotNull = "is_not_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is one condition of a WHERE clause.
type Filter struct {
	Field    string
	Operator string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	switch f.Operator {
	case FilterIsNotNull:
		return f.Field + " IS NOT NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins filters and nested groups with one operator, AND when unset.
// Conditions that render empty are dropped.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
