package listquery

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/spf13/cast"
)

// Operator selects the predicate a Filter renders.
type Operator uint8

const (
	OpEqual Operator = iota + 1
	// OpLike is a case-insensitive substring match across one or more columns.
	OpLike
	// OpBetween reads a low and a high parameter. Both present renders
	// BETWEEN, a single one renders the matching half-open bound.
	OpBetween
	OpGreaterOrEqual
	OpLessOrEqual
	// OpIn takes a comma separated list (or a repeated query parameter).
	OpIn
)

// Kind coerces the raw request string of a filter into the bound value.
type Kind struct {
	name   string
	coerce func(raw string) (any, error)
	// wholeDay makes an upper bound (or an equality) cover the entire
	// calendar day on a timestamp column.
	wholeDay bool
}

func (k Kind) Coerce(raw string) (any, error) {
	if k.coerce == nil {
		return raw, nil
	}
	return k.coerce(raw)
}

func (k Kind) String() string {
	if k.name == "" {
		return "text"
	}
	return k.name
}

var (
	Text = Kind{name: "text"}

	Integer = Kind{name: "integer", coerce: func(raw string) (any, error) {
		return cast.ToInt64E(raw)
	}}

	Boolean = Kind{name: "boolean", coerce: func(raw string) (any, error) {
		return cast.ToBoolE(strings.ToLower(raw))
	}}

	Date = Kind{name: "date", coerce: parseDate}

	// Day is Date for TIMESTAMP/TIMESTAMPTZ columns: an upper bound of
	// 2024-03-31 renders as col < 2024-04-01 so rows later that day match.
	Day = Kind{name: "date", coerce: parseDate, wholeDay: true}
)

func parseDate(raw string) (any, error) {
	return time.Parse(DateLayout, raw)
}

const DateLayout = "2006-01-02"

// IntBetween is an Integer kind that rejects values outside [min, max].
func IntBetween(min, max int64) Kind {
	return Kind{name: "integer", coerce: func(raw string) (any, error) {
		v, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, err
		}
		if v < min || v > max {
			return nil, fmt.Errorf("must be between %d and %d", min, max)
		}
		return v, nil
	}}
}

// OneOf accepts only the listed literals.
func OneOf(values ...string) Kind {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}

	return Kind{name: "enum", coerce: func(raw string) (any, error) {
		if _, ok := allowed[raw]; !ok {
			return nil, fmt.Errorf("must be one of %s", strings.Join(values, ", "))
		}
		return raw, nil
	}}
}

// Filter declares one optional request parameter and the predicate it
// contributes when the parameter is present.
type Filter struct {
	Param string
	// HighParam is the upper bound parameter of an OpBetween filter.
	HighParam string
	Columns   []string
	Op        Operator
	Kind      Kind
	Required  bool
}

func Equal(param, column string, kind Kind) Filter {
	return Filter{Param: param, Columns: []string{column}, Op: OpEqual, Kind: kind}
}

func Like(param string, columns ...string) Filter {
	return Filter{Param: param, Columns: columns, Op: OpLike, Kind: Text}
}

func Between(lowParam, highParam, column string, kind Kind) Filter {
	return Filter{Param: lowParam, HighParam: highParam, Columns: []string{column}, Op: OpBetween, Kind: kind}
}

func AtLeast(param, column string, kind Kind) Filter {
	return Filter{Param: param, Columns: []string{column}, Op: OpGreaterOrEqual, Kind: kind}
}

func AtMost(param, column string, kind Kind) Filter {
	return Filter{Param: param, Columns: []string{column}, Op: OpLessOrEqual, Kind: kind}
}

func In(param, column string, kind Kind) Filter {
	return Filter{Param: param, Columns: []string{column}, Op: OpIn, Kind: kind}
}

// Require marks the filter as mandatory.
func (f Filter) Require() Filter {
	f.Required = true
	return f
}

// predicate returns the clause for f, or ok=false when the request does not
// carry a usable value for it. A required filter without one is an error.
func (f Filter) predicate(params Params) (sq.Sqlizer, bool, error) {
	pred, ok, err := f.build(params)
	if err != nil {
		return nil, false, err
	}
	if !ok && f.Required {
		return nil, false, &ParamError{Param: f.Param, Reason: "is required"}
	}
	return pred, ok, nil
}

func (f Filter) build(params Params) (pred sq.Sqlizer, ok bool, err error) {
	raw := params.Get(f.Param)

	switch f.Op {
	case OpEqual, OpGreaterOrEqual, OpLessOrEqual:
		if raw == "" {
			return nil, false, nil
		}
		v, err := f.coerce(f.Param, raw)
		if err != nil {
			return nil, false, err
		}
		switch f.Op {
		case OpGreaterOrEqual:
			return sq.GtOrEq{f.Columns[0]: v}, true, nil
		case OpLessOrEqual:
			return f.upper(v), true, nil
		}
		if f.Kind.wholeDay {
			return sq.And{sq.GtOrEq{f.Columns[0]: v}, f.upper(v)}, true, nil
		}
		return sq.Eq{f.Columns[0]: v}, true, nil

	case OpLike:
		if raw == "" {
			return nil, false, nil
		}
		pattern := "%" + EscapeLike(raw) + "%"
		if len(f.Columns) == 1 {
			return sq.ILike{f.Columns[0]: pattern}, true, nil
		}
		or := make(sq.Or, 0, len(f.Columns))
		for _, col := range f.Columns {
			or = append(or, sq.ILike{col: pattern})
		}
		return or, true, nil

	case OpBetween:
		high := params.Get(f.HighParam)
		if raw == "" && high == "" {
			return nil, false, nil
		}
		var lo, hi any
		if raw != "" {
			if lo, err = f.coerce(f.Param, raw); err != nil {
				return nil, false, err
			}
		}
		if high != "" {
			if hi, err = f.coerce(f.HighParam, high); err != nil {
				return nil, false, err
			}
		}
		switch {
		case raw != "" && high != "" && f.Kind.wholeDay:
			return sq.And{sq.GtOrEq{f.Columns[0]: lo}, f.upper(hi)}, true, nil
		case raw != "" && high != "":
			return sq.Expr(f.Columns[0]+" BETWEEN ? AND ?", lo, hi), true, nil
		case raw != "":
			return sq.GtOrEq{f.Columns[0]: lo}, true, nil
		default:
			return f.upper(hi), true, nil
		}

	case OpIn:
		values := make([]any, 0)
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := f.coerce(f.Param, part)
			if err != nil {
				return nil, false, err
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			return nil, false, nil
		}
		return sq.Eq{f.Columns[0]: values}, true, nil
	}

	return nil, false, fmt.Errorf("listquery: unknown operator %d for %q", f.Op, f.Param)
}

// upper renders the inclusive upper bound v. For whole-day kinds that is an
// exclusive bound at the next midnight.
func (f Filter) upper(v any) sq.Sqlizer {
	if t, ok := v.(time.Time); ok && f.Kind.wholeDay {
		return sq.Lt{f.Columns[0]: t.AddDate(0, 0, 1)}
	}
	return sq.LtOrEq{f.Columns[0]: v}
}

func (f Filter) coerce(param, raw string) (any, error) {
	v, err := f.Kind.Coerce(raw)
	if err != nil {
		return nil, &ParamError{Param: param, Reason: fmt.Sprintf("expected %s: %v", f.Kind, err)}
	}
	return v, nil
}

// EscapeLike neutralizes LIKE metacharacters so the value matches literally.
// Backslash is the default escape character of LIKE/ILIKE in PostgreSQL.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Params holds request values by name. A missing or empty value means the
// filter is not applied.
type Params map[string]string

func (p Params) Get(key string) string {
	if p == nil || key == "" {
		return ""
	}
	return strings.TrimSpace(p[key])
}

// ParamsFromValues flattens query values; repeated keys are joined with a
// comma so OpIn filters accept both `?s=A,B` and `?s=A&s=B`.
func ParamsFromValues(values url.Values) Params {
	params := make(Params, len(values))
	for k, vs := range values {
		nonEmpty := make([]string, 0, len(vs))
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				nonEmpty = append(nonEmpty, v)
			}
		}
		params[k] = strings.Join(nonEmpty, ",")
	}
	return params
}
