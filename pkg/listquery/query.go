// Package listquery turns optional request filters and pagination into a
// count query and a paginated data query sharing one WHERE clause, runs both
// and assembles a {data, pagination} page.
package listquery

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const (
	ParamPage      = "page"
	ParamLimit     = "limit"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"

	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Table describes the relation a list endpoint reads from.
type Table struct {
	// Name is the FROM item including its alias, e.g. "public.subjects s".
	Name    string
	Columns []string
	// Joins are LEFT JOIN items, e.g. "public.majors m ON s.major_id = m.id".
	Joins []string

	DefaultSort  string
	DefaultOrder string
	// TieBreaker keeps page boundaries stable when DefaultSort has duplicates.
	TieBreaker string
	// Sortable maps accepted sortBy values to columns. Anything else falls
	// back to DefaultSort.
	Sortable map[string]string
}

type Query struct {
	Table   Table
	Filters []Filter

	DefaultLimit int
	MaxLimit     int
}

// Statement is a built count/data pair. Both queries bind Args.
type Statement struct {
	CountSQL   string
	DataSQL    string
	Args       []any
	Pagination Pagination

	// PaginationErr is ErrInvalidPagination when page or limit were clamped.
	PaginationErr error
}

// Build walks the filters in declaration order and renders both queries.
// Absent filters contribute nothing; a WHERE clause is only emitted when at
// least one filter is present.
func (q Query) Build(params Params) (*Statement, error) {
	where := sq.And{}
	for _, f := range q.Filters {
		pred, ok, err := f.predicate(params)
		if err != nil {
			return nil, err
		}
		if ok {
			where = append(where, pred)
		}
	}

	page, pageErr := ParsePagination(params.Get(ParamPage), params.Get(ParamLimit), q.DefaultLimit, q.MaxLimit)

	count := psql.Select("COUNT(*)").From(q.Table.Name)
	data := psql.Select(q.Table.Columns...).From(q.Table.Name)
	for _, join := range q.Table.Joins {
		count = count.LeftJoin(join)
		data = data.LeftJoin(join)
	}
	if len(where) > 0 {
		count = count.Where(where)
		data = data.Where(where)
	}

	data = data.
		OrderBy(q.orderBy(params)...).
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	countSQL, args, err := count.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build count query")
	}

	dataSQL, dataArgs, err := data.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build data query")
	}
	if len(dataArgs) != len(args) {
		return nil, errors.Errorf("listquery: count binds %d values, data binds %d", len(args), len(dataArgs))
	}

	return &Statement{
		CountSQL:      countSQL,
		DataSQL:       dataSQL,
		Args:          args,
		Pagination:    page,
		PaginationErr: pageErr,
	}, nil
}

func (q Query) orderBy(params Params) []string {
	column := q.Table.DefaultSort
	if sortBy := params.Get(ParamSortBy); sortBy != "" {
		if c, ok := q.Table.Sortable[sortBy]; ok {
			column = c
		}
	}

	order := strings.ToUpper(q.Table.DefaultOrder)
	if order != OrderAsc {
		order = OrderDesc
	}
	switch strings.ToUpper(params.Get(ParamSortOrder)) {
	case OrderAsc:
		order = OrderAsc
	case OrderDesc:
		order = OrderDesc
	}

	clauses := []string{column + " " + order}
	if q.Table.TieBreaker != "" && q.Table.TieBreaker != column {
		clauses = append(clauses, q.Table.TieBreaker+" "+order)
	}

	return clauses
}
