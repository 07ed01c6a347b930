package postgres

import (
	"context"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/jaeger"
	"rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/pkg/metrics"
	psqlpool "rmu/credit_bank_service/pkg/pool"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// crud holds what every entity repo shares: the list definition, the
// table written to and the column that identifies a row.
type crud[T any] struct {
	db       *psqlpool.Pool
	log      logger.LoggerI
	snapshot bool

	entity   string // singular, used in messages
	table    string // write target without alias
	idColumn string // qualified with the list alias
	query    listquery.Query
}

func newQuery(table listquery.Table, filters ...listquery.Filter) listquery.Query {
	return listquery.Query{
		Table:        table,
		Filters:      filters,
		DefaultLimit: config.DefaultLimit,
		MaxLimit:     config.MaxLimit,
	}
}

func (c crud[T]) list(ctx context.Context, params listquery.Params) (*listquery.PageResult[T], error) {
	span, ctx := jaeger.StartSpanFromContext(ctx, c.table+".GetList", params)
	defer span.Finish()

	return runList[T](ctx, c.db, c.log, c.snapshot, c.table, c.query, params)
}

func runList[T any](ctx context.Context, db listquery.Querier, log logger.LoggerI, snapshot bool, resource string, q listquery.Query, params listquery.Params) (*listquery.PageResult[T], error) {
	res, err := listquery.Run(ctx, db, q, params, pgx.RowToStructByName[T],
		listquery.WithSnapshot(snapshot),
		listquery.OnClamp(func(err error) {
			log.Warn("pagination clamped", logger.String("resource", resource), logger.Error(err))
		}),
	)
	if err != nil {
		if listquery.IsParamError(err) {
			metrics.ListErrors.WithLabelValues(resource, "param").Inc()
			return nil, err
		}
		metrics.ListErrors.WithLabelValues(resource, "storage").Inc()
		return nil, helper.HandleDatabaseError(err, log, "list "+resource)
	}

	metrics.ListTotalRows.WithLabelValues(resource).Observe(float64(res.Pagination.Total))
	return res, nil
}

func (c crud[T]) selectBuilder() sq.SelectBuilder {
	b := psql.Select(c.query.Table.Columns...).From(c.query.Table.Name)
	for _, join := range c.query.Table.Joins {
		b = b.LeftJoin(join)
	}
	return b
}

func (c crud[T]) getOne(ctx context.Context, db listquery.Querier, where sq.Sqlizer) (*T, error) {
	query, args, err := c.selectBuilder().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select")
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, helper.HandleDatabaseError(err, c.log, "get "+c.entity)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, helper.NotFound(c.entity + " not found")
	}
	if err != nil {
		return nil, helper.HandleDatabaseError(err, c.log, "get "+c.entity)
	}

	return &item, nil
}

func (c crud[T]) getByID(ctx context.Context, id int64) (*T, error) {
	return c.getOne(ctx, c.db, sq.Eq{c.idColumn: id})
}

// insert writes values and returns the new row id.
func (c crud[T]) insert(ctx context.Context, db listquery.Querier, values map[string]any) (int64, error) {
	query, args, err := psql.Insert(c.table).SetMap(values).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build insert")
	}

	var id int64
	if err = db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, helper.HandleDatabaseError(err, c.log, "create "+c.entity)
	}

	return id, nil
}

func (c crud[T]) create(ctx context.Context, values map[string]any) (*T, error) {
	id, err := c.insert(ctx, c.db, values)
	if err != nil {
		return nil, err
	}
	return c.getByID(ctx, id)
}

// update writes only the supplied columns. An empty set is rejected.
func (c crud[T]) update(ctx context.Context, id int64, values map[string]any) (*T, error) {
	if len(values) == 0 {
		return nil, helper.Invalid("", "no fields to update")
	}

	query, args, err := psql.Update(c.table).
		SetMap(values).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build update")
	}

	var updated int64
	err = c.db.QueryRow(ctx, query, args...).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, helper.NotFound(c.entity + " not found")
	}
	if err != nil {
		return nil, helper.HandleDatabaseError(err, c.log, "update "+c.entity)
	}

	return c.getByID(ctx, updated)
}

func (c crud[T]) delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(c.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errors.Wrap(err, "build delete")
	}

	tag, err := c.db.Exec(ctx, query, args...)
	if err != nil {
		return helper.HandleDatabaseError(err, c.log, "delete "+c.entity)
	}
	if tag.RowsAffected() == 0 {
		return helper.NotFound(c.entity + " not found")
	}

	return nil
}
