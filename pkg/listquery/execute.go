package listquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// Querier is satisfied by *pgxpool.Pool, pgx.Tx and the traced pool wrapper.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PageResult[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageInfo `json:"pagination"`
}

// Execute runs the count and data queries concurrently. The first failure
// cancels the other query and is returned as a *StorageError.
func Execute[T any](ctx context.Context, db Querier, stmt *Statement, scan pgx.RowToFunc[T]) (*PageResult[T], error) {
	var (
		total int64
		rows  []T
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		total, err = countRows(gctx, db, stmt)
		return err
	})

	g.Go(func() (err error) {
		rows, err = fetchRows(gctx, db, stmt, scan)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newPageResult(stmt.Pagination, total, rows), nil
}

// ExecuteSnapshot runs both queries sequentially inside one read-only
// repeatable read transaction so total and rows see the same snapshot.
func ExecuteSnapshot[T any](ctx context.Context, db TxBeginner, stmt *Statement, scan pgx.RowToFunc[T]) (*PageResult[T], error) {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, &StorageError{Op: "begin snapshot", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	total, err := countRows(ctx, tx, stmt)
	if err != nil {
		return nil, err
	}

	rows, err := fetchRows(ctx, tx, stmt, scan)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &StorageError{Op: "commit snapshot", Err: err}
	}

	return newPageResult(stmt.Pagination, total, rows), nil
}

type options struct {
	snapshot bool
	onClamp  func(error)
}

type Option func(*options)

// WithSnapshot switches Run to ExecuteSnapshot. The Querier must also
// implement TxBeginner.
func WithSnapshot(enabled bool) Option {
	return func(o *options) { o.snapshot = enabled }
}

// OnClamp is called with ErrInvalidPagination when page or limit were
// clamped.
func OnClamp(fn func(error)) Option {
	return func(o *options) { o.onClamp = fn }
}

// Run builds q against params and executes it.
func Run[T any](ctx context.Context, db Querier, q Query, params Params, scan pgx.RowToFunc[T], opts ...Option) (*PageResult[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	stmt, err := q.Build(params)
	if err != nil {
		return nil, err
	}

	if stmt.PaginationErr != nil && o.onClamp != nil {
		o.onClamp(stmt.PaginationErr)
	}

	if o.snapshot {
		if beginner, ok := db.(TxBeginner); ok {
			return ExecuteSnapshot(ctx, beginner, stmt, scan)
		}
	}

	return Execute(ctx, db, stmt, scan)
}

func countRows(ctx context.Context, db Querier, stmt *Statement) (int64, error) {
	var total int64
	if err := db.QueryRow(ctx, stmt.CountSQL, stmt.Args...).Scan(&total); err != nil {
		return 0, &StorageError{Op: "count", Err: err}
	}
	return total, nil
}

func fetchRows[T any](ctx context.Context, db Querier, stmt *Statement, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := db.Query(ctx, stmt.DataSQL, stmt.Args...)
	if err != nil {
		return nil, &StorageError{Op: "data", Err: err}
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, &StorageError{Op: "data", Err: err}
	}

	return items, nil
}

func newPageResult[T any](p Pagination, total int64, rows []T) *PageResult[T] {
	if rows == nil {
		rows = []T{}
	}
	return &PageResult[T]{Data: rows, Pagination: NewPageInfo(p, total)}
}
