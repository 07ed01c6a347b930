package psqlpool

import (
	"context"
	"fmt"

	"rmu/credit_bank_service/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
)

// Pool wraps pgxpool.Pool with an opentracing span per call. It is built
// once in main and passed down; nothing here is global.
type Pool struct {
	Db *pgxpool.Pool
}

// Stats is the connection pool snapshot reported by the health endpoint.
type Stats struct {
	TotalConns    int32 `json:"totalConns"`
	IdleConns     int32 `json:"idleConns"`
	AcquiredConns int32 `json:"acquiredConns"`
	MaxConns      int32 `json:"maxConns"`
}

func DSN(cfg config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDatabase,
	)
}

func New(ctx context.Context, cfg config.Config) (*Pool, error) {
	return NewFromDSN(ctx, DSN(cfg), cfg.PostgresMaxConnections)
}

func NewFromDSN(ctx context.Context, dsn string, maxConns int32) (*Pool, error) {
	pgCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if maxConns > 0 {
		pgCfg.MaxConns = maxConns
	}

	db, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Pool{Db: db}, nil
}

func startSpan(ctx context.Context, name, sql string, args []any) (opentracing.Span, context.Context) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, name)
	ext.DBType.Set(dbSpan, "postgresql")
	if sql != "" {
		ext.DBStatement.Set(dbSpan, sql)
		dbSpan.SetTag("args", args)
	}
	return dbSpan, ctx
}

func finishWithError(span opentracing.Span, err error) {
	if err != nil {
		ext.Error.Set(span, true)
		span.LogKV("error.message", err.Error())
	}
	span.Finish()
}

// QueryRow keeps its span open until the row is scanned, which is when pgx
// actually runs the query.
func (b *Pool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	dbSpan, ctx := startSpan(ctx, "pgx.QueryRow", sql, args)

	return &tracedRow{row: b.Db.QueryRow(ctx, sql, args...), span: dbSpan}
}

type tracedRow struct {
	row  pgx.Row
	span opentracing.Span
}

func (r *tracedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		r.span.SetTag("rows", 0)
		r.span.Finish()
		return err
	}
	finishWithError(r.span, err)
	return err
}

func (b *Pool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	dbSpan, ctx := startSpan(ctx, "pgx.Query", sql, args)

	rows, err := b.Db.Query(ctx, sql, args...)
	finishWithError(dbSpan, err)

	return rows, err
}

func (b *Pool) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	dbSpan, ctx := startSpan(ctx, "pgx.Exec", sql, arguments)

	tag, err := b.Db.Exec(ctx, sql, arguments...)
	finishWithError(dbSpan, err)

	return tag, err
}

func (b *Pool) Begin(ctx context.Context) (pgx.Tx, error) {
	dbSpan, ctx := startSpan(ctx, "pgx.Begin", "", nil)

	tx, err := b.Db.Begin(ctx)
	finishWithError(dbSpan, err)

	return tx, err
}

func (b *Pool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	dbSpan, ctx := startSpan(ctx, "pgx.BeginTx", "", nil)
	dbSpan.SetTag("isolation", string(txOptions.IsoLevel))

	tx, err := b.Db.BeginTx(ctx, txOptions)
	finishWithError(dbSpan, err)

	return tx, err
}

func (b *Pool) Ping(ctx context.Context) error {
	dbSpan, ctx := startSpan(ctx, "pgx.Ping", "", nil)

	err := b.Db.Ping(ctx)
	finishWithError(dbSpan, err)

	return err
}

func (b *Pool) Stat() Stats {
	s := b.Db.Stat()
	return Stats{
		TotalConns:    s.TotalConns(),
		IdleConns:     s.IdleConns(),
		AcquiredConns: s.AcquiredConns(),
		MaxConns:      s.MaxConns(),
	}
}

func (b *Pool) Close() {
	b.Db.Close()
}
