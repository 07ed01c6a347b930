package helper

import (
	"fmt"
	"net/http"

	"rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindConflict
	KindUnauthorized
	KindForbidden
	KindUnavailable
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is what storage and service code hand to the HTTP layer. Message is
// safe to show to clients; Err keeps the driver error for logs.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Invalid(field, message string) error {
	return &Error{Kind: KindInvalid, Field: field, Message: message}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

// AsError classifies any error into an *Error. Unknown errors become
// KindInternal with a generic message.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var pe *listquery.ParamError
	if errors.As(err, &pe) {
		return &Error{Kind: KindInvalid, Field: pe.Param, Message: pe.Error(), Err: err}
	}

	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// HandleDatabaseError maps driver errors onto service error kinds. A list
// query failure passes through listquery.StorageError first.
func HandleDatabaseError(err error, log logger.LoggerI, message string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &Error{Kind: KindNotFound, Message: message + ": not found", Err: err}
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		log.Error(message+": "+err.Error(),
			logger.String("code", pgErr.Code),
			logger.String("column", pgErr.ColumnName),
			logger.String("constraint", pgErr.ConstraintName),
		)

		switch pgErr.Code {
		case "23505":
			// unique violation
			return &Error{Kind: KindConflict, Message: fmt.Sprintf("already exists: %s", pgErr.ConstraintName), Err: err}
		case "23503":
			// foreign key violation
			return &Error{Kind: KindInvalid, Field: pgErr.ColumnName, Message: fmt.Sprintf("foreign key violation: %s", pgErr.ConstraintName), Err: err}
		case "23514":
			return &Error{Kind: KindInvalid, Message: fmt.Sprintf("check constraint violation: %s", pgErr.ConstraintName), Err: err}
		case "23502":
			return &Error{Kind: KindInvalid, Field: pgErr.ColumnName, Message: fmt.Sprintf("%s is required", pgErr.ColumnName), Err: err}
		case "22P02", "22007", "22008":
			// invalid text representation, datetime format, datetime overflow
			return &Error{Kind: KindInvalid, Message: "invalid input value", Err: err}
		case "22003":
			return &Error{Kind: KindInvalid, Message: "numeric value out of range", Err: err}
		case "08006", "08001", "57P01", "57P03":
			// connection failure, cannot connect, admin shutdown, cannot connect now
			return &Error{Kind: KindUnavailable, Message: "database unavailable", Err: err}
		case "40001", "40P01":
			// serialization failure, deadlock
			return &Error{Kind: KindConflict, Message: "concurrent update, retry the request", Err: err}
		default:
			return &Error{Kind: KindInternal, Message: message, Err: err}
		}
	}

	if listquery.IsStorageError(err) {
		log.Error(message, logger.Error(err))
	}

	return &Error{Kind: KindInternal, Message: message, Err: err}
}
