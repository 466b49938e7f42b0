package apperrors

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error is a failure the API reports to the client as-is: an HTTP
// status and a human-readable message.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Msg: msg}
}

// Postgres error codes the API translates into client responses.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
	pgUndefinedColumn           = "42703"
)

// FromPostgres maps a store-level constraint failure onto the client
// error it implies. Returns nil when the error carries no Postgres
// code, or a code the API does not recognise, so callers can fall
// through to a generic 500.
func FromPostgres(err error) *Error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	detail := pgErr.Detail
	if detail == "" {
		detail = pgErr.Message
	}

	switch pgErr.Code {
	case pgInvalidTextRepresentation, pgNotNullViolation, pgUndefinedColumn:
		return BadRequest(pgErr.Message)
	case pgForeignKeyViolation:
		return NotFound(detail)
	case pgUniqueViolation:
		return Conflict(detail)
	case pgCheckViolation:
		return BadRequest(detail)
	}
	return nil
}
