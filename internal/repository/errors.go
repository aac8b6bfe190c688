package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey wraps any unique constraint violation
	ErrDuplicateKey = errors.New("registro duplicado")
	// ErrConcurrentUpdate means a guarded write matched no row because another writer got there first
	ErrConcurrentUpdate = errors.New("el registro fue modificado por otra operación")
	// ErrUnavailable is returned once transient store failures outlast the retry budget
	ErrUnavailable = errors.New("servicio no disponible, intente de nuevo")
)

// IsNotFound reports whether err is gorm's missing-row error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func translateError(err error) error {
	if isDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

// IsTransient reports store failures that may succeed on a fresh attempt:
// lost connections, serialization failures, deadlocks and lost optimistic updates.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConcurrentUpdate) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return true
		}
		// class 08: connection exception
		return strings.HasPrefix(pgErr.Code, "08")
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.SafeToRetry(err) {
		return true
	}

	return strings.Contains(err.Error(), "database is locked")
}
