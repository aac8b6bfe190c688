package services

import (
	"errors"
	"fmt"

	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/internal/statemachine"
)

// Error kinds. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound                = errors.New("registro no encontrado")
	ErrForbidden               = errors.New("no autorizado para este negocio")
	ErrUnauthenticated         = errors.New("credenciales inválidas")
	ErrValidation              = errors.New("datos inválidos")
	ErrCrossBusinessMismatch   = errors.New("el cliente y la transacción pertenecen a negocios distintos")
	ErrDuplicateEmail          = errors.New("el email ya está registrado")
	ErrDuplicateClientIdentity = errors.New("ya existe un cliente con esa identidad en el negocio")
	ErrWeakPassword            = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrExceedsBalance          = statemachine.ErrExceedsBalance
	ErrServiceUnavailable      = repository.ErrUnavailable
)

// Error is a kind with a user facing message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

var (
	errBusinessNotFound     = &Error{Kind: ErrNotFound, Message: "Negocio no encontrado"}
	errClientNotFound       = &Error{Kind: ErrNotFound, Message: "Cliente no encontrado"}
	errTransactionNotFound  = &Error{Kind: ErrNotFound, Message: "Transacción no encontrada"}
	errDebtNotFound         = &Error{Kind: ErrNotFound, Message: "Deuda no encontrada"}
	errUserNotFound         = &Error{Kind: ErrNotFound, Message: "Usuario no encontrado"}
	errNotificationNotFound = &Error{Kind: ErrNotFound, Message: "Notificación no encontrada"}
	errMembershipNotFound   = &Error{Kind: ErrNotFound, Message: "El usuario no pertenece al negocio"}
)

// lookup turns a missing row into notFound and passes other errors through
func lookup(err error, notFound error) error {
	if repository.IsNotFound(err) {
		return notFound
	}
	return err
}
