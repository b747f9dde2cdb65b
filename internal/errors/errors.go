package gerr

import (
	"errors"
	"fmt"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies an Error so callers can switch on it instead of inspecting types.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAlreadyExists
	KindNoContent
	KindFailed
	KindUnauthenticated
	KindTooManyRequests
	KindInternal
)

// ExitCode is the application specific code returned in the error envelope.
type ExitCode int

// VALIDATION_EXIT_CODE
const (
	ExitEmpty         ExitCode = 1001
	ExitInvalidFormat ExitCode = 1002
	ExitInvalidValue  ExitCode = 1003
	ExitInvalidRange  ExitCode = 1004
	ExitTooLarge      ExitCode = 1005
)

// DATABASE_EXIT_CODE
const (
	ExitUnknownValue     ExitCode = 2001
	ExitUniqueFieldValue ExitCode = 2002
	ExitNoContent        ExitCode = 2003
	ExitOperatorError    ExitCode = 2004
)

// SERVER_EXIT_CODE
const (
	ExitInternalServerError ExitCode = 3001
)

// AUTH_EXIT_CODE
const (
	ExitUnauthorized    ExitCode = 4001
	ExitTooManyRequests ExitCode = 4002
)

const internalMessage = "Lỗi hệ thống, vui lòng thử lại sau."

// Error is the typed domain error. It passes through orchestrators unchanged.
type Error struct {
	Kind    Kind
	Code    ExitCode
	Message string
	// Fields holds per-field validation messages.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// GRPCStatus lets status.Code and status.Convert understand Error.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Kind.Code(), e.Message)
}

// HTTPStatus returns the HTTP status used by the response envelope.
func (e *Error) HTTPStatus() int {
	return runtime.HTTPStatusFromCode(e.Kind.Code())
}

// Code maps a Kind onto a grpc code.
func (k Kind) Code() codes.Code {
	switch k {
	case KindValidation:
		return codes.InvalidArgument
	case KindNotFound, KindNoContent:
		return codes.NotFound
	case KindAlreadyExists:
		return codes.AlreadyExists
	case KindFailed:
		return codes.Aborted
	case KindUnauthenticated:
		return codes.Unauthenticated
	case KindTooManyRequests:
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindNoContent:
		return "no_content"
	case KindFailed:
		return "failed"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

func Validation(code ExitCode, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg}
}

// InvalidFields builds a validation error carrying per-field messages.
func InvalidFields(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: ExitInvalidValue, Message: msg, Fields: fields}
}

// NotFound formats msg with args, e.g. NotFound("[Banner] không tồn tại (id: %s)", id).
func NotFound(msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: KindNotFound, Code: ExitUnknownValue, Message: msg}
}

func AlreadyExists(msg string) *Error {
	return &Error{Kind: KindAlreadyExists, Code: ExitUniqueFieldValue, Message: msg}
}

func NoContent(msg string) *Error {
	return &Error{Kind: KindNoContent, Code: ExitNoContent, Message: msg}
}

func Failed(msg string) *Error {
	return &Error{Kind: KindFailed, Code: ExitOperatorError, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: ExitUnauthorized, Message: msg}
}

func TooManyRequests(msg string) *Error {
	return &Error{Kind: KindTooManyRequests, Code: ExitTooManyRequests, Message: msg}
}

func Internal() *Error {
	return &Error{Kind: KindInternal, Code: ExitInternalServerError, Message: internalMessage}
}

// As reports whether err is (or wraps) a typed Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Wrap returns err unchanged when it already is a typed Error and fallback otherwise.
func Wrap(err error, fallback *Error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return fallback
}

// Is reports whether err is a typed Error of kind k.
func Is(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

// Convert returns the typed form of any error, defaulting to Internal.
func Convert(err error) *Error {
	if e, ok := As(err); ok {
		return e
	}
	return Internal()
}
