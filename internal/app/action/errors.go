package action

import (
	"context"
	"errors"
	"fmt"
)

// Error codes with dedicated handling in the game API envelope.
const (
	CodeNoOp           = 490
	CodeCooldownActive = 499
)

var (
	ErrQueueClosed       = errors.New("action queue closed")
	ErrInvalidRequest    = errors.New("invalid action request")
	ErrTransport         = errors.New("transport failure")
	ErrProtocolViolation = errors.New("invalid api response")
	ErrCooldownRejected  = errors.New("character in cooldown")
	ErrNoOp              = errors.New("action had no effect")
	ErrAPI               = errors.New("api error")
)

type FailureKind string

const (
	KindTransport         FailureKind = "transport"
	KindProtocolViolation FailureKind = "protocol_violation"
	KindCooldownRejected  FailureKind = "cooldown_rejected"
	KindNoOp              FailureKind = "noop"
	KindAPI               FailureKind = "api"
	KindCanceled          FailureKind = "canceled"
	KindUnknown           FailureKind = "unknown"
)

// APIError is a remote rejection other than cooldown or no-op, carrying the
// code and message verbatim.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCooldownRejected):
		return KindCooldownRejected
	case errors.Is(err, ErrNoOp):
		return KindNoOp
	case errors.Is(err, ErrAPI):
		return KindAPI
	case errors.Is(err, ErrProtocolViolation):
		return KindProtocolViolation
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindUnknown
	}
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func protocolError(reason string) error {
	return fmt.Errorf("%w: %s", ErrProtocolViolation, reason)
}
