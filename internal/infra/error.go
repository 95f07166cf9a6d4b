package infra

import (
	"errors"

	"vinyl-storefront/internal/infra/rest"
	"vinyl-storefront/internal/pkg/errs"
)

type GatewayErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound       GatewayErrorKind = "NOT_FOUND"
	KindConflict       GatewayErrorKind = "CONFLICT"
	KindBadPayload     GatewayErrorKind = "BAD_PAYLOAD"
	KindUnavailable    GatewayErrorKind = "UNAVAILABLE"
	KindBackendFailure GatewayErrorKind = "BACKEND_FAILURE"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(msg string, err error, kinds ...GatewayErrorKind) error {
	kind := KindBackendFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

// WrapBackendErr classifies a REST client failure into a gateway kind by
// inspecting the HTTP status carried on the error.
func WrapBackendErr(msg string, err error) error {
	return WrapGatewayErr(msg, err, classify(err))
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) GatewayErrorKind {
	var apiErr *rest.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case 404:
			return KindNotFound
		case 409:
			return KindConflict
		default:
			return KindBackendFailure
		}
	}
	if errors.Is(err, rest.ErrDecode) {
		return KindBadPayload
	}
	return KindUnavailable
}
