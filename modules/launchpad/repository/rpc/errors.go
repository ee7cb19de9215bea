package rpc

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/pkg/jsonrpc"
)

// Error codes returned by the launchpad endpoint, next to the standard JSON-RPC ones.
const (
	CodeMethodNotFound    = -32601
	CodeInvalidParams     = -32602
	CodeSimulationFailed  = -32002
	CodeNotFound          = -32100
	CodeInsufficientFunds = -32101
	CodeGuardRejected     = -32102
	CodeSupplyExhausted   = -32103
	CodeValidationFailure = -32104
)

var codeKinds = map[int]errs.ErrorKind{
	CodeMethodNotFound:    errs.Unsupported,
	CodeInvalidParams:     errs.ValidationFailure,
	CodeNotFound:          errs.NotFound,
	CodeInsufficientFunds: errs.InsufficientFunds,
	CodeGuardRejected:     errs.GuardRejected,
	CodeSupplyExhausted:   errs.SupplyExhausted,
	CodeValidationFailure: errs.ValidationFailure,
}

// RemoteError is a remote error classified under an error kind.
// It unwraps to the kind and converts to the underlying *jsonrpc.Error with errors.As.
type RemoteError struct {
	Kind   errs.ErrorKind
	Remote *jsonrpc.Error
}

func (e *RemoteError) Error() string {
	return e.Kind.Error() + ": " + e.Remote.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

func (e *RemoteError) As(target any) bool {
	if remote, ok := target.(**jsonrpc.Error); ok {
		*remote = e.Remote
		return true
	}
	return false
}

func kindOf(rpcErr *jsonrpc.Error) (errs.ErrorKind, bool) {
	if kind, ok := codeKinds[rpcErr.Code]; ok {
		return kind, true
	}
	if rpcErr.Code == CodeSimulationFailed {
		message := strings.ToLower(rpcErr.Message)
		if strings.Contains(message, "insufficient funds") || strings.Contains(message, "no record of a prior credit") {
			return errs.InsufficientFunds, true
		}
		return errs.ValidationFailure, true
	}
	return "", false
}

// mapError classifies errors of launchpad calls by error kind.
func mapError(err error, method string) error {
	rpcErr, ok := jsonrpc.AsError(err)
	if !ok {
		return errors.Wrap(err, method)
	}
	kind, ok := kindOf(rpcErr)
	if !ok {
		return errors.Wrap(err, method)
	}
	if rpcErr.Code == CodeMethodNotFound {
		return errs.WithPublicMessage(errors.Wrap(&RemoteError{Kind: kind, Remote: rpcErr}, method),
			"the rpc endpoint doesn't serve the launchpad API, pass its address with --rpc")
	}
	return errors.Wrap(&RemoteError{Kind: kind, Remote: rpcErr}, method)
}

// mapClusterError classifies errors of standard cluster calls.
func mapClusterError(err error, method string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, method)
	}
	return errors.WithSecondaryError(errors.Wrapf(errs.NetworkFailure, "%s: %v", method, err), err)
}
