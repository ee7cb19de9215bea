// Package jsonrpc is a JSON-RPC 2.0 client over the fasthttp based httpclient.
package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/pkg/httpclient"
)

const Version = "2.0"

type Client struct {
	httpClient *httpclient.Client
	nextID     atomic.Uint64
}

func New(endpoint string, config ...httpclient.Config) (*Client, error) {
	httpClient, err := httpclient.New(endpoint, config...)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{
		httpClient: httpClient,
	}, nil
}

type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is an error object returned by the remote endpoint.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Call invokes method with params and decodes the result into result (if not nil).
// Transport failures wrap errs.NetworkFailure, remote errors are returned as *Error.
func (c *Client) Call(ctx context.Context, method string, params any, result any) error {
	request := Request{
		JSONRPC: Version,
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(request)
	if err != nil {
		return errors.Wrapf(err, "can't marshal %s request", method)
	}

	resp, err := c.httpClient.Post(ctx, "", httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		if errors.Is(err, errs.Timeout) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return errors.Wrapf(err, "%s", method)
		}
		return networkFailure(err, "can't send %s request", method)
	}

	var response Response
	if err := resp.UnmarshalBody(&response); err != nil {
		return networkFailure(err, "invalid %s response, status %d", method, resp.StatusCode())
	}
	if response.Error != nil {
		return errors.WithStack(response.Error)
	}
	if response.ID != request.ID {
		return errors.Wrapf(errs.NetworkFailure, "%s response id mismatch: got %d, want %d", method, response.ID, request.ID)
	}
	if result == nil {
		return nil
	}
	if len(response.Result) == 0 {
		return errors.Wrapf(errs.NetworkFailure, "%s response has no result", method)
	}
	if err := json.Unmarshal(response.Result, result); err != nil {
		return networkFailure(err, "can't decode %s result", method)
	}
	return nil
}

// networkFailure wraps errs.NetworkFailure with the message of cause, cause stays attached for verbose logs.
func networkFailure(cause error, format string, args ...any) error {
	return errors.WithSecondaryError(errors.Wrapf(errs.NetworkFailure, format+": %v", append(args, cause)...), cause)
}

// AsError returns the remote error of the chain, if any.
func AsError(err error) (*Error, bool) {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}
