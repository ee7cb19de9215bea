package logger

import (
	"context"
	"log/slog"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(handleFunc) handleFunc
)

// chainHandlers runs records through middlewares before the wrapped handler.
type chainHandlers struct {
	h           slog.Handler
	middlewares []middleware
	handle      handleFunc
}

func newChainHandlers(handler slog.Handler, middlewares ...middleware) *chainHandlers {
	h := handler.Handle
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return &chainHandlers{
		h:           handler,
		middlewares: middlewares,
		handle:      h,
	}
}

func (c *chainHandlers) Enabled(ctx context.Context, lvl slog.Level) bool {
	return c.h.Enabled(ctx, lvl)
}

func (c *chainHandlers) Handle(ctx context.Context, rec slog.Record) error {
	return c.handle(ctx, rec)
}

func (c *chainHandlers) WithGroup(group string) slog.Handler {
	return newChainHandlers(c.h.WithGroup(group), c.middlewares...)
}

func (c *chainHandlers) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newChainHandlers(c.h.WithAttrs(attrs), c.middlewares...)
}
