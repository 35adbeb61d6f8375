package commands

import (
	"context"
	"time"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler runs one admin command: the message is validated, a deadline is
// applied, and failures come back tagged with a go-errors category so the
// HTTP layer can map them.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// NewHandler wraps fn into a go-command Commander. Without options the
// handler logs nowhere and enforces the default 30s timeout.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: DefaultCommandTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute implements command.Commander[T]. The message is validated before
// the deadline starts so a rejected payload never consumes execution time.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	ctx = EnsureContext(ctx)
	ctx, cancel := WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	messageType := command.GetMessageType(msg)
	fields := map[string]any{
		"command": messageType,
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	logger := logging.WithFields(h.logger, fields)
	logger.Debug("command.execute.start")

	if err := h.exec(ctx, msg); err != nil {
		logger.Error("command.execute.failed", "error", err)
		return wrapExecuteError(err)
	}

	if err := ctx.Err(); err != nil {
		logger.Error("command.execute.context_error", "error", err)
		return wrapContextError(err)
	}

	logger.Info("command.execute.success")
	return nil
}

// WithTimeout overrides the default execution timeout.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.logger = EnsureLogger(logger)
	}
}

// WithOperation sets a human-friendly operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}
