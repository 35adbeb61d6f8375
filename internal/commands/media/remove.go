package mediacmd

import (
	"context"

	"github.com/carnelle/portfolio/internal/commands"
	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const removeMediaMessageType = "portfolio.media.remove"

// RemoveMediaCommand deletes a media item and its stored blob.
type RemoveMediaCommand struct {
	ID uuid.UUID `json:"id"`
}

// Type implements command.Message.
func (RemoveMediaCommand) Type() string { return removeMediaMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m RemoveMediaCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == uuid.Nil {
		errs["id"] = validation.NewError("portfolio.media.remove.id_required", "id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RemoveMediaHandler removes library items using the shared command handler foundation.
type RemoveMediaHandler struct {
	inner *commands.Handler[RemoveMediaCommand]
}

// NewRemoveMediaHandler constructs a handler wired to the provided media library.
func NewRemoveMediaHandler(library *media.Library, logger interfaces.Logger, opts ...commands.HandlerOption[RemoveMediaCommand]) *RemoveMediaHandler {
	exec := func(ctx context.Context, msg RemoveMediaCommand) error {
		return library.Remove(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[RemoveMediaCommand]{
		commands.WithLogger[RemoveMediaCommand](logger),
		commands.WithOperation[RemoveMediaCommand]("media.remove"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RemoveMediaHandler{
		inner: commands.NewHandler[RemoveMediaCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RemoveMediaCommand].Execute.
func (h *RemoveMediaHandler) Execute(ctx context.Context, msg RemoveMediaCommand) error {
	return h.inner.Execute(ctx, msg)
}
