package contentcmd

import (
	"context"

	"github.com/carnelle/portfolio/internal/commands"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const saveContentMessageType = "portfolio.content.save"

// SaveContentCommand replaces the persisted document for a single language.
type SaveContentCommand struct {
	Lang    sitecontent.Language    `json:"lang"`
	Content sitecontent.SiteContent `json:"content"`
}

// Type implements command.Message.
func (SaveContentCommand) Type() string { return saveContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveContentCommand) Validate() error {
	errs := validation.Errors{}
	if !m.Lang.Valid() {
		errs["lang"] = validation.NewError("portfolio.content.save.lang_invalid", "lang must be a supported language")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveContentHandler writes language updates through the content store using the shared command handler foundation.
type SaveContentHandler struct {
	inner *commands.Handler[SaveContentCommand]
}

// NewSaveContentHandler constructs a handler wired to the provided content store.
func NewSaveContentHandler(store sitecontent.Store, logger interfaces.Logger, opts ...commands.HandlerOption[SaveContentCommand]) *SaveContentHandler {
	exec := func(ctx context.Context, msg SaveContentCommand) error {
		return store.UpdateLanguage(ctx, msg.Lang, msg.Content)
	}

	handlerOpts := []commands.HandlerOption[SaveContentCommand]{
		commands.WithLogger[SaveContentCommand](logger),
		commands.WithOperation[SaveContentCommand]("content.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveContentHandler{
		inner: commands.NewHandler[SaveContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveContentCommand].Execute.
func (h *SaveContentHandler) Execute(ctx context.Context, msg SaveContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
