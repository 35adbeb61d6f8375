package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/sitecontent"
	"github.com/carnelle/portfolio/internal/state"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

// Channel propagates an unsaved draft document into the preview overlay of
// the content store and persists it so a preview session survives a restart.
type Channel interface {
	// Publish overlays doc and persists the serialized draft.
	Publish(ctx context.Context, doc sitecontent.LocalizedSiteContent) error
	// Clear removes the overlay and the persisted draft.
	Clear(ctx context.Context) error
	// Snapshot returns the persisted draft, or nil when none is stored.
	// A draft that no longer parses is treated as absent.
	Snapshot(ctx context.Context) (*sitecontent.LocalizedSiteContent, error)
	// Restore re-applies a persisted draft after a restart.
	Restore(ctx context.Context) error
}

// ChannelOption configures the channel at construction time.
type ChannelOption func(*channel)

// WithChannelLogger overrides the default no-op logger.
func WithChannelLogger(logger interfaces.Logger) ChannelOption {
	return func(c *channel) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type channel struct {
	state   state.Store
	content sitecontent.Store
	logger  interfaces.Logger
}

// NewChannel wires the preview channel onto its two stores.
func NewChannel(stateStore state.Store, contentStore sitecontent.Store, opts ...ChannelOption) Channel {
	c := &channel{
		state:   stateStore,
		content: contentStore,
		logger:  logging.NoOp(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *channel) Publish(ctx context.Context, doc sitecontent.LocalizedSiteContent) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("preview: encode draft: %w", err)
	}

	if err := c.state.Set(ctx, state.KeyPreview, string(raw)); err != nil {
		return err
	}

	c.content.SetPreview(doc)
	c.logger.Debug("preview draft published")
	return nil
}

func (c *channel) Clear(ctx context.Context) error {
	if err := c.state.Delete(ctx, state.KeyPreview); err != nil {
		return err
	}

	c.content.ClearPreview()
	c.logger.Debug("preview draft cleared")
	return nil
}

func (c *channel) Snapshot(ctx context.Context) (*sitecontent.LocalizedSiteContent, error) {
	raw, err := c.state.Get(ctx, state.KeyPreview)
	if err != nil {
		var nf *state.NotFoundError
		if errors.As(err, &nf) {
			return nil, nil
		}
		return nil, err
	}

	var doc sitecontent.LocalizedSiteContent
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		c.logger.Warn("stored preview draft unreadable, ignoring", "error", err)
		return nil, nil
	}
	return &doc, nil
}

func (c *channel) Restore(ctx context.Context) error {
	doc, err := c.Snapshot(ctx)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	c.content.SetPreview(*doc)
	c.logger.Info("preview draft restored")
	return nil
}
