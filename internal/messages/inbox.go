package messages

import (
	"context"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

// Message is one submitted contact request.
type Message struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Profile     string    `json:"profile"`
	ProjectType string    `json:"projectType"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubmitRequest carries a visitor's contact form submission.
type SubmitRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Profile     string `json:"profile"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	Consent     bool   `json:"consent"`
}

// Validate enforces the contact form rules.
func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Message, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.Consent, validation.Required.Error("consent must be given")),
	)
}

// Inbox receives, stores and lists contact messages.
type Inbox struct {
	repo     MessageRepository
	notifier interfaces.ContactNotifier
	logger   interfaces.Logger
	now      func() time.Time

	mu    sync.RWMutex
	items []Message
}

// InboxOption configures the inbox at construction time.
type InboxOption func(*Inbox)

// WithInboxLogger overrides the default no-op logger.
func WithInboxLogger(logger interfaces.Logger) InboxOption {
	return func(i *Inbox) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithInboxClock overrides the clock used to stamp messages.
func WithInboxClock(clock func() time.Time) InboxOption {
	return func(i *Inbox) {
		if clock != nil {
			i.now = clock
		}
	}
}

// WithNotifier sets the outbound notifier. Without one, submissions are
// stored but nobody is emailed.
func WithNotifier(notifier interfaces.ContactNotifier) InboxOption {
	return func(i *Inbox) {
		i.notifier = notifier
	}
}

// NewInbox constructs the contact inbox.
func NewInbox(repo MessageRepository, opts ...InboxOption) *Inbox {
	i := &Inbox{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Refresh reloads the inbox, newest first. On failure the previously loaded
// messages stay in place.
func (i *Inbox) Refresh(ctx context.Context) error {
	items, err := i.repo.List(ctx)
	if err != nil {
		i.logger.Warn("inbox refresh failed, keeping cached messages", "error", err)
		return err
	}

	i.mu.Lock()
	i.items = items
	i.mu.Unlock()
	return nil
}

// Items returns every message, newest first.
func (i *Inbox) Items() []Message {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]Message, len(i.items))
	copy(out, i.items)
	return out
}

// Submit validates and stores a contact request, then notifies. A notifier
// failure is logged, never surfaced: the message is already safe in storage.
func (i *Inbox) Submit(ctx context.Context, req SubmitRequest) (Message, error) {
	if err := req.Validate(); err != nil {
		return Message{}, err
	}

	message := Message{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Profile:     req.Profile,
		ProjectType: req.ProjectType,
		Message:     strings.TrimSpace(req.Message),
		CreatedAt:   i.now().UTC(),
	}

	stored, err := i.repo.Insert(ctx, message)
	if err != nil {
		return Message{}, err
	}

	i.mu.Lock()
	i.items = append([]Message{stored}, i.items...)
	i.mu.Unlock()

	if i.notifier != nil {
		if err := i.notifier.Notify(ctx, interfaces.ContactNotification{
			FullName:    stored.FullName,
			Email:       stored.Email,
			Phone:       stored.Phone,
			Profile:     stored.Profile,
			ProjectType: stored.ProjectType,
			Message:     stored.Message,
		}); err != nil {
			i.logger.Warn("contact notification failed", "id", stored.ID.String(), "error", err)
		}
	}

	i.logger.Info("contact message received", "id", stored.ID.String())
	return stored, nil
}
