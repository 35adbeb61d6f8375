package logging

import (
	"context"

	"github.com/carnelle/portfolio/pkg/interfaces"
)

const (
	rootModule     = "portfolio"
	contentModule  = "portfolio.content"
	recordsModule  = "portfolio.records"
	editorModule   = "portfolio.editor"
	previewModule  = "portfolio.preview"
	mediaModule    = "portfolio.media"
	messagesModule = "portfolio.messages"
	httpModule     = "portfolio.http"
	commandsModule = "portfolio.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for the site-content store.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// RecordsLogger returns the logger namespace reserved for record collections.
func RecordsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, recordsModule)
}

// EditorLogger returns the logger namespace reserved for the content editor.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// PreviewLogger returns the logger namespace reserved for the preview channel.
func PreviewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, previewModule)
}

// MediaLogger returns the logger namespace reserved for the media library.
func MediaLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mediaModule)
}

// MessagesLogger returns the logger namespace reserved for the contact inbox.
func MessagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, messagesModule)
}

// HTTPLogger returns the logger namespace reserved for HTTP handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
