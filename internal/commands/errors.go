package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so log queries can group
// failures by stage regardless of the message type involved.
const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"
)

// wrapValidationError tags a message Validate() failure. Errors already
// wrapped by a lower layer pass through untouched so the original category
// survives to the HTTP error mapping.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

// wrapContextError distinguishes cancellation from deadline expiry; both end
// up in the command category but with separate text codes.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

// wrapExecuteError tags failures coming out of the exec function itself.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(commandExecuteFailed)
}
