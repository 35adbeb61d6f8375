package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/carnelle/portfolio/internal/editor"
	"github.com/carnelle/portfolio/internal/media"
	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/internal/sitecontent"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Issues  []validationIssue `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var contentNotFound *sitecontent.NotFoundError
	if errors.As(err, &contentNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: contentNotFound.Error(),
		}
	}

	var recordNotFound *records.NotFoundError
	if errors.As(err, &recordNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: recordNotFound.Error(),
		}
	}

	var mediaNotFound *media.NotFoundError
	if errors.As(err, &mediaNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: mediaNotFound.Error(),
		}
	}

	var issues validation.Errors
	if errors.As(err, &issues) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: "validation failed",
			Issues:  flattenIssues("", issues),
		}
	}

	if errors.Is(err, sitecontent.ErrDocumentInvalid) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		}
	}

	if errors.Is(err, media.ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge, errorResponse{
			Error:   "file_too_large",
			Message: err.Error(),
		}
	}

	if errors.Is(err, media.ErrTypeNotAllowed) {
		return http.StatusUnsupportedMediaType, errorResponse{
			Error:   "type_not_allowed",
			Message: err.Error(),
		}
	}

	if errors.Is(err, sitecontent.ErrLanguageInvalid) ||
		errors.Is(err, records.ErrStatusInvalid) ||
		errors.Is(err, media.ErrCategoryInvalid) ||
		errors.Is(err, editor.ErrUnknownPath) ||
		errors.Is(err, editor.ErrNotAList) ||
		errors.Is(err, editor.ErrLastRow) {
		return http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

// flattenIssues walks nested ozzo validation errors into a flat, dotted-path
// issue list with a stable field order.
func flattenIssues(prefix string, errs validation.Errors) []validationIssue {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]validationIssue, 0, len(errs))
	for _, field := range fields {
		fieldErr := errs[field]
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			out = append(out, flattenIssues(path, nested)...)
			continue
		}
		out = append(out, validationIssue{Field: path, Message: fieldErr.Error()})
	}
	return out
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}
