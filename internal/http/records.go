package http

import (
	"net/http"

	"github.com/carnelle/portfolio/internal/records"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func registerRecordRoutes[L any](mux *http.ServeMux, api *AdminAPI, base, resource string, collection *records.Collection[L]) {
	root := joinPath(base, resource)
	mux.HandleFunc("GET "+root, api.guard(handleRecordList(collection)))
	mux.HandleFunc("POST "+root, api.guard(handleRecordCreate(collection)))
	mux.HandleFunc("PUT "+root+"/{id}", api.guard(handleRecordUpdate(collection)))
	mux.HandleFunc("DELETE "+root+"/{id}", api.guard(handleRecordDelete(collection)))
}

func handleRecordList[L any](collection *records.Collection[L]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if collection == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, collection.Items())
	}
}

func handleRecordCreate[L any](collection *records.Collection[L]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if collection == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
			return
		}
		var record records.Record[L]
		if err := decodeJSON(r, &record); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
			return
		}
		if record.Status == "" {
			record.Status = records.StatusDraft
		}
		if err := validateRecordContent(record); err != nil {
			writeError(w, err)
			return
		}
		created, err := collection.Add(r.Context(), record)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func handleRecordUpdate[L any](collection *records.Collection[L]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if collection == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
			return
		}
		id, err := parseUUID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		var record records.Record[L]
		if err := decodeJSON(r, &record); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
			return
		}
		record.ID = id
		if _, ok := collection.Get(id); !ok {
			writeError(w, &records.NotFoundError{Resource: "record", Key: id.String()})
			return
		}
		if err := validateRecordContent(record); err != nil {
			writeError(w, err)
			return
		}
		if err := collection.Update(r.Context(), record); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func handleRecordDelete[L any](collection *records.Collection[L]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if collection == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
			return
		}
		id, err := parseUUID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		if _, ok := collection.Get(id); !ok {
			writeError(w, &records.NotFoundError{Resource: "record", Key: id.String()})
			return
		}
		if err := collection.Remove(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

// validateRecordContent runs the locale rules on both languages when the
// locale type exposes them.
func validateRecordContent[L any](record records.Record[L]) error {
	errs := validation.Errors{}
	if v, ok := any(record.Content.FR).(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			errs["content.fr"] = err
		}
	}
	if v, ok := any(record.Content.EN).(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			errs["content.en"] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
