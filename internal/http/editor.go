package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/carnelle/portfolio/internal/sitecontent"
)

type editorSessionPayload struct {
	Lang string `json:"lang"`
}

type editorValuePayload struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type editorRowPayload struct {
	Path  string `json:"path"`
	Index *int   `json:"index,omitempty"`
}

func (api *AdminAPI) registerEditorRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "editor")
	mux.HandleFunc("GET "+root+"/session", api.guard(api.handleEditorSession))
	mux.HandleFunc("PUT "+root+"/session", api.guard(api.handleEditorOpen))
	mux.HandleFunc("PUT "+root+"/language", api.guard(api.handleEditorLanguage))
	mux.HandleFunc("GET "+root+"/values", api.guard(api.handleEditorValueGet))
	mux.HandleFunc("PUT "+root+"/values", api.guard(api.handleEditorValueSet))
	mux.HandleFunc("POST "+root+"/rows", api.guard(api.handleEditorRowAppend))
	mux.HandleFunc("DELETE "+root+"/rows", api.guard(api.handleEditorRowRemove))
	mux.HandleFunc("POST "+root+"/save", api.guard(api.handleEditorSave))
	mux.HandleFunc("DELETE "+root+"/preview", api.guard(api.handleEditorPreviewClear))
}

func (api *AdminAPI) handleEditorSession(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, editorSessionPayload{Lang: string(api.editor.Lang())})
}

func (api *AdminAPI) handleEditorOpen(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload editorSessionPayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	lang, ok := sitecontent.ParseLanguage(payload.Lang)
	if !ok {
		lang = sitecontent.DefaultLanguage
	}
	if err := api.editor.Open(r.Context(), lang); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editorSessionPayload{Lang: string(lang)})
}

func (api *AdminAPI) handleEditorLanguage(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload editorSessionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	lang, ok := sitecontent.ParseLanguage(payload.Lang)
	if !ok {
		writeError(w, sitecontent.ErrLanguageInvalid)
		return
	}
	if err := api.editor.SwitchLanguage(r.Context(), lang); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editorSessionPayload{Lang: string(lang)})
}

func (api *AdminAPI) handleEditorValueGet(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	value, err := api.editor.Value(r.URL.Query().Get("path"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editorValuePayload{Path: r.URL.Query().Get("path"), Value: value})
}

func (api *AdminAPI) handleEditorValueSet(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload editorValuePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := api.editor.Set(r.Context(), payload.Path, payload.Value); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleEditorRowAppend(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload editorRowPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := api.editor.AppendRow(r.Context(), payload.Path); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleEditorRowRemove(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload editorRowPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if payload.Index == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "index is required"})
		return
	}
	if err := api.editor.RemoveRow(r.Context(), payload.Path, *payload.Index); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleEditorSave(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if err := api.editor.Save(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleEditorPreviewClear(w http.ResponseWriter, r *http.Request) {
	if api.editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if err := api.editor.ClosePreview(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
