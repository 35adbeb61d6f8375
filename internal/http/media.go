package http

import (
	"net/http"
	"strings"

	mediacmd "github.com/carnelle/portfolio/internal/commands/media"
	"github.com/carnelle/portfolio/internal/media"
)

func (api *AdminAPI) registerMediaRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "media")
	mux.HandleFunc("GET "+root, api.guard(api.handleMediaList))
	mux.HandleFunc("POST "+root, api.guard(api.handleMediaUpload))
	mux.HandleFunc("DELETE "+root+"/{id}", api.guard(api.handleMediaRemove))
}

func (api *AdminAPI) handleMediaList(w http.ResponseWriter, r *http.Request) {
	if api.library == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		category := media.Category(raw)
		if !category.Valid() {
			writeError(w, media.ErrCategoryInvalid)
			return
		}
		writeJSON(w, http.StatusOK, api.library.ByCategory(category))
		return
	}
	writeJSON(w, http.StatusOK, api.library.Items())
}

// handleMediaUpload accepts a multipart form with a "file" part plus optional
// "title" and "category" fields.
func (api *AdminAPI) handleMediaUpload(w http.ResponseWriter, r *http.Request) {
	if api.library == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadSize+1)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "file part is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	category := media.Category(strings.TrimSpace(r.FormValue("category")))
	if category == "" {
		category = media.CategoryOther
	}

	item, err := api.library.Upload(r.Context(), media.UploadRequest{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Title:       r.FormValue("title"),
		Category:    category,
		Body:        file,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// handleMediaRemove deletes an item through the removal command handler when
// one is wired, falling back to the library directly.
func (api *AdminAPI) handleMediaRemove(w http.ResponseWriter, r *http.Request) {
	if api.library == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if api.mediaRemove != nil {
		err = api.mediaRemove.Execute(r.Context(), mediacmd.RemoveMediaCommand{ID: id})
	} else {
		err = api.library.Remove(r.Context(), id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
