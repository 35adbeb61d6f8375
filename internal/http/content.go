package http

import (
	"net/http"

	contentcmd "github.com/carnelle/portfolio/internal/commands/content"
	"github.com/carnelle/portfolio/internal/sitecontent"
)

func (api *AdminAPI) registerContentRoutes(mux *http.ServeMux, base string) {
	if api.content == nil {
		return
	}

	mux.HandleFunc("PUT "+base+"/content/{lang}", api.guard(api.handleContentSave))
}

// handleContentSave replaces one language's sub-document, bypassing the
// editor session. The body is the full SiteContent payload for that language.
func (api *AdminAPI) handleContentSave(w http.ResponseWriter, r *http.Request) {
	lang, ok := sitecontent.ParseLanguage(r.PathValue("lang"))
	if !ok {
		writeError(w, sitecontent.ErrLanguageInvalid)
		return
	}

	var content sitecontent.SiteContent
	if err := decodeJSON(r, &content); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	cmd := contentcmd.SaveContentCommand{Lang: lang, Content: content}
	if err := api.content.Execute(r.Context(), cmd); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
