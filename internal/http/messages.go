package http

import "net/http"

func (api *AdminAPI) registerMessageRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "messages")
	mux.HandleFunc("GET "+root, api.guard(api.handleMessageList))
}

func (api *AdminAPI) handleMessageList(w http.ResponseWriter, r *http.Request) {
	if api.inbox == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, api.inbox.Items())
}
