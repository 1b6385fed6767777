package http

import "net/http"

// getServerVersion reports the running build's version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
