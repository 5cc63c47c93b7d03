package http

import (
	"net/http"

	"gcc-tools/service"
)

type ContentHandler struct {
	service *service.ContentService
}

func NewContentHandler(service *service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.Navigation())
}

// ListArticles accepts an optional ?category= filter.
func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.ListArticles(r.URL.Query().Get("category")))
}

func (h *ContentHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	article, err := h.service.GetArticle(r.PathValue("slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, article)
}

func (h *ContentHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.ListTemplates(r.URL.Query().Get("category")))
}
