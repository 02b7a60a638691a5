package media

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"gochat/internal/dbmongo"
)

// Handler streams stored message attachments back to clients. The route
// parameter is the content reference carried by a media message.
type Handler struct {
	storage *dbmongo.MediaStorage
}

func NewHandler(storage *dbmongo.MediaStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/media/{ref}", h.serveFile).Methods("GET")
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]

	reader, filename, size, err := h.storage.Download(r.Context(), ref)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("stream media %s: %v", ref, err)
	}
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
