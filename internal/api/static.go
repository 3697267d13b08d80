package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// StaticFileHandler serves the web frontend. Unknown paths fall back to
// index.html so client-side routing works.
type StaticFileHandler struct {
	root   string
	fs     http.Handler
	logger *logger.Logger
}

// NewStaticFileHandler creates a static file handler rooted at dir.
func NewStaticFileHandler(dir string, log *logger.Logger) *StaticFileHandler {
	return &StaticFileHandler{
		root:   dir,
		fs:     http.FileServer(http.Dir(dir)),
		logger: log.Named("static"),
	}
}

func (h *StaticFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
	if path == "" {
		path = "index.html"
	}

	full := filepath.Join(h.root, path)
	if info, err := os.Stat(full); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.root, "index.html"))
		return
	}
	h.fs.ServeHTTP(w, r)
}
