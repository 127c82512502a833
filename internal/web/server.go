// Package web serves the upload-and-sync form over HTTP.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jacksmith/addonsync/internal/model"
	"github.com/sirupsen/logrus"
)

// MaxUploadSize bounds the multipart body of an upload.
const MaxUploadSize = 10 << 20

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// Controller is the part of ops.Controller the form drives.
type Controller interface {
	SetCredential(key string)
	LoadFile(f *model.UploadedFile) error
	Sync(ctx context.Context) error
	Snapshot() model.State
}

// Server renders the form and forwards form posts to a Controller.
type Server struct {
	ctrl Controller
	log  logrus.FieldLogger

	// credential is echoed back into the form so the user does not retype
	// it. It lives only in process memory.
	mu         sync.Mutex
	credential string
}

// NewHandler creates the HTTP handler for the form.
func NewHandler(ctrl Controller, log logrus.FieldLogger) http.Handler {
	s := &Server{ctrl: ctrl, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.Page)
	r.Post("/upload", s.Upload)
	r.Post("/sync", s.Sync)
	r.Get("/api/state", s.State)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

type pageData struct {
	State      model.State
	Credential string
	Loaded     bool // a non-empty addon list is ready to send
	Ready      bool
}

// Page renders the form with the latest status banner.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	st := s.ctrl.Snapshot()
	loaded := st.CountKnown && st.Count > 0
	data := pageData{
		State:      st,
		Credential: s.currentCredential(),
		Loaded:     loaded,
		Ready:      loaded && st.HasCredential && !st.Loading,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.WithError(err).Error("failed to render page")
	}
}

// Upload handles POST /upload: a multipart form with authKey and file.
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}
	s.setCredential(r.FormValue("authKey"))

	file, header, err := r.FormFile("file")
	if err != nil {
		// No file chosen: nothing to load
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	// Errors are reported through the status banner
	_ = s.ctrl.LoadFile(&model.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Sync handles POST /sync. The form may be urlencoded or multipart, since
// the sync button shares the upload form. A started sync runs to completion
// even if the browser goes away.
func (s *Server) Sync(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	s.setCredential(r.FormValue("authKey"))

	if err := s.ctrl.Sync(context.WithoutCancel(r.Context())); err != nil {
		s.log.WithError(err).Debug("sync did not complete")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// State handles GET /api/state.
func (s *Server) State(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.ctrl.Snapshot())
}

func (s *Server) setCredential(key string) {
	s.mu.Lock()
	s.credential = key
	s.mu.Unlock()
	s.ctrl.SetCredential(key)
}

func (s *Server) currentCredential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to write response")
	}
}
