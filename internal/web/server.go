package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/conorfennell/knolbrowser/internal/browser"
	"github.com/conorfennell/knolbrowser/internal/column"
	"github.com/conorfennell/knolbrowser/internal/digest"
	"github.com/conorfennell/knolbrowser/internal/domain"
	"github.com/conorfennell/knolbrowser/internal/i18n"
	"github.com/conorfennell/knolbrowser/internal/logger"
	"github.com/conorfennell/knolbrowser/internal/wire"
)

// ColumnStore persists the active column keys of each browser kind.
type ColumnStore interface {
	LoadColumnKeys(ctx context.Context, kind string) ([]string, error)
	SaveColumnKeys(ctx context.Context, kind string, keys []string) error
	ClearColumnKeys(ctx context.Context, kind string) error
}

// RowSource computes the rows of a browser kind for the given active columns.
// Cells of each row must follow the order of cols.
type RowSource interface {
	Rows(ctx context.Context, kind browser.Kind, cols []column.Column) ([]domain.Row, error)
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	store   ColumnStore
	catalog *i18n.Catalog
	locale  string
	rows    RowSource
	log     logr.Logger
	router  *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLocale sets the locale used when a request names none.
func WithLocale(locale string) Option {
	return func(s *Server) { s.locale = locale }
}

// WithRowSource enables the rows endpoint.
func WithRowSource(rows RowSource) Option {
	return func(s *Server) { s.rows = rows }
}

// WithLogger sets the request logger.
func WithLogger(log logr.Logger) Option {
	return func(s *Server) { s.log = log }
}

// NewServer creates and configures a new server.
func NewServer(store ColumnStore, catalog *i18n.Catalog, opts ...Option) *Server {
	s := &Server{
		store:   store,
		catalog: catalog,
		locale:  "en",
		log:     logr.Discard(),
		router:  http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r.WithContext(logger.NewContext(r.Context(), s.log)))
}

// routes sets up the routing for the server.
func (s *Server) routes() {
	s.router.HandleFunc("GET /columns/{kind}", s.handleGetColumns())
	s.router.HandleFunc("GET /columns/{kind}/active", s.handleGetActive())
	s.router.HandleFunc("PUT /columns/{kind}/active", s.handlePutActive())
	s.router.HandleFunc("DELETE /columns/{kind}/active", s.handleDeleteActive())
	if s.rows != nil {
		s.router.HandleFunc("GET /rows/{kind}", s.handleGetRows())
	}
}

// handleGetColumns lists every column of a kind, sorted by localized label.
func (s *Server) handleGetColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kind(w, r)
		if !ok {
			return
		}
		reg := browser.NewRegistry(s.localizer(r))
		s.writeColumns(w, r, wire.EncodeColumns(reg.Columns(kind)))
	}
}

// handleGetActive returns the user's active columns in display order.
func (s *Server) handleGetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kind(w, r)
		if !ok {
			return
		}
		cols, err := s.activeColumns(r.Context(), kind)
		if err != nil {
			s.internalError(w, r, "failed to load active columns", err, "kind", kind.String())
			return
		}
		reg := browser.NewRegistry(s.localizer(r))
		s.writeColumns(w, r, wire.EncodeColumns(reg.Describe(cols)))
	}
}

// ActiveRequest is the body of PUT /columns/{kind}/active.
type ActiveRequest struct {
	Columns []string `json:"columns"`
}

// handlePutActive stores a new column selection. Keys are stored as sent so
// columns from newer versions survive; unknown ones display as custom.
func (s *Server) handlePutActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kind(w, r)
		if !ok {
			return
		}

		var req ActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(req.Columns) == 0 {
			http.Error(w, "At least one column is required", http.StatusBadRequest)
			return
		}

		if err := s.store.SaveColumnKeys(r.Context(), kind.String(), req.Columns); err != nil {
			s.internalError(w, r, "failed to save active columns", err, "kind", kind.String())
			return
		}

		log := logger.FromContext(r.Context())
		var unknown []string
		for _, key := range req.Columns {
			if _, ok := column.Lookup(key); !ok {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			log.Info("saved columns this version does not know", "kind", kind.String(), "keys", unknown)
		}
		log.Info("active columns saved", "kind", kind.String(), "columns", len(req.Columns))

		cols := column.ParseList(req.Columns)

		reg := browser.NewRegistry(s.localizer(r))
		s.writeColumns(w, r, wire.EncodeColumns(reg.Describe(cols)))
	}
}

// handleDeleteActive resets a kind to its default columns.
func (s *Server) handleDeleteActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kind(w, r)
		if !ok {
			return
		}
		if err := s.store.ClearColumnKeys(r.Context(), kind.String()); err != nil {
			s.internalError(w, r, "failed to reset active columns", err, "kind", kind.String())
			return
		}
		reg := browser.NewRegistry(s.localizer(r))
		s.writeColumns(w, r, wire.EncodeColumns(reg.Describe(browser.DefaultColumns(kind))))
	}
}

// RowsResponse is the body returned by GET /rows/{kind}.
type RowsResponse struct {
	Columns wire.BrowserColumns `json:"columns"`
	Rows    []wire.BrowserRow   `json:"rows"`
}

// handleGetRows asks the row source for the active columns and encodes the result.
func (s *Server) handleGetRows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := s.kind(w, r)
		if !ok {
			return
		}
		cols, err := s.activeColumns(r.Context(), kind)
		if err != nil {
			s.internalError(w, r, "failed to load active columns", err, "kind", kind.String())
			return
		}
		rows, err := s.rows.Rows(r.Context(), kind, cols)
		if err != nil {
			s.internalError(w, r, "failed to compute rows", err, "kind", kind.String())
			return
		}
		reg := browser.NewRegistry(s.localizer(r))
		writeJSON(w, r, http.StatusOK, RowsResponse{
			Columns: wire.EncodeColumns(reg.Describe(cols)),
			Rows:    wire.EncodeRows(rows),
		})
	}
}

func (s *Server) activeColumns(ctx context.Context, kind browser.Kind) ([]column.Column, error) {
	keys, err := s.store.LoadColumnKeys(ctx, kind.String())
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return browser.DefaultColumns(kind), nil
	}
	return column.ParseList(keys), nil
}

func (s *Server) kind(w http.ResponseWriter, r *http.Request) (browser.Kind, bool) {
	kind, err := browser.ParseKind(r.PathValue("kind"))
	if err != nil {
		http.Error(w, "Unknown kind, expected cards or notes", http.StatusBadRequest)
		return kind, false
	}
	return kind, true
}

// localizer picks the ?locale= parameter, then the first supported
// Accept-Language entry, then the server default.
func (s *Server) localizer(r *http.Request) *i18n.Localizer {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return s.catalog.Localizer(locale)
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil {
		for _, tag := range tags {
			if s.catalog.Supports(tag) {
				return s.catalog.Localizer(tag.String())
			}
		}
	}
	return s.catalog.Localizer(s.locale)
}

func (s *Server) writeColumns(w http.ResponseWriter, r *http.Request, cols wire.BrowserColumns) {
	etag := digest.ETag(cols)
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Language")
	if r.Method == http.MethodGet && etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, r, http.StatusOK, cols)
}

// etagMatches applies the weak comparison If-None-Match calls for.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error, kv ...interface{}) {
	logger.FromContext(r.Context()).Error(err, msg, kv...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error(err, "failed to write response", "path", r.URL.Path)
	}
}
