package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"task-viewer/internal/api"
	"task-viewer/internal/domain"
	apperrors "task-viewer/internal/errors"
	"task-viewer/internal/logging"
	"task-viewer/internal/validation"
)

// Server renders the task viewer as HTML pages.
type Server struct {
	api            api.BusinessAPI
	tmpl           *template.Template
	queryValidator *validation.QueryValidator
}

// NewServer parses the page templates and returns a server backed by businessAPI.
func NewServer(businessAPI api.BusinessAPI) (*Server, error) {
	tmpl, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, err
	}
	return &Server{
		api:            businessAPI,
		tmpl:           tmpl,
		queryValidator: validation.NewQueryValidator(),
	}, nil
}

// Handler returns the routed handler. Unknown paths and methods get the not-found page.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	router.HandleFunc("/tasks", s.handleList).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{id}", s.handleDetail).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{id}/toggle", s.handleToggleTask).Methods(http.MethodPost)
	router.HandleFunc("/theme/toggle", s.handleToggleTheme).Methods(http.MethodPost)
	router.HandleFunc("/static/app.css", s.handleCSS).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(s.handleNotFound)

	return withSecurityHeaders(withRequestLogging(router))
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

type layoutView struct {
	Title     string
	Theme     domain.Theme
	ReturnTo  string
	ToggleTxt string
}

type homeView struct {
	layoutView
}

type linkView struct {
	Number   int
	Ellipsis bool
	Current  bool
	URL      string
}

type listView struct {
	layoutView
	Search       string
	Page         domain.Page
	ShowPager    bool
	PreviousURL  string
	NextURL      string
	PrevDisabled bool
	NextDisabled bool
	Links        []linkView
}

type detailView struct {
	layoutView
	Task domain.Task
}

type errorView struct {
	layoutView
	Message string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "home", homeView{layoutView: s.layout(r, "Welcome to TaskManager")})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("q")
	page, err := s.queryValidator.ParsePage(query.Get("page"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	list, err := s.api.ListTasks(r.Context(), search, page)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	view := listView{
		layoutView:   s.layout(r, "Task List"),
		Search:       search,
		Page:         list.Page,
		ShowPager:    list.Page.TotalPages > 1,
		PreviousURL:  listURL(search, list.Previous),
		NextURL:      listURL(search, list.Next),
		PrevDisabled: !list.Page.HasPrevious,
		NextDisabled: !list.Page.HasNext,
	}
	for _, link := range list.Page.Links {
		lv := linkView{Number: link.Number, Ellipsis: link.Ellipsis, Current: link.Current}
		if !link.Ellipsis {
			lv.URL = listURL(search, link.Number)
		}
		view.Links = append(view.Links, lv)
	}
	s.render(w, http.StatusOK, "list", view)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	task, err := s.api.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "detail", detailView{
		layoutView: s.layout(r, "Task Details"),
		Task:       *task,
	})
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]
	task, err := s.api.ToggleTask(r.Context(), rawID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	logging.Debugf("task %d toggled to %s\n", task.ID, task.Status())
	http.Redirect(w, r, safeReturn(r.FormValue("return"), "/tasks/"+strconv.FormatInt(task.ID, 10)), http.StatusSeeOther)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := s.api.ToggleTheme(r.Context()); err != nil {
		s.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, safeReturn(r.FormValue("return"), "/"), http.StatusSeeOther)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "notfound", errorView{layoutView: s.layout(r, "Page Not Found")})
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(appCSS))
}

// renderError maps an error to the not-found page, a bad-request banner or a
// fetch-failure banner.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.IsNotFound(err) {
		s.handleNotFound(w, r)
		return
	}

	status := http.StatusBadGateway
	message := apperrors.GetUserMessage(err)
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		message = ve.GetUserFriendlyMessage()
	case apperrors.IsErrorType(err, apperrors.ErrorTypeValidation),
		apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput):
		status = http.StatusBadRequest
	}
	if apperrors.ShouldLogError(err) {
		logging.Debugf("%s %s failed: %s\n", r.Method, r.URL.Path, apperrors.Describe(err))
	}

	s.render(w, status, "error", errorView{layoutView: s.layout(r, "Error"), Message: message})
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logging.Debugf("render %s: %v\n", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// layout builds the shared page chrome. A theme that cannot be read falls back to the default.
func (s *Server) layout(r *http.Request, title string) layoutView {
	theme, err := s.api.GetTheme(r.Context())
	if err != nil {
		logging.Debugf("reading theme: %v\n", err)
		theme = domain.DefaultTheme
	}
	toggle := "Dark"
	if theme.IsDark() {
		toggle = "Light"
	}
	return layoutView{
		Title:     title,
		Theme:     theme,
		ReturnTo:  r.URL.RequestURI(),
		ToggleTxt: toggle,
	}
}

func listURL(search string, page int) string {
	params := url.Values{}
	if search != "" {
		params.Set("q", search)
	}
	params.Set("page", strconv.Itoa(page))
	return "/tasks?" + params.Encode()
}

// safeReturn accepts only local absolute paths so the toggle forms cannot redirect off-site.
func safeReturn(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self'; base-uri 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Debugf("%s %s (%s)\n", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}
