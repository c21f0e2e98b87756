package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/juststreamit/pkg/browse"
	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/render"
	"github.com/kasuboski/juststreamit/pkg/visibility"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_browser.go github.com/kasuboski/juststreamit/server Browser

// Browser loads what the api serves
type Browser interface {
	Home(ctx context.Context) browse.Page
	Genres(ctx context.Context) (catalog.GenreList, error)
	SelectGenre(ctx context.Context, genre string) browse.Section
	Title(ctx context.Context, id int) (catalog.MovieDetail, error)
}

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// HomeResponse is the home page with the visibility of every grid at the requested width
type HomeResponse struct {
	Page       browse.Page                    `json:"page"`
	Visibility map[string]visibility.Snapshot `json:"visibility"`
}

type SectionResponse struct {
	Section    browse.Section       `json:"section"`
	Visibility *visibility.Snapshot `json:"visibility,omitempty"`
}

type TitleResponse struct {
	Movie   catalog.MovieDetail `json:"movie"`
	Display []render.Field      `json:"display"`
}

// Server houses the dependencies of the api
type Server struct {
	baseLogger *zap.SugaredLogger
	browser    Browser
}

// New creates a new api server
func New(logger *zap.SugaredLogger, browser Browser) Server {
	return Server{
		baseLogger: logger,
		browser:    browser,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// Handler routes every endpoint of the api
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/home", s.Home()).Methods(http.MethodGet)
	v1.HandleFunc("/genres", s.ListGenres()).Methods(http.MethodGet)
	v1.HandleFunc("/genres/{genre}", s.GetGenre()).Methods(http.MethodGet)
	v1.HandleFunc("/titles/{id}", s.GetTitle()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Second * 10,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// Home loads every section of the home page
func (s Server) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		width, err := ParseWidthParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		page := s.browser.Home(r.Context())
		board := visibility.NewBoard()
		resp := HomeResponse{
			Page:       page,
			Visibility: page.Attach(board, width),
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) ListGenres() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		genres, err := s.browser.Genres(r.Context())
		if err != nil {
			log.Error("failed to list genres", zap.Error(err))
			writeErrorResponse(w, upstreamStatus(err), err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: genres}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetGenre loads the grid of one genre. The genre in the path may be a partial name.
func (s Server) GetGenre() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		width, err := ParseWidthParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		genres, err := s.browser.Genres(r.Context())
		if err != nil {
			log.Error("failed to list genres", zap.Error(err))
			writeErrorResponse(w, upstreamStatus(err), err)
			return
		}

		genre, err := browse.ResolveGenre(mux.Vars(r)["genre"], genres)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		section := s.browser.SelectGenre(r.Context(), genre)
		resp := SectionResponse{Section: section}
		if !section.Failed() {
			snap := visibility.New(len(section.Movies), width).Snapshot()
			resp.Visibility = &snap
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) GetTitle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil || id < 1 {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid id: must be positive integer"))
			return
		}

		movie, err := s.browser.Title(r.Context(), id)
		if err != nil {
			log.Error("failed to get title", zap.Int("id", id), zap.Error(err))
			writeErrorResponse(w, upstreamStatus(err), err)
			return
		}

		resp := TitleResponse{Movie: movie, Display: render.ModalFields(movie)}
		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// upstreamStatus maps a catalog failure to the status the api answers with
func upstreamStatus(err error) int {
	var statusErr *catalog.HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
