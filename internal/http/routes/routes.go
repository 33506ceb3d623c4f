package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/gios-blog/runcoach/internal/banner"
	"github.com/gios-blog/runcoach/internal/coach"
	appmw "github.com/gios-blog/runcoach/internal/http/middleware"
	"github.com/gios-blog/runcoach/internal/web"
)

const (
	contentTypeJSON = "application/json;charset=UTF-8"
	contentTypeHTML = "text/html;charset=UTF-8"
)

type Server struct {
	Router       *chi.Mux
	Coach        *coach.Service
	Banners      *banner.Picker
	MaxBodyBytes int64
}

type ServerOptions struct {
	Logger  zerolog.Logger
	Coach   *coach.Service
	Banners *banner.Picker
	// MaxBodyBytes caps POST bodies; 0 means no cap
	MaxBodyBytes int64
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(appmw.RequestID)
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)

	banners := opts.Banners
	if banners == nil {
		banners = banner.NewPicker(banner.Pool, nil)
	}
	s := &Server{Router: r, Coach: opts.Coach, Banners: banners, MaxBodyBytes: opts.MaxBodyBytes}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("writing health check response")
		}
	})

	r.Get("/", s.handlePage)
	r.Post("/", s.handleCoach)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, HEAD, POST")
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	b := s.Banners.Pick()

	var buf bytes.Buffer
	if err := web.Render(&buf, web.NewPage(b)); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render page failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	if _, err := buf.WriteTo(w); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("writing page")
	}
}

func (s *Server) handleCoach(w http.ResponseWriter, r *http.Request) {
	if s.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)
	}

	var req coach.Request
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&req)
	if err == nil {
		// the body must hold exactly one JSON value
		switch extra := dec.Decode(&struct{}{}); {
		case extra == io.EOF:
		case extra == nil:
			err = errors.New("unexpected data after JSON value")
		default:
			err = fmt.Errorf("unexpected data after JSON value: %w", extra)
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	svc := s.Coach
	if svc == nil {
		svc = coach.NewService(coach.Options{})
	}

	reply, err := svc.Reply(r.Context(), req)
	if err != nil {
		var inErr *coach.InputError
		switch {
		case errors.As(err, &inErr):
			s.writeError(w, r, http.StatusBadRequest, inErr.Error())
		case coach.IsNotConfigured(err):
			hlog.FromRequest(r).Warn().Msg("coaching request with no upstream configured")
			s.writeError(w, r, http.StatusInternalServerError, err.Error())
		default:
			hlog.FromRequest(r).Error().Err(err).Msg("coaching reply failed")
			s.writeError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.writeJSON(w, r, http.StatusOK, coach.Reply{Reply: reply})
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, errorBody{Error: msg})
}

// writeJSON writes v without HTML escaping so markup in replies reaches the
// page byte for byte.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("writing response")
	}
}
