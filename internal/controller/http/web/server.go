package web

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/docx_converter/internal/config"
	v1 "github.com/kurochkinivan/docx_converter/internal/controller/http/v1"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, h *Handler, conversions v1.ConversionsRepository) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(h, conversions),
		},
	}
}

// NewRouter serves the three screens. The journal API is mounted only when conversions is not nil.
func NewRouter(h *Handler, conversions v1.ConversionsRepository) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.RedirectToLogin)

	r.Get(pathLogin, h.LoginPage)
	r.Post(pathLogin, h.Login)

	r.Get(pathRegister, h.RegisterPage)
	r.Post(pathRegister, h.Register)

	r.Get(pathUpload, h.UploadPage)
	r.Post(pathUpload, h.Upload)
	r.Get(pathDownloads+"/{token}", h.Download)

	if conversions != nil {
		r.Mount("/api/v1", v1.NewConversionsHandler(conversions).Routes())
	}

	r.NotFound(h.RedirectToLogin)

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
