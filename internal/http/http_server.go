package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	auth2 "gitlab.com/codeplatform.net/internal/core/services/auth"
	chat2 "gitlab.com/codeplatform.net/internal/core/services/chat"
	"gitlab.com/codeplatform.net/internal/core/services/problem"
	"gitlab.com/codeplatform.net/internal/core/services/submission"
	"gitlab.com/codeplatform.net/internal/handlers"
	"gitlab.com/codeplatform.net/internal/handlers/auth"
	"gitlab.com/codeplatform.net/internal/handlers/chat"
	"gitlab.com/codeplatform.net/internal/handlers/problems"
	"gitlab.com/codeplatform.net/internal/handlers/profile"
	"gitlab.com/codeplatform.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService submission.ISubmissionService
	problemService    problem.IProblemService
	chatService       chat2.IChatService

	ggAuth    auth2.IGoogleAuthService
	localAuth auth2.ILocalAuthService
	jwt       primary.JWTService
}

func NewServiceProvider(
	submissionService submission.ISubmissionService,
	problemService problem.IProblemService,
	chatService chat2.IChatService,
	ggAuth auth2.IGoogleAuthService,
	localAuth auth2.ILocalAuthService,
	jwt primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
		problemService:    problemService,
		chatService:       chatService,
		ggAuth:            ggAuth,
		localAuth:         localAuth,
		jwt:               jwt,
	}
}

type Server struct {
	router          *mux.Router
	handler         http.Handler
	srv             *http.Server
	Config          *config.ServerConfig
	Environment     string
	ServiceProvider ServiceProvider
	gatherer        prometheus.Gatherer
	logger          primary.Logger
}

func NewServer(cfg *config.ServerConfig, environment string, serviceProvider ServiceProvider, gatherer prometheus.Gatherer, logger primary.Logger) *Server {
	return &Server{
		Config:          cfg,
		Environment:     environment,
		ServiceProvider: serviceProvider,
		gatherer:        gatherer,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	debug := s.Environment == "development"
	mw := handlers.New(s.ServiceProvider.jwt, s.logger, debug)

	r := mux.NewRouter()
	handlers.NewSystemHandler(s.Environment).RegisterRoutes(r)
	auth.NewHandler(&auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	}, s.logger, debug).RegisterRoutes(r)
	problems.NewHandler(s.ServiceProvider.problemService, s.logger).RegisterRoutes(r)
	submissions.NewHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(r, mw.Protect)
	profile.NewHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(r, mw.Protect)
	chat.NewHandler(s.ServiceProvider.chatService, s.logger, debug).RegisterRoutes(r, mw.Protect)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}

	if err := s.logRoutes(r); err != nil {
		return err
	}
	s.router = r

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: s.Config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})

	var h http.Handler = r
	h = handlers.LimitBody(s.Config.MaxBodyBytes)(h)
	h = gzhttp.GzipHandler(h)
	h = corsHandler(h)
	h = mw.SecureHeaders(h)
	h = mw.RequestLogger(h)
	h = mw.Recoverer(h)
	s.handler = h
	return nil
}

// logRoutes logs every registered route once.
func (s *Server) logRoutes(r *mux.Router) error {
	return r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"ANY"}
		}
		s.logger.Info("Registering route", "methods", strings.Join(methods, ","), "path", path)
		return nil
	})
}

// Handler returns the fully wrapped handler. Init must be called first.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.handler,
		ReadTimeout:  s.Config.ReadTimeout,
		WriteTimeout: s.Config.WriteTimeout,
		IdleTimeout:  s.Config.IdleTimeout,
	}

	s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.Config.ServiceName)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server error", "error", err)
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
