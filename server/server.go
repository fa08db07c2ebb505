// Package server assembles the dashboard HTTP server: the JSON API, the
// embedded frontend, and the optional LLM-backed summarizer.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/hrygo/restly/ai"
	"github.com/hrygo/restly/ai/summary"
	"github.com/hrygo/restly/internal/profile"
	"github.com/hrygo/restly/server/router/apiv1"
	"github.com/hrygo/restly/server/router/frontend"
	"github.com/hrygo/restly/store/activitylog"
)

type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
	apiService *apiv1.APIV1Service
}

func NewServer(ctx context.Context, profile *profile.Profile) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	reader := activitylog.NewReader(profile.Data)

	var summarizer summary.Summarizer
	if profile.IsAIEnabled() {
		llm, err := ai.NewService(&ai.Config{
			Provider: profile.LLMProvider,
			APIKey:   profile.LLMAPIKey,
			BaseURL:  profile.LLMBaseURL,
			Model:    profile.LLMModel,
			Timeout:  profile.LLMTimeout,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create LLM service")
		}
		summarizer = summary.NewLLMSummarizer(llm)
		slog.Info("AI summaries enabled", "provider", profile.LLMProvider, "model", profile.LLMModel)
	} else {
		slog.Info("no LLM API key configured, using local summaries")
	}

	apiService := apiv1.NewAPIV1Service(profile, reader, summarizer)
	apiService.RegisterRoutes(e)

	frontend.NewFrontendService(profile).Serve(ctx, e)

	return &Server{
		Profile:    profile,
		echoServer: e,
		apiService: apiService,
	}, nil
}

func (s *Server) Start(_ context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	go func() {
		if err := s.echoServer.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start echo server", "error", err)
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("dashboard server stopped properly")
}
