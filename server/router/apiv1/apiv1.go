// Package apiv1 serves the dashboard JSON API.
package apiv1

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lithammer/shortuuid/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/semaphore"

	"github.com/hrygo/restly/ai/summary"
	"github.com/hrygo/restly/analyzer"
	"github.com/hrygo/restly/internal/profile"
	"github.com/hrygo/restly/internal/version"
	"github.com/hrygo/restly/store/activitylog"
)

// maxRangeDays caps the multi-day window a single request may ask for.
const maxRangeDays = 31

type APIV1Service struct {
	Profile    *profile.Profile
	Reader     *activitylog.Reader
	Summarizer summary.Summarizer // nil when AI is disabled

	// daySemaphore bounds concurrent per-day analyses in range requests.
	daySemaphore *semaphore.Weighted
}

func NewAPIV1Service(profile *profile.Profile, reader *activitylog.Reader, summarizer summary.Summarizer) *APIV1Service {
	return &APIV1Service{
		Profile:      profile,
		Reader:       reader,
		Summarizer:   summarizer,
		daySemaphore: semaphore.NewWeighted(4),
	}
}

// RegisterRoutes attaches the API routes and their middleware.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: shortuuid.New,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"id", v.RequestID,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	}))

	e.GET("/api/data", s.handleDashboardData)
	e.GET("/api/summary", s.handleSummary)
	e.GET("/api/range", s.handleRange)
	e.GET("/healthz", s.handleHealthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// parseDate reads the optional date query parameter. An absent parameter
// means today; a malformed one is a user input error rejected before any
// analysis runs.
func parseDate(c echo.Context) (time.Time, error) {
	dateStr := c.QueryParam("date")
	if dateStr == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(activitylog.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
	}
	return date, nil
}

func (s *APIV1Service) handleDashboardData(c echo.Context) error {
	date, err := parseDate(c)
	if err != nil {
		return err
	}

	events := s.Reader.LoadDay(date)
	analysis := analyzer.Reduce(events)
	summaryDoc := analyzer.BuildSummary(date, events, analysis)

	aiSummary, _ := s.generateSummary(c.Request().Context(), analyzer.BuildAIInput(summaryDoc))
	data := assembleDashboard(summaryDoc, analyzer.Score(analysis), aiSummary)

	return c.JSON(http.StatusOK, data)
}

func (s *APIV1Service) handleSummary(c echo.Context) error {
	date, err := parseDate(c)
	if err != nil {
		return err
	}

	events := s.Reader.LoadDay(date)
	analysis := analyzer.Reduce(events)
	summaryDoc := analyzer.BuildSummary(date, events, analysis)

	text, source := s.generateSummary(c.Request().Context(), analyzer.BuildAIInput(summaryDoc))

	if c.QueryParam("format") == "html" {
		html, err := renderSummaryHTML(text)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to render summary")
		}
		return c.HTML(http.StatusOK, html)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"date":    date.Format(activitylog.DateLayout),
		"summary": text,
		"source":  source,
	})
}

func (s *APIV1Service) handleRange(c echo.Context) error {
	date, err := parseDate(c)
	if err != nil {
		return err
	}

	days := 7
	if daysStr := c.QueryParam("days"); daysStr != "" {
		if _, err := fmt.Sscanf(daysStr, "%d", &days); err != nil || days < 1 || days > maxRangeDays {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("days must be an integer between 1 and %d", maxRangeDays))
		}
	}

	ctx := c.Request().Context()
	summaries := make([]analyzer.DailySummary, days)

	// Each day is an independent unit of work; the semaphore keeps a wide
	// window from opening too many files at once.
	done := make(chan error, days)
	for i := 0; i < days; i++ {
		if err := s.daySemaphore.Acquire(ctx, 1); err != nil {
			return echo.NewHTTPError(http.StatusRequestTimeout, "request cancelled")
		}
		go func(i int) {
			defer s.daySemaphore.Release(1)
			day := date.AddDate(0, 0, -i)
			events := s.Reader.LoadDay(day)
			summaries[i] = analyzer.BuildSummary(day, events, analyzer.Reduce(events))
			done <- nil
		}(i)
	}
	for i := 0; i < days; i++ {
		<-done
	}

	first := date.AddDate(0, 0, -(days - 1))
	return c.JSON(http.StatusOK, RangeData{
		DateRange: fmt.Sprintf("%s to %s", first.Format(activitylog.DateLayout), date.Format(activitylog.DateLayout)),
		Days:      summaries,
	})
}

func (s *APIV1Service) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.GetCurrentVersion(s.Profile.Mode),
	})
}

// generateSummary produces the ai_summary text for a day. Failures come
// back as explanatory text, never as an error: the rest of the dashboard
// document must not depend on the summarizer being up.
func (s *APIV1Service) generateSummary(ctx context.Context, input analyzer.AIInput) (string, string) {
	if s.Summarizer == nil {
		resp := summary.FallbackSummarize(input)
		return resp.Summary, resp.Source
	}

	timeout := time.Duration(s.Profile.LLMTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.Summarizer.Summarize(ctx, input)
	if err != nil {
		return "Error generating AI summary: " + err.Error(), "error"
	}
	return resp.Summary, resp.Source
}
