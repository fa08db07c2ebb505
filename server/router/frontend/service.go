// Package frontend serves the embedded dashboard page.
package frontend

import (
	"context"
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hrygo/restly/internal/profile"
)

type FrontendService struct {
	Profile *profile.Profile
}

func NewFrontendService(profile *profile.Profile) *FrontendService {
	return &FrontendService{
		Profile: profile,
	}
}

func (*FrontendService) Serve(_ context.Context, e *echo.Echo) {
	// Don't compress API responses; only the static page benefits.
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level:   5,
		Skipper: isBackendRoute,
	}))

	skipper := func(c echo.Context) bool {
		if isBackendRoute(c) {
			return true
		}

		c.Response().Header().Set("X-Content-Type-Options", "nosniff")
		// The page fetches fresh data on load; never serve a stale shell.
		c.Response().Header().Set(echo.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		return false
	}

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Filesystem: getFileSystem("dist"),
		HTML5:      true,
		Skipper:    skipper,
	}))
}

func isBackendRoute(c echo.Context) bool {
	for _, prefix := range []string{"/api", "/metrics", "/healthz"} {
		if strings.HasPrefix(c.Path(), prefix) {
			return true
		}
	}
	return false
}

func getFileSystem(path string) http.FileSystem {
	fs, err := fs.Sub(embeddedFiles, path)
	if err != nil {
		panic(err)
	}
	return http.FS(fs)
}
