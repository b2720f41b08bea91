package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/cli/browser"
	"github.com/gobmi/models"
)

// NewRouter wires every route of the calculator.
func NewRouter(cfg models.Config) http.Handler {
	h := &handler{
		chartOpts: ChartOptions{
			Theme:      cfg.ChartTheme,
			AssetsHost: cfg.AssetsHost,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.indexHandler)
	mux.HandleFunc("/chart", h.chartHandler)
	mux.HandleFunc("/healthz", healthHandler)

	return loggingMiddleware(mux)
}

// Serve sets up logging and blocks serving HTTP on cfg.Port.
func Serve(cfg models.Config) error {
	closeLog, err := setupLogging(cfg.LogDir, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	url := "http://localhost:" + cfg.Port
	log.Printf("Server starting on %s", url)

	if cfg.OpenBrowser {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("Failed to open browser, visit %s manually: %v", url, err)
		}
	}

	return http.Serve(ln, NewRouter(cfg))
}
