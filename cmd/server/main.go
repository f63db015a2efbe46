package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weather-api/internal/handler"
	"github.com/weather-api/internal/tracing"
	"github.com/weather-api/internal/weather"
)

func main() {
	var (
		apiKey  = flag.String("key", "", "OpenWeatherMap API key (overrides OPENWEATHER_API_KEY env)")
		port    = flag.Int("port", 8080, "HTTP server port")
		timeout = flag.Duration("timeout", 10*time.Second, "Outbound provider request timeout")
	)
	flag.Parse()

	key := resolveAPIKey(*apiKey)
	if key == "" {
		fmt.Fprintln(os.Stderr, "error: API key is required. Use -key flag or set OPENWEATHER_API_KEY environment variable.")
		os.Exit(1)
	}

	// Tracing stays a no-op unless ZIPKIN_URL is set.
	shutdownTracing, err := tracing.Init("weather-api", os.Getenv("ZIPKIN_URL"))
	if err != nil {
		log.Fatalf("[tracing] init error: %v", err)
	}
	defer shutdownTracing()

	client := weather.NewClient(key, *timeout)
	h := handler.New(client)

	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:    addr,
		Handler: h.Routes(),
		// WriteTimeout must outlast the outbound provider timeout.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: *timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: catch SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("[server] listening on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] listen error: %v", err)
		}
	}()

	<-quit
	log.Println("[server] shutting down…")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[server] shutdown error: %v", err)
	}
	log.Println("[server] stopped")
}

// resolveAPIKey returns the API key following the priority chain:
// flag > environment variable > empty string.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("OPENWEATHER_API_KEY")
}
