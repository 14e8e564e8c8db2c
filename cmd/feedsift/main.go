package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/feedsift/feedsift/app/api"
	"github.com/feedsift/feedsift/app/batch"
	"github.com/feedsift/feedsift/app/cfg"
	"github.com/feedsift/feedsift/app/feed"
	"github.com/feedsift/feedsift/app/fetcher"
	"github.com/feedsift/feedsift/app/render"
	"github.com/feedsift/feedsift/app/subscriptions"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)

	contentFetcher := fetcher.New(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)
	parser := feed.NewParser(feed.Engine(appCfg.Engine))

	if appCfg.Serve {
		runServer(contentFetcher, parser, appCfg.Port)
		return
	}

	urls, err := collectURLs(appCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no feed URLs provided")
		os.Exit(1)
	}

	runner := batch.NewRunner(contentFetcher, parser, appCfg.Concurrency)
	renderer := render.NewRenderer(appCfg.WrapWidth)

	results := runner.Run(context.Background(), urls)

	failureCount := 0
	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", result.URL, result.Err)
			continue
		}
		fmt.Print(renderer.Run(result.URL, result.Feed))
	}

	if failureCount == len(results) {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// collectURLs gathers feed URLs from positional arguments, the feeds file,
// and the interactive prompt, in that order.
func collectURLs(appCfg *cfg.Cfg) ([]string, error) {
	urls := append([]string(nil), appCfg.URLs...)

	if appCfg.FeedsFile != "" {
		subs, err := subscriptions.Load(appCfg.FeedsFile)
		if err != nil {
			return nil, err
		}
		urls = append(urls, subscriptions.URLs(subs)...)
	}

	if appCfg.Interactive {
		urls = append(urls, readURLs(os.Stdin)...)
	}

	return urls, nil
}

func readURLs(in *os.File) []string {
	fmt.Println("Enter feed URLs one by one. Press Enter on an empty line to finish.")

	scanner := bufio.NewScanner(in)
	var urls []string
	for {
		fmt.Printf("URL #%d: ", len(urls)+1)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		urls = append(urls, line)
	}
	return urls
}

func runServer(contentFetcher *fetcher.Fetcher, parser feed.Parser, port string) {
	handler := api.NewHandler(contentFetcher, parser)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
}
