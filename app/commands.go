package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/delta/app/server"
	"github.com/umputun/delta/app/store"
	"github.com/umputun/delta/app/theme"
	"github.com/umputun/delta/app/validator"
)

// runServer builds the theme table and session registry and runs the http server until ctx is done.
func runServer(ctx context.Context) error {
	log.Printf("[INFO] starting delta server on %s", opts.Server.Address)

	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return err
	}

	tbl, err := themeTable(opts.Theme.File)
	if err != nil {
		return err
	}

	sessions, err := store.NewSessions(opts.Session.Max, opts.Session.TTL)
	if err != nil {
		return fmt.Errorf("failed to initialize sessions: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Printf("[WARN] failed to close sessions: %v", err)
		}
	}()
	log.Printf("[DEBUG] sessions: max=%d, ttl=%v", opts.Session.Max, opts.Session.TTL)

	srv, err := server.New(sessions, tbl, server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		ThemeHotReload:  opts.Theme.HotReload,
		Title:           opts.Page.Title,
		LinkURL:         opts.Page.LinkURL,
		LinkText:        opts.Page.LinkText,
		TemplatesDir:    opts.Page.Templates,
		RequestsPerSec:  opts.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// themeTable loads the theme table from file, or returns built-in palettes if path is empty.
func themeTable(path string) (*theme.Table, error) {
	if path == "" {
		log.Printf("[INFO] using built-in theme palettes")
		return theme.DefaultTable(), nil
	}
	tbl, err := theme.LoadTable(path, validator.NewService())
	if err != nil {
		return nil, fmt.Errorf("failed to load theme file: %w", err)
	}
	log.Printf("[INFO] theme palettes loaded from %s", path)
	return tbl, nil
}

// checkThemeFile validates the theme file without starting the server.
func checkThemeFile(path string) error {
	if path == "" {
		return errors.New("theme file is not set, use --theme.file")
	}
	if _, err := theme.LoadTable(path, validator.NewService()); err != nil {
		return fmt.Errorf("theme file %s is invalid: %w", path, err)
	}
	fmt.Printf("theme file %s is valid\n", path)
	return nil
}

// printSchema writes json schema of the theme file.
func printSchema(w io.Writer) error {
	data, err := theme.GenerateSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

// validateBaseURL normalizes base URL, it must start with "/" and is stored without trailing slash.
func validateBaseURL(u string) (string, error) {
	if u == "" {
		return "", nil
	}
	if !strings.HasPrefix(u, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", u)
	}
	return strings.TrimRight(u, "/"), nil
}
