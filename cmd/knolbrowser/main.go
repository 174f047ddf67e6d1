package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/conorfennell/knolbrowser/internal/browser"
	"github.com/conorfennell/knolbrowser/internal/config"
	"github.com/conorfennell/knolbrowser/internal/i18n"
	"github.com/conorfennell/knolbrowser/internal/logger"
	"github.com/conorfennell/knolbrowser/internal/storage"
	"github.com/conorfennell/knolbrowser/internal/web"
	"github.com/conorfennell/knolbrowser/internal/wire"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup always happens.
func run(args []string) int {
	catalog, err := i18n.NewCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load translations: %v\n", err)
		return 1
	}

	// 1. Define and parse command-line flags
	flags := pflag.NewFlagSet("knolbrowser", pflag.ExitOnError)
	config.RegisterFlags(flags)
	if f := flags.Lookup("locale"); f != nil {
		f.Usage += " (supported: " + strings.Join(catalog.Locales(), ", ") + ")"
	}
	printKind := flags.String("print", "", "Print the columns of a kind (cards or notes) as JSON and exit")
	flags.Parse(args)

	// 2. Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}

	log, syncLog, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 2
	}
	defer syncLog()

	// 3. One-shot column dump
	if *printKind != "" {
		if err := printColumns(catalog, cfg.Locale, *printKind); err != nil {
			log.Error(err, "Failed to print columns", "kind", *printKind)
			return 1
		}
		return 0
	}

	if err := serve(cfg, catalog, log); err != nil {
		log.Error(err, "Server stopped")
		return 1
	}
	return 0
}

func printColumns(catalog *i18n.Catalog, locale, kindName string) error {
	kind, err := browser.ParseKind(kindName)
	if err != nil {
		return err
	}
	reg := browser.NewRegistry(catalog.Localizer(locale))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(wire.EncodeColumns(reg.Columns(kind)))
}

func serve(cfg config.Config, catalog *i18n.Catalog, log logr.Logger) error {
	db, err := storage.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Database opened successfully", "path", cfg.DB)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(db, catalog, web.WithLocale(cfg.Locale), web.WithLogger(log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", "addr", cfg.Addr, "locale", cfg.Locale)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
