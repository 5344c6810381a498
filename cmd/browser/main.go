// Package main runs the interactive terminal browser for the universities list.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appctx "github.com/bassista/go_unis/internal/app"
	"github.com/bassista/go_unis/internal/config"
	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/ui"
)

func main() {
	configDir := flag.String("config", "", "Directory holding config.yaml (default ./config)")
	country := flag.String("country", "", "Country to list (overrides the configuration)")
	asYAML := flag.Bool("yaml", false, "Print university details as YAML")
	logFile := flag.String("log", "go_unis_browser.log", "File receiving the log while the browser owns the terminal")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if *country != "" {
		cfg.API.Country = *country
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger.SetOutput(f)
	if err := logger.SetLevel(cfg.Misc.LogLevel); err != nil {
		logger.WithComponent("browser").Warnf("invalid log level '%s': %v", cfg.Misc.LogLevel, err)
	}

	printer := ui.NewPrinter(os.Stdout, *asYAML)
	app, err := appctx.New(cfg, appctx.WithView(printer))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot init app: %v\n", err)
		os.Exit(1)
	}
	defer app.Shutdown()

	app.StartWatchers()

	ctx, stop := signal.NotifyContext(app.BaseCtx, syscall.SIGTERM)
	defer stop()

	browser := ui.NewBrowser(app.List, app.Presenter, app.Cache, printer, ui.PromptSelector{})
	if err := browser.Run(ctx); err != nil {
		logger.WithComponent("browser").Errorf("browser stopped: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
