package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"maintenance-task-parser/config"
	_ "maintenance-task-parser/docs" // Swagger docs
	"maintenance-task-parser/internal/httpserver"
	"maintenance-task-parser/internal/parser"
	parserUC "maintenance-task-parser/internal/parser/usecase"
	"maintenance-task-parser/pkg/datemath"
	"maintenance-task-parser/pkg/gcalendar"
	"maintenance-task-parser/pkg/log"
	"maintenance-task-parser/pkg/nlpsvc"
)

// @title       Maintenance Task Parser API
// @description Rule-based parsing of free-text maintenance requests into structured work records.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Maintenance Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "NLP sidecar URL: %s", cfg.NLP.URL)

	// 3. Keyword tables
	tables := parser.DefaultTables()
	if cfg.Parser.KeywordsPath != "" {
		tables, err = parser.LoadTables(cfg.Parser.KeywordsPath)
		if err != nil {
			logger.Errorf(ctx, "Failed to load keyword tables: %v", err)
			return
		}
		logger.Infof(ctx, "Keyword tables loaded from %s", cfg.Parser.KeywordsPath)
	}

	// 4. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Parser.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. NLP sidecar client
	nlpClient := nlpsvc.NewClient(cfg.NLP.URL, cfg.NLP.Timeout)

	// 6. Google Calendar client (optional)
	var calendarClient parserUC.CalendarClient
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Tables:      tables,
		NLP:         nlpClient,
		DateMath:    dateMathParser,
		Calendar:    calendarClient,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
