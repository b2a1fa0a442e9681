package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maintenance-task-parser/config"
	"maintenance-task-parser/internal/parser"
	parserUC "maintenance-task-parser/internal/parser/usecase"
	"maintenance-task-parser/pkg/datemath"
	"maintenance-task-parser/pkg/log"
	"maintenance-task-parser/pkg/nlpsvc"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	appConfig   *config.Config

	// Parser domain
	tables     *parser.Tables
	nlp        nlpsvc.INLPService
	dateMath   *datemath.Parser
	calendar   parserUC.CalendarClient
	calendarID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Parser domain
	Tables     *parser.Tables
	NLP        nlpsvc.INLPService
	DateMath   *datemath.Parser
	Calendar   parserUC.CalendarClient // optional
	CalendarID string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		appConfig:   cfg.AppConfig,
		tables:      cfg.Tables,
		nlp:         cfg.NLP,
		dateMath:    cfg.DateMath,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	if srv.tables == nil {
		return errors.New("keyword tables are required")
	}
	if srv.nlp == nil {
		return errors.New("NLP service is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
