package http

import (
	"maintenance-task-parser/internal/parser"
	"maintenance-task-parser/pkg/log"
)

// Handler is the public interface for the parser HTTP delivery layer.
type Handler interface {
	Parse(c interface{})
}

type handler struct {
	l  log.Logger
	uc parser.UseCase
}

// New creates a new HTTP handler for the parser domain.
func New(l log.Logger, uc parser.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
