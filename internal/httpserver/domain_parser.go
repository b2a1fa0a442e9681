package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"maintenance-task-parser/internal/middleware"
	parserHTTP "maintenance-task-parser/internal/parser/delivery/http"
	parserUC "maintenance-task-parser/internal/parser/usecase"
)

// setupParserDomain initializes the parser domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupParserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := parserUC.New(srv.l, srv.tables, srv.nlp, srv.dateMath, srv.calendar, srv.calendarID)

	// 2. HTTP Handler
	h := parserHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/parser/requests
	parserHTTP.RegisterRoutes(api.Group("/parser"), h, mw)

	srv.l.Infof(ctx, "Parser domain registered")
	return nil
}
