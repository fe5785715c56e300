// Package web serves the upload page, the processing endpoint and the report
// downloads over HTTP.
package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"fjacquet/saldo-xlsx/internal/container"
	"fjacquet/saldo-xlsx/internal/logging"
)

// Server wires the HTTP surface on top of the application container.
type Server struct {
	container *container.Container
	logger    logging.Logger
	engine    *gin.Engine
}

// NewServer builds the gin engine with all routes registered.
func NewServer(c *container.Container) *Server {
	logger := c.GetLogger()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.MaxMultipartMemory = c.GetConfig().MaxUploadBytes()
	engine.SetHTMLTemplate(pageTemplate)

	s := &Server{
		container: c,
		logger:    logger,
		engine:    engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	h := newHandler(s.container)

	s.engine.GET("/", h.index)
	s.engine.POST("/process", h.process)
	s.engine.GET("/download/xlsx", h.downloadXLSX)
	s.engine.GET("/download/csv", h.downloadCSV)
	s.engine.GET("/health", h.health)
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server on addr and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.logger.Info("Starting HTTP server",
		logging.Field{Key: logging.FieldAddr, Value: addr})
	return s.engine.Run(addr)
}

// requestLogger emits one structured line per handled request.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("Request handled",
			logging.Field{Key: logging.FieldMethod, Value: c.Request.Method},
			logging.Field{Key: logging.FieldPath, Value: c.Request.URL.Path},
			logging.Field{Key: logging.FieldStatus, Value: c.Writer.Status()},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	}
}
