// Package api exposes the scheduling engine over HTTP. Record CRUD and
// authentication live in the surrounding data layer, not here.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkce-it/timetabler/internal/logger"
	"github.com/mkce-it/timetabler/internal/model"
)

// Server wires the engine behind a gin router.
type Server struct {
	timetabler model.Timetabler
	timeout    time.Duration
	log        logger.Logger
}

// NewServer constructs the HTTP surface around one engine instance. The
// timeout bounds each solve call.
func NewServer(timetabler model.Timetabler, timeout time.Duration, log logger.Logger) *Server {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Server{timetabler: timetabler, timeout: timeout, log: log}
}

// Router builds the route table.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.health)

	v1 := router.Group("/api/v1")
	v1.POST("/timetable/generate", s.generate)

	return router
}

// Run serves the router until the context is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
