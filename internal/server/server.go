package server

import (
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/api/controller"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
}

// NewServer wires the game routes. When webRoot is set, unmatched paths are
// served from that directory so a browser client can be hosted alongside.
func NewServer(gameController *controller.GameController, webRoot string) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestTelemetry())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	games := engine.Group("/api/games")
	games.POST("", gameController.Create)
	games.GET("/:id", gameController.Get)
	games.DELETE("/:id", gameController.Delete)
	games.POST("/:id/moves", gameController.Move)
	games.POST("/:id/reset", gameController.Reset)
	games.GET("/:id/board", gameController.Board)

	if webRoot != "" {
		engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(webRoot))))
	}

	return &Server{engine: engine}
}

// Engine returns the http.Handler to serve.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestTelemetry opens a span per request, continuing any incoming trace,
// and logs the outcome once the handlers have run.
func requestTelemetry() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route, trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.url", c.Request.URL.String()),
		), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		slog.InfoContext(ctx, "request handled",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency", time.Since(start),
		)
	}
}
