package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aayush1982/universal-timeline-viewer/internal/handler"
)

// Pinger is implemented by session backends with an external dependency;
// the readiness probe reports it. A nil Pinger means always ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	dashboardHandler *handler.DashboardHandler,
	pageHandler *handler.PageHandler,
	backend Pinger,
	maxUploadBytes int64,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery(), RequestMetrics())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/health", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		if backend != nil {
			ctx, cancel := context.WithTimeout(c, 1*time.Second)
			defer cancel()
			if err := backend.Ping(ctx); err != nil {
				c.JSON(500, gin.H{"status": "store_not_ready", "error": err.Error()})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Dashboard shell
	r.GET("/", pageHandler.Index)

	// API
	api := r.Group("/api")
	{
		api.POST("/upload", MaxBodySize(maxUploadBytes), dashboardHandler.Upload)
		api.GET("/template", dashboardHandler.Template)

		sessions := api.Group("/sessions/:id")
		{
			sessions.GET("/sheets", dashboardHandler.Sheets)
			sessions.GET("/options", dashboardHandler.GetOptions)
			sessions.PUT("/options", dashboardHandler.SetOptions)
			sessions.GET("/view", dashboardHandler.View)
			sessions.GET("/export/csv", dashboardHandler.ExportCSV)
			sessions.GET("/export/xlsx", dashboardHandler.ExportExcel)
			sessions.GET("/export/chart.html", dashboardHandler.ExportChartHTML)
			sessions.GET("/export/chart.png", dashboardHandler.ExportChartPNG)
		}
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}

// MaxBodySize caps upload request bodies so an oversized workbook fails
// fast instead of buffering into memory.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
