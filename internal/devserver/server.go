// Package devserver is the local stand-in for the agriculture backend. It
// serves the API surface the dashboard core consumes from the embedded
// datasets, so the core can be exercised offline. It is a development
// fixture, not a product surface.
package devserver

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/data"
	"krishi-dashboard/internal/records"
)

// Server wraps the gin engine and the mutable in-memory collections the POST
// endpoints append to.
type Server struct {
	engine *gin.Engine
	log    logger.Logger

	// mu guards the three mutable collections; gin runs handlers
	// concurrently.
	mu      sync.Mutex
	alerts  []map[string]interface{}
	schemes []map[string]interface{}
	reports []map[string]interface{}
}

// New builds the router. Collections start from the embedded fixtures.
func New(log logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	s := &Server{log: log}
	for _, load := range []struct {
		typ  records.RecordType
		dest *[]map[string]interface{}
	}{
		{records.TypeAlert, &s.alerts},
		{records.TypeScheme, &s.schemes},
		{records.TypeReport, &s.reports},
	} {
		raws, err := data.Raw(load.typ)
		if err != nil {
			return nil, fmt.Errorf("loading %s fixtures: %w", load.typ, err)
		}
		*load.dest = raws
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.GET("/health", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/farmers", s.handleFarmers)
		apiGroup.GET("/farmers/:id", s.handleFarmerByID)
		apiGroup.GET("/pest-report", s.handlePestReport)
		apiGroup.GET("/alerts", s.listCollection(&s.alerts))
		apiGroup.POST("/alerts", s.handleCreateAlert)
		apiGroup.GET("/schemes", s.listCollection(&s.schemes))
		apiGroup.POST("/schemes", s.handleCreateScheme)
		apiGroup.GET("/reports", s.listCollection(&s.reports))
		apiGroup.POST("/reports", s.handleCreateReport)
	}

	s.engine = engine
	return s, nil
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleFarmers(c *gin.Context) {
	raws, err := data.Raw(records.TypeFarmer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, raws)
}

func (s *Server) handleFarmerByID(c *gin.Context) {
	id := c.Param("id")
	raws, err := data.Raw(records.TypeFarmer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, raw := range raws {
		if raw["id"] == id {
			c.JSON(http.StatusOK, raw)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no farmer with id %q", id)})
}

func (s *Server) handlePestReport(c *gin.Context) {
	report, err := data.PestReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// createPayload is the common POST flow: bind, stamp server-side fields,
// validate through the same schemas the dashboard normalizer uses, append,
// echo the created entity.
func (s *Server) createPayload(c *gin.Context, typ records.RecordType, stamp func(map[string]interface{}), dest *[]map[string]interface{}) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON payload"})
		return
	}
	stamp(payload)
	if _, err := records.Normalize(payload, typ); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	*dest = append(*dest, payload)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, payload)
}

// listCollection serves one mutable collection, created entities included.
func (s *Server) listCollection(src *[]map[string]interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		out := make([]map[string]interface{}, len(*src))
		copy(out, *src)
		s.mu.Unlock()
		c.JSON(http.StatusOK, out)
	}
}

func (s *Server) handleCreateAlert(c *gin.Context) {
	s.createPayload(c, records.TypeAlert, func(p map[string]interface{}) {
		p["id"] = "A-" + uuid.NewString()
		p["status"] = records.StatusProcessing
		p["sentAt"] = time.Now().UTC().Format(time.RFC3339)
	}, &s.alerts)
}

func (s *Server) handleCreateScheme(c *gin.Context) {
	s.createPayload(c, records.TypeScheme, func(p map[string]interface{}) {
		p["id"] = "S-" + uuid.NewString()
		if _, ok := p["status"]; !ok {
			p["status"] = records.StatusNew
		}
	}, &s.schemes)
}

func (s *Server) handleCreateReport(c *gin.Context) {
	s.createPayload(c, records.TypeReport, func(p map[string]interface{}) {
		p["id"] = "R-" + uuid.NewString()
		p["status"] = records.StatusProcessing
		p["generatedAt"] = time.Now().UTC().Format(time.RFC3339)
	}, &s.reports)
}
