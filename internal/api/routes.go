package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
)

// NewRouter builds the engine with recovery, request logging and all routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/deck/encode", h.encode)
		api.GET("/deck/decode", h.decode)
		api.GET("/deck/text", h.text)
		api.POST("/deck/image", h.deckImage)
		api.GET("/qr", h.qr)
		api.POST("/cards/filter", h.filter)
		if h.store != nil {
			api.POST("/share", h.share)
			api.GET("/share/:id", h.loadShare)
		}
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		glog.Infof("%s %s %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		for _, e := range c.Errors {
			glog.Warningf("%s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}
	}
}
