package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dev-MihirParmar/Enlighten/log"
)

// Server routes the handlers of every concern through a shared gin engine.
type Server struct {
	router *gin.Engine
	logger log.Logger
}

func NewServer(env string, logger log.Logger) *Server {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/enlighten/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	return &Server{
		router: router,
		logger: logger,
	}
}

// RegisterHandler mounts a plain http handler on the route, making the path
// parameters available in the request context under the "params" key.
func (s *Server) RegisterHandler(path, method string, handler http.Handler) {
	s.router.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		handler.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Print("server started, listening on ", addr)
	return http.ListenAndServe(addr, s.router)
}
