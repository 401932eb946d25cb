package http_api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/core-coin/fontis/internal/executor"
	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/pkg/logger"
)

const (
	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout = 10 * time.Second
)

// Authenticator derives the caller's trust context from a request. The
// OAuth/JWT handshake itself happens upstream; this only reads its result.
type Authenticator interface {
	Authenticate(c *gin.Context) models.AuthContext
}

// HeaderAuth trusts the identity header stamped by the authenticating
// reverse proxy in front of the faucet.
type HeaderAuth struct {
	Header string
}

func (h HeaderAuth) Authenticate(c *gin.Context) models.AuthContext {
	user := c.GetHeader(h.Header)
	return models.AuthContext{Verified: user != "", UserID: user}
}

// HTTPServer is the HTTP server struct that will serve the API
type HTTPServer struct {
	// logger is the logger instance
	logger *logger.Logger

	// router is the HTTP router
	router *gin.Engine
	// port is the port on which the server will listen
	port int

	// server is the underlying HTTP server
	server *http.Server

	// executor is the faucet's serialized work-queue executor
	executor models.ExecutorI
	// auth derives the caller's trust context
	auth Authenticator

	// reply-channel waits, bounded per request kind
	transferTimeout time.Duration
	deployTimeout   time.Duration
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	origins := strings.Join(allowedOrigins, ", ")
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origins)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(exec models.ExecutorI, auth Authenticator, port int, allowedOrigins []string, logger *logger.Logger) *HTTPServer {
	router := gin.Default()

	// Add CORS middleware
	router.Use(corsMiddleware(allowedOrigins))

	server := &HTTPServer{
		router:          router,
		port:            port,
		executor:        exec,
		auth:            auth,
		logger:          logger,
		transferTimeout: executor.TransferReplyTimeout,
		deployTimeout:   executor.DeployReplyTimeout,
	}

	// Define routes
	server.routes()

	return server
}

// Start starts the HTTP server
func (s *HTTPServer) Start() {
	addr := fmt.Sprintf("0.0.0.0:%v", s.port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.logger.Infof("Starting HTTP server on %s", addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Fatal("Failed to start the HTTP server: ", err)
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	s.logger.Info("HTTP server shut down successfully")
	return nil
}
