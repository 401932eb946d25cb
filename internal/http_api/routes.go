package http_api

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	s.router.GET("/", s.health)
	s.router.GET("/health", s.health)
	s.router.GET("/tokens", s.tokens)
	s.router.POST("/withdraw", s.withdraw)
	s.router.POST("/deploy/cbc20", s.deployCBC20)
}
