package server

// Server is the lifecycle contract of the process-level server built by
// [NewServer].
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones,
	// bounded by the configured shutdown timeout.
	Shutdown()
}
