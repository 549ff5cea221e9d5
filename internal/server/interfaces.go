package server

// Server is the lifecycle of the HTTP server.
//
// RunServer blocks until a stop signal arrives and the in-flight requests
// are drained. Shutdown may be called directly, e.g. from tests.
type Server interface {
	RunServer()
	Shutdown()
}
