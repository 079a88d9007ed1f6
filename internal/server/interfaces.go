package server

// Server is the lifecycle contract of a transport server owned by this
// package. RunServer blocks until the process receives a stop signal or
// Shutdown is called; Shutdown drains in-flight requests before returning.
type Server interface {
	RunServer()
	Shutdown()
}
