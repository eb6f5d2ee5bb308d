// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The store port is implemented by the memory adapter and called by the
// application layer and the event hub.
package ports
