// Package ports holds the interfaces that connect the layers of the service.
// Service-side ports are implemented by the application layer and consumed by
// HTTP handlers; client-side ports are implemented by outbound adapters and
// consumed by the application layer.
package ports
