package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a Server accepts connections on.
type SecurityLayer interface {
	Listen(network, addr string) (net.Listener, error)
}

// Server is a transport with a start/stop lifecycle.
type Server interface {
	// Start blocks until the server stops.
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
