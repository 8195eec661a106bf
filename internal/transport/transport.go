package transport

import (
	"errors"
	"net"
)

var ErrSocketSetup = errors.New("socket setup failed")

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}
