package transport

import (
	"context"
	"fmt"
	"net"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

// Dial opens a TCP connection to a tower. The returned Conn records events
// with RoleClient.
func Dial(ctx context.Context, address string, config ConnConfig) (*Conn, error) {
	var dialer net.Dialer
	nc, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	config.Role = log.RoleClient
	return NewConn(nc, config), nil
}

// Listener accepts client connections on behalf of a tower.
type Listener struct {
	ln     net.Listener
	config ConnConfig
}

// Listen listens for TCP connections on address. Accepted Conns record
// events with RoleTower.
func Listen(address string, config ConnConfig) (*Listener, error) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", address, err)
	}
	config.Role = log.RoleTower
	return &Listener{ln: ln, config: config}, nil
}

// Accept waits for the next client.
func (l *Listener) Accept() (*Conn, error) {
	nc, err := l.ln.Accept()
	if err != nil {
		return nil, err
	}
	return NewConn(nc, l.config), nil
}

// Addr returns the listen address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Close stops listening. Accepted connections stay open.
func (l *Listener) Close() error {
	return l.ln.Close()
}
