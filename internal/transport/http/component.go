package httptr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Component runs an http.Server bound to a fixed address with graceful
// shutdown semantics, mirroring the gRPC component.
type Component struct {
	address string
	server  *http.Server
}

func NewComponent(address string, handler http.Handler) *Component {
	return &Component{
		address: address,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (c *Component) Startup(ctx context.Context) error {
	lis, err := net.Listen("tcp", c.address)
	if err != nil {
		return fmt.Errorf("cannot listen address %s: %w", c.address, err)
	}

	channel := make(chan error)
	go func() {
		defer close(channel)
		select {
		case channel <- c.server.Serve(lis):
		case <-ctx.Done():
		}
	}()

	select {
	case err := <-channel:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error while serve %s: %w", c.address, err)
	case <-ctx.Done():
		return nil
	}
}

func (c *Component) Shutdown(ctx context.Context) error {
	if err := c.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
