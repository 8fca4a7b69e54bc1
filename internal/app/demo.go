package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/five82/pacer/internal/demoapi"
)

// DemoOptions configure the demo diary API.
type DemoOptions struct {
	Addr  string
	Token string
	// Ready, when set, receives the bound address once the listener is up.
	Ready func(addr string)
}

// ServeDemo serves an in-memory diary API until ctx is cancelled.
func ServeDemo(ctx context.Context, opts DemoOptions) error {
	addr := opts.Addr
	if addr == "" {
		addr = "127.0.0.1:8000"
	}
	var serverOpts []demoapi.Option
	if opts.Token != "" {
		serverOpts = append(serverOpts, demoapi.WithToken(opts.Token))
	}
	handler := demoapi.New(serverOpts...)
	handler.Seed(time.Now())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	log.Printf("demo api listening on %s", ln.Addr())
	if opts.Ready != nil {
		opts.Ready(ln.Addr().String())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown demo api: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve demo api: %w", err)
	}
}
