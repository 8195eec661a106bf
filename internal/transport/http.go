package transport

import (
	"basic_server/internal/config"
	"basic_server/internal/handler"
	"basic_server/internal/random"
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

type httpServer struct {
	handler *httpHandler
	address string
	workers int64
	sem     *semaphore.Weighted
	logger  *zap.Logger
}

func NewHTTPServer(conf config.Config, h handler.Handler, randomizer random.Random, logger *zap.Logger) Transport {
	workers := int64(max(conf.Workers(), 1))
	return &httpServer{
		handler: newHTTPHandler(conf, h, randomizer, logger),
		address: conf.Address(),
		workers: workers,
		sem:     semaphore.NewWeighted(workers),
		logger:  logger,
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", ht.address)
	if err != nil {
		return nil, fmt.Errorf("%w: listen on %s: %w", ErrSocketSetup, ht.address, err)
	}
	return ln, nil
}

// Serve accepts until the listener is closed. With a single worker every
// connection is read, answered and closed before the next Accept.
func (ht *httpServer) Serve(listener net.Listener) error {
	ht.logger.Info("HTTP server is starting",
		zap.Stringer("address", listener.Addr()),
		zap.Int64("workers", ht.workers))

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				ht.wait()
				return err
			}
			ht.logger.Error("Error accepting connection", zap.Error(err))
			continue
		}

		if ht.workers == 1 {
			ht.handler.handler(conn)
			continue
		}

		// context.Background never cancels, so Acquire cannot fail here.
		_ = ht.sem.Acquire(context.Background(), 1)
		go func() {
			defer ht.sem.Release(1)
			ht.handler.handler(conn)
		}()
	}
}

// wait blocks until every in-flight connection has been closed.
func (ht *httpServer) wait() {
	_ = ht.sem.Acquire(context.Background(), ht.workers)
	ht.sem.Release(ht.workers)
}
