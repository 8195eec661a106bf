package bootstrap

import (
	"basic_server/internal/config"
	"basic_server/internal/handler"
	"basic_server/internal/random"
	"basic_server/internal/transport"
	"basic_server/internal/version"
	"basic_server/types"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

type Bootstrap struct {
	Randomizer random.Random
	Config     config.Config
	Logger     *zap.Logger
	Handler    handler.Handler
	ErrChan    chan error
	SignalChan chan os.Signal

	closers []io.Closer
}

func New(conf config.Config, logger *zap.Logger) (*Bootstrap, error) {
	for _, warning := range conf.Warnings() {
		logger.Warn(warning)
	}

	b := &Bootstrap{
		Randomizer: random.New(),
		Config:     conf,
		Logger:     logger,
		ErrChan:    make(chan error, 1),
		SignalChan: make(chan os.Signal, 1),
	}

	h, err := b.newHandler()
	if err != nil {
		return nil, err
	}
	b.Handler = h

	return b, nil
}

func (b *Bootstrap) newHandler() (handler.Handler, error) {
	switch b.Config.Mode() {
	case types.ServerModeSTATIC:
		return handler.NewStatic(b.Config.DefaultDocument()), nil
	case types.ServerModeFILES:
		rfs, err := handler.OpenRoot(b.Config.DocumentRoot())
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, rfs)
		return handler.NewFiles(rfs, b.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported server mode %s", b.Config.Mode())
	}
}

// Run listens and serves until the listener fails or a shutdown signal
// arrives. A listen failure is returned wrapped in transport.ErrSocketSetup.
func (b *Bootstrap) Run() error {
	defer b.close()

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	httpServer := transport.NewHTTPServer(b.Config, b.Handler, b.Randomizer, b.Logger)
	ln, err := httpServer.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	b.Logger.Info("Server listening",
		zap.String("version", version.GetVersion()),
		zap.Stringer("address", ln.Addr()),
		zap.Stringer("mode", b.Config.Mode()))

	go func() {
		b.ErrChan <- httpServer.Serve(ln)
	}()

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("error when serving http server: %w", err)
	case sig := <-b.SignalChan:
		b.Logger.Info("Received signal, initiating graceful shutdown", zap.Stringer("signal", sig))
		if err = ln.Close(); err != nil {
			b.Logger.Warn("Failed to close listener", zap.Error(err))
		}
		if err = <-b.ErrChan; err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("error when serving http server: %w", err)
		}
		return nil
	}
}

func (b *Bootstrap) close() {
	for _, c := range b.closers {
		if err := c.Close(); err != nil {
			b.Logger.Warn("Failed to release resource", zap.Error(err))
		}
	}
	b.closers = nil
}
