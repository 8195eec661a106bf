package transport

import (
	"basic_server/internal/config"
	"basic_server/internal/handler"
	"basic_server/internal/http/header"
	"basic_server/internal/http/stream"
	"basic_server/internal/middleware"
	"basic_server/internal/random"
	"basic_server/internal/version"
	"basic_server/types"
	"errors"
	"io"
	"net"
	"time"

	"go.uber.org/zap"
)

type httpHandler struct {
	app             handler.Handler
	randomizer      random.Random
	logger          *zap.Logger
	defaultDocument string
	readBufferSize  int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	closeHeader     bool
}

func newHTTPHandler(conf config.Config, h handler.Handler, randomizer random.Random, logger *zap.Logger) *httpHandler {
	return &httpHandler{
		app:             h,
		randomizer:      randomizer,
		logger:          logger,
		defaultDocument: conf.DefaultDocument(),
		readBufferSize:  conf.ReadBufferSize(),
		readTimeout:     conf.ReadTimeout(),
		writeTimeout:    conf.WriteTimeout(),
		closeHeader:     conf.CloseHeader(),
	}
}

func (hh *httpHandler) handler(conn net.Conn) {
	log := hh.logger.With(
		zap.String("conn_id", hh.randomizer.ConnectionID()),
		zap.Stringer("remote", conn.RemoteAddr()),
	)
	log.Debug("Connection state", zap.String("state", string(types.ACCEPTED)))

	hs := stream.New(conn, conn, conn.RemoteAddr(), hh.readBufferSize)
	defer hh.closeConnection(hs, log)

	hs.UseResponseMiddleware(middleware.NewServerHeader(version.ServerHeader()))

	if err := setDeadline(conn.SetReadDeadline, hh.readTimeout); err != nil {
		log.Warn("Failed to set read deadline", zap.Error(err))
	}

	raw, err := hs.ReadRequest()
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Debug("Peer closed before sending a request")
			return
		}
		log.Warn("Error reading request", zap.Error(err))
		return
	}
	log.Debug("Connection state", zap.String("state", string(types.READ)), zap.Int("bytes", len(raw)))

	resp := hh.respond(raw, log)
	resp.Close = hh.closeHeader

	if err = setDeadline(conn.SetWriteDeadline, hh.writeTimeout); err != nil {
		log.Warn("Failed to set write deadline", zap.Error(err))
	}
	if err = hs.WriteResponse(resp); err != nil {
		log.Warn("Error writing response", zap.Error(err))
		return
	}
	log.Debug("Connection state", zap.String("state", string(types.RESPONDED)))
}

func (hh *httpHandler) respond(raw []byte, log *zap.Logger) *header.Response {
	req, err := header.ParseRequestLine(raw, hh.defaultDocument)
	if err != nil {
		log.Info("Malformed request",
			zap.String("state", string(types.MALFORMED)),
			zap.Int("bytes", len(raw)),
			zap.Error(err))
		return handler.BadRequest()
	}
	log.Debug("Connection state", zap.String("state", string(types.PARSED)))

	resp := hh.app.Handle(req)
	log.Info("Request",
		zap.String("method", req.Method()),
		zap.String("path", req.Path()),
		zap.String("status", resp.Status),
		zap.Int("size", len(resp.Body)))
	return resp
}

func (hh *httpHandler) closeConnection(hs stream.HTTP, log *zap.Logger) {
	err := hs.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Warn("Error closing connection", zap.Error(err))
	}
	log.Debug("Connection state", zap.String("state", string(types.CLOSED)))
}

func setDeadline(set func(time.Time) error, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}
	return set(time.Now().Add(timeout))
}
