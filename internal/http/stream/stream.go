package stream

import (
	"basic_server/internal/http/header"
	"basic_server/internal/middleware"
	"io"
	"net"
)

var DELIMITER = []byte{0x0D, 0x0A, 0x0D, 0x0A}

const readChunkSize = 512

type HTTP interface {
	io.Closer
	RemoteAddr() net.Addr
	ReadRequest() ([]byte, error)
	WriteResponse(resp *header.Response) error
	UseResponseMiddleware(mw middleware.ResponseMiddleware)
	ResponseMiddlewares() []middleware.ResponseMiddleware
	ApplyResponseMiddlewares(resp header.ResponseHeader, body []byte) error
}

type http struct {
	remoteAddr     net.Addr
	writer         io.Writer
	reader         io.Reader
	maxRequestSize int
	respMW         []middleware.ResponseMiddleware
}

// New wraps one client connection. At most maxRequestSize bytes of the
// request are ever buffered.
func New(writer io.Writer, reader io.Reader, remoteAddr net.Addr, maxRequestSize int) HTTP {
	return &http{
		remoteAddr:     remoteAddr,
		writer:         writer,
		reader:         reader,
		maxRequestSize: maxRequestSize,
	}
}

func (hs *http) RemoteAddr() net.Addr {
	return hs.remoteAddr
}

func (hs *http) UseResponseMiddleware(mw middleware.ResponseMiddleware) {
	hs.respMW = append(hs.respMW, mw)
}

func (hs *http) ResponseMiddlewares() []middleware.ResponseMiddleware {
	return hs.respMW
}

func (hs *http) Close() error {
	if closer, ok := hs.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
