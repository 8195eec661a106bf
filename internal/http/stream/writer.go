package stream

import (
	"basic_server/internal/http/header"
	"fmt"
	"io"
)

// WriteResponse runs the response middlewares and writes the framed bytes,
// retrying until the whole response is written or the writer fails.
func (hs *http) WriteResponse(resp *header.Response) error {
	if err := hs.ApplyResponseMiddlewares(resp, resp.Body); err != nil {
		return fmt.Errorf("apply response middlewares: %w", err)
	}
	return writeFull(hs.writer, resp.Finalize())
}

func (hs *http) ApplyResponseMiddlewares(resp header.ResponseHeader, body []byte) error {
	for _, m := range hs.ResponseMiddlewares() {
		if err := m.HandleResponse(resp, body); err != nil {
			return err
		}
	}
	return nil
}

func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
