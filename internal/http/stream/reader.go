package stream

import (
	"bytes"
	"errors"
	"io"
	"net"
)

// ReadRequest buffers the request head. It stops at the blank line ending
// the header block, at EOF, or once maxRequestSize bytes are held; anything
// beyond the limit is left unread. io.EOF is returned only when the peer
// closed without sending a byte. A read timeout after partial data returns
// what arrived so the request line can still be answered.
func (hs *http) ReadRequest() ([]byte, error) {
	buf := make([]byte, 0, min(hs.maxRequestSize, readChunkSize))
	chunk := make([]byte, min(hs.maxRequestSize, readChunkSize))

	for len(buf) < hs.maxRequestSize {
		want := min(len(chunk), hs.maxRequestSize-len(buf))
		read, err := hs.reader.Read(chunk[:want])

		scanFrom := max(0, len(buf)-len(DELIMITER)+1)
		buf = append(buf, chunk[:read]...)
		if headerComplete(buf[scanFrom:]) {
			return buf, nil
		}

		if err != nil {
			return handleReadError(buf, err)
		}
	}

	return buf, nil
}

func headerComplete(buf []byte) bool {
	return bytes.Contains(buf, DELIMITER) || bytes.Contains(buf, []byte("\n\n"))
}

func handleReadError(buf []byte, err error) ([]byte, error) {
	if errors.Is(err, io.EOF) {
		if len(buf) == 0 {
			return nil, io.EOF
		}
		return buf, nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() && len(buf) > 0 {
		return buf, nil
	}

	return nil, err
}
