package header

import (
	"strconv"
	"strings"
)

const (
	StatusOK         = "200 OK"
	StatusBadRequest = "400 Bad Request"
	StatusNotFound   = "404 Not Found"
)

const protoVersion = "HTTP/1.1"

type Response struct {
	Status      string
	ContentType string
	Body        []byte
	Close       bool

	headers []field
}

func NewResponse(status, contentType string, body []byte) *Response {
	return &Response{
		Status:      status,
		ContentType: contentType,
		Body:        body,
	}
}

// Render frames body as a complete HTTP/1.1 response. It is pure and never
// adds a Connection header.
func Render(status, contentType string, body []byte) []byte {
	return NewResponse(status, contentType, body).Finalize()
}

// reserved headers are owned by the framer and cannot be overridden.
func reserved(key string) bool {
	return strings.EqualFold(key, "Content-Type") ||
		strings.EqualFold(key, "Content-Length") ||
		strings.EqualFold(key, "Connection")
}

func (resp *Response) Value(key string) string {
	for _, f := range resp.headers {
		if strings.EqualFold(f.key, key) {
			return f.value
		}
	}
	return ""
}

// Set replaces the value of key, or appends it after the existing extra
// headers. Reserved framing headers are ignored.
func (resp *Response) Set(key string, value string) {
	if reserved(key) {
		return
	}
	for i := range resp.headers {
		if strings.EqualFold(resp.headers[i].key, key) {
			resp.headers[i].value = value
			return
		}
	}
	resp.headers = append(resp.headers, field{key: key, value: value})
}

func (resp *Response) Remove(key string) {
	for i := range resp.headers {
		if strings.EqualFold(resp.headers[i].key, key) {
			resp.headers = append(resp.headers[:i], resp.headers[i+1:]...)
			return
		}
	}
}

func (resp *Response) Finalize() []byte {
	contentLength := strconv.Itoa(len(resp.Body))

	size := len(protoVersion) + 1 + len(resp.Status) + 2
	size += len("Content-Type: ") + len(resp.ContentType) + 2
	size += len("Content-Length: ") + len(contentLength) + 2
	for _, f := range resp.headers {
		size += len(f.key) + 2 + len(f.value) + 2
	}
	if resp.Close {
		size += len("Connection: close\r\n")
	}
	size += 2 + len(resp.Body)

	buf := make([]byte, 0, size)
	buf = append(buf, protoVersion...)
	buf = append(buf, ' ')
	buf = append(buf, resp.Status...)
	buf = append(buf, '\r', '\n')

	buf = append(buf, "Content-Type: "...)
	buf = append(buf, resp.ContentType...)
	buf = append(buf, '\r', '\n')

	buf = append(buf, "Content-Length: "...)
	buf = append(buf, contentLength...)
	buf = append(buf, '\r', '\n')

	for _, f := range resp.headers {
		buf = append(buf, f.key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.value...)
		buf = append(buf, '\r', '\n')
	}

	if resp.Close {
		buf = append(buf, "Connection: close\r\n"...)
	}

	buf = append(buf, '\r', '\n')
	buf = append(buf, resp.Body...)
	return buf
}
