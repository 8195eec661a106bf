package handler

import (
	"basic_server/internal/http/header"
	"basic_server/types"
	"errors"
)

var ErrNotFound = errors.New("resource not found")

const (
	methodGET = "GET"

	helloPage      = "<html><body><h1>Hello, World!</h1></body></html>"
	staticNotFound = "<html><body><h1>404 Not Found</h1></body></html>"
	fileNotFound   = "<h1>404 Not Found</h1>"
	badRequestPage = "<h1>400 Bad Request</h1>"
)

// Handler turns a parsed request line into a response. Implementations
// must not fail: every outcome is expressed as a response.
type Handler interface {
	Handle(req header.RequestLine) *header.Response
}

// BadRequest is the answer to a request line that could not be parsed.
func BadRequest() *header.Response {
	return header.NewResponse(header.StatusBadRequest, types.ContentTypeHTML, []byte(badRequestPage))
}
