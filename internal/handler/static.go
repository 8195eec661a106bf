package handler

import (
	"basic_server/internal/http/header"
	"basic_server/types"
)

type static struct {
	defaultDocument string
}

// NewStatic serves a fixed greeting for GET of the default document and a
// 404 page for everything else.
func NewStatic(defaultDocument string) Handler {
	return &static{defaultDocument: defaultDocument}
}

func (s *static) Handle(req header.RequestLine) *header.Response {
	if req.Method() == methodGET && req.Path() == s.defaultDocument {
		return header.NewResponse(header.StatusOK, types.ContentTypeHTML, []byte(helloPage))
	}
	return header.NewResponse(header.StatusNotFound, types.ContentTypeHTML, []byte(staticNotFound))
}
