package middleware

import (
	"basic_server/internal/http/header"
)

type ServerHeader struct {
	value string
}

func NewServerHeader(value string) *ServerHeader {
	return &ServerHeader{value: value}
}

func (h *ServerHeader) HandleResponse(header header.ResponseHeader, body []byte) error {
	header.Set("Server", h.value)
	return nil
}
