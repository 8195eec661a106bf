package middleware

import (
	"basic_server/internal/http/header"
)

type ResponseMiddleware interface {
	HandleResponse(header header.ResponseHeader, body []byte) error
}
