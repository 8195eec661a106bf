package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

const connectionIDLength = 8

type Random interface {
	String(length int) (string, error)
	ConnectionID() string
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

func (ran *random) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	const charset = "0123456789abcdef"
	b := make([]byte, length)

	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return string(b), nil
}

// ConnectionID tags log lines of one connection. It never fails; a broken
// entropy source yields a fixed placeholder.
func (ran *random) ConnectionID() string {
	id, err := ran.String(connectionIDLength)
	if err != nil {
		return "--------"
	}
	return id
}
