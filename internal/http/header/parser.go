package header

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed request line")

// ParseRequestLine reads the method and path from the first line of raw.
// A missing line terminator is tolerated, so a truncated read still parses
// when both tokens arrived. The path "/" is replaced by defaultDocument
// unless defaultDocument is empty; no other path is rewritten and the path
// is otherwise returned verbatim (no percent decoding, query kept).
func ParseRequestLine(raw []byte, defaultDocument string) (RequestLine, error) {
	method, path, version, err := parseStartLine(firstLine(raw))
	if err != nil {
		return nil, err
	}

	if path == "/" && defaultDocument != "" {
		path = defaultDocument
	}

	return &requestLine{
		method:  method,
		path:    path,
		version: version,
	}, nil
}

func firstLine(raw []byte) []byte {
	if lineEnd := bytes.IndexByte(raw, '\n'); lineEnd != -1 {
		return raw[:lineEnd]
	}
	return raw
}

func parseStartLine(startLine []byte) (method, path, version string, err error) {
	tokens := bytes.FieldsFunc(startLine, isSpace)
	switch len(tokens) {
	case 0:
		return "", "", "", fmt.Errorf("%w: missing method", ErrMalformed)
	case 1:
		return "", "", "", fmt.Errorf("%w: missing path", ErrMalformed)
	case 2:
		return string(tokens[0]), string(tokens[1]), "", nil
	}

	return string(tokens[0]), string(tokens[1]), string(tokens[2]), nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
