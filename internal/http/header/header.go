package header

type RequestLine interface {
	Method() string
	Path() string
	Version() string
}

type requestLine struct {
	method  string
	path    string
	version string
}

type ResponseHeader interface {
	Value(key string) string
	Set(key string, value string)
	Remove(key string)
	Finalize() []byte
}

type field struct {
	key   string
	value string
}
