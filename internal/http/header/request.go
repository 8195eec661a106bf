package header

func (req *requestLine) Method() string {
	return req.method
}

func (req *requestLine) Path() string {
	return req.path
}

func (req *requestLine) Version() string {
	return req.version
}

func (req *requestLine) String() string {
	if req.version == "" {
		return req.method + " " + req.path
	}
	return req.method + " " + req.path + " " + req.version
}
