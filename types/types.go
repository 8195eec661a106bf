package types

type ServerMode int

const (
	ServerModeFILES ServerMode = iota + 1
	ServerModeSTATIC
)

func (m ServerMode) String() string {
	switch m {
	case ServerModeFILES:
		return "files"
	case ServerModeSTATIC:
		return "static"
	default:
		return "unknown"
	}
}

type ConnectionState string

const (
	ACCEPTED  ConnectionState = "ACCEPTED"
	READ      ConnectionState = "READ"
	PARSED    ConnectionState = "PARSED"
	MALFORMED ConnectionState = "MALFORMED"
	RESPONDED ConnectionState = "RESPONDED"
	CLOSED    ConnectionState = "CLOSED"
)

const ContentTypeHTML = "text/html"
