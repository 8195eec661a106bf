package handler

import (
	"basic_server/internal/http/header"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockFilesystem struct {
	mock.Mock
}

func (m *MockFilesystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func mustParse(t *testing.T, line string) header.RequestLine {
	t.Helper()
	req, err := header.ParseRequestLine([]byte(line), "/index.html")
	require.NoError(t, err)
	return req
}

func TestBadRequest(t *testing.T) {
	resp := BadRequest()
	assert.Equal(t, header.StatusBadRequest, resp.Status)
	assert.Equal(t, "text/html", resp.ContentType)
	assert.Equal(t, "<h1>400 Bad Request</h1>", string(resp.Body))
}

func TestStaticHandle(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantStatus string
		wantBody   string
	}{
		{
			name:       "root serves greeting",
			line:       "GET / HTTP/1.1\r\n",
			wantStatus: header.StatusOK,
			wantBody:   "<html><body><h1>Hello, World!</h1></body></html>",
		},
		{
			name:       "default document serves greeting",
			line:       "GET /index.html HTTP/1.1\r\n",
			wantStatus: header.StatusOK,
			wantBody:   "<html><body><h1>Hello, World!</h1></body></html>",
		},
		{
			name:       "other path",
			line:       "GET /about HTTP/1.1\r\n",
			wantStatus: header.StatusNotFound,
			wantBody:   "<html><body><h1>404 Not Found</h1></body></html>",
		},
		{
			name:       "non GET method",
			line:       "POST / HTTP/1.1\r\n",
			wantStatus: header.StatusNotFound,
			wantBody:   "<html><body><h1>404 Not Found</h1></body></html>",
		},
	}

	h := NewStatic("/index.html")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.Handle(mustParse(t, tt.line))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantBody, string(resp.Body))
			assert.Equal(t, "text/html", resp.ContentType)
		})
	}
}

func TestFilesHandleWithMock(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		setup      func(m *MockFilesystem)
		wantStatus string
		wantBody   string
		wantLogs   int
	}{
		{
			name: "file served",
			line: "GET / HTTP/1.1\r\n",
			setup: func(m *MockFilesystem) {
				m.On("ReadFile", "/index.html").Return([]byte("<p>index</p>"), nil)
			},
			wantStatus: header.StatusOK,
			wantBody:   "<p>index</p>",
		},
		{
			name: "missing file",
			line: "GET /nope.html HTTP/1.1\r\n",
			setup: func(m *MockFilesystem) {
				m.On("ReadFile", "/nope.html").Return(nil, ErrNotFound)
			},
			wantStatus: header.StatusNotFound,
			wantBody:   "<h1>404 Not Found</h1>",
		},
		{
			name: "outside root is logged",
			line: "GET /../secret HTTP/1.1\r\n",
			setup: func(m *MockFilesystem) {
				m.On("ReadFile", "/../secret").Return(nil, ErrOutsideRoot)
			},
			wantStatus: header.StatusNotFound,
			wantBody:   "<h1>404 Not Found</h1>",
			wantLogs:   1,
		},
		{
			name: "unreadable file",
			line: "GET /locked HTTP/1.1\r\n",
			setup: func(m *MockFilesystem) {
				m.On("ReadFile", "/locked").Return(nil, errors.New("permission denied"))
			},
			wantStatus: header.StatusNotFound,
			wantBody:   "<h1>404 Not Found</h1>",
			wantLogs:   1,
		},
		{
			name:       "non GET never touches the filesystem",
			line:       "DELETE /index.html HTTP/1.1\r\n",
			setup:      func(m *MockFilesystem) {},
			wantStatus: header.StatusNotFound,
			wantBody:   "<h1>404 Not Found</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := new(MockFilesystem)
			tt.setup(mfs)
			core, logs := observer.New(zapcore.DebugLevel)

			resp := NewFiles(mfs, zap.New(core)).Handle(mustParse(t, tt.line))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantBody, string(resp.Body))
			assert.Equal(t, tt.wantLogs, logs.Len())
			mfs.AssertExpectations(t)
		})
	}
}

func TestNotFoundContentLength(t *testing.T) {
	mfs := new(MockFilesystem)
	mfs.On("ReadFile", "/nope.html").Return(nil, ErrNotFound)

	resp := NewFiles(mfs, zap.NewNop()).Handle(mustParse(t, "GET /nope.html HTTP/1.1\r\n"))
	assert.Contains(t, string(resp.Finalize()), "Content-Length: 22\r\n")
}

func newDocumentRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "a.html"), []byte("<p>a</p>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "utf8.html"), []byte("héllo ✓"), 0644))
	return dir
}

func TestRootFSReadFile(t *testing.T) {
	dir := newDocumentRoot(t)
	outside := filepath.Join(filepath.Dir(dir), filepath.Base(dir)+"-outside.html")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))
	t.Cleanup(func() { _ = os.Remove(outside) })

	rfs, err := OpenRoot(dir)
	require.NoError(t, err)
	defer rfs.Close()

	tests := []struct {
		name       string
		path       string
		want       string
		wantErr    error
		wantEscape bool
	}{
		{name: "top level file", path: "/index.html", want: "<h1>home</h1>"},
		{name: "nested file", path: "/docs/a.html", want: "<p>a</p>"},
		{name: "utf8 content", path: "/utf8.html", want: "héllo ✓"},
		{name: "dot segment inside root", path: "/docs/../index.html", want: "<h1>home</h1>"},
		{name: "missing", path: "/nope.html", wantErr: ErrNotFound},
		{name: "directory", path: "/docs", wantErr: ErrNotFound},
		{name: "directory with slash", path: "/docs/", wantErr: ErrNotFound},
		{name: "bare root", path: "/", wantErr: ErrNotFound},
		{name: "empty", path: "", wantErr: ErrNotFound},
		{name: "parent traversal", path: "/../" + filepath.Base(outside), wantErr: ErrOutsideRoot, wantEscape: true},
		{name: "nested traversal", path: "/docs/../../etc/passwd", wantErr: ErrOutsideRoot, wantEscape: true},
		{name: "query kept verbatim", path: "/index.html?x=1", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := rfs.ReadFile(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantEscape, errors.Is(err, ErrOutsideRoot))
				assert.Nil(t, content)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestRootFSSymlinkEscape(t *testing.T) {
	dir := newDocumentRoot(t)
	target := filepath.Join(t.TempDir(), "secret.html")
	require.NoError(t, os.WriteFile(target, []byte("secret"), 0644))
	if err := os.Symlink(target, filepath.Join(dir, "link.html")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	rfs, err := OpenRoot(dir)
	require.NoError(t, err)
	defer rfs.Close()

	content, err := rfs.ReadFile("/link.html")
	assert.Error(t, err)
	assert.Nil(t, content)
}

func TestOpenRootMissingDir(t *testing.T) {
	rfs, err := OpenRoot(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.Nil(t, rfs)
}

func TestFilesHandleWithRootFS(t *testing.T) {
	rfs, err := OpenRoot(newDocumentRoot(t))
	require.NoError(t, err)
	defer rfs.Close()

	h := NewFiles(rfs, zap.NewNop())

	resp := h.Handle(mustParse(t, "GET / HTTP/1.1\r\n"))
	assert.Equal(t, header.StatusOK, resp.Status)
	assert.Equal(t, "<h1>home</h1>", string(resp.Body))

	resp = h.Handle(mustParse(t, "GET /nope.html HTTP/1.1\r\n"))
	assert.Equal(t, header.StatusNotFound, resp.Status)
	assert.Equal(t, "<h1>404 Not Found</h1>", string(resp.Body))
}
