package handler

import (
	"basic_server/internal/http/header"
	"basic_server/types"
	"errors"

	"go.uber.org/zap"
)

type files struct {
	fs     Filesystem
	logger *zap.Logger
}

func NewFiles(fs Filesystem, logger *zap.Logger) Handler {
	return &files{
		fs:     fs,
		logger: logger,
	}
}

func (f *files) Handle(req header.RequestLine) *header.Response {
	if req.Method() != methodGET {
		return notFound()
	}

	content, err := f.fs.ReadFile(req.Path())
	if err != nil {
		if errors.Is(err, ErrOutsideRoot) {
			f.logger.Warn("Rejected path outside document root", zap.String("path", req.Path()))
		} else if !errors.Is(err, ErrNotFound) {
			f.logger.Debug("Failed to read file", zap.String("path", req.Path()), zap.Error(err))
		}
		return notFound()
	}

	return header.NewResponse(header.StatusOK, types.ContentTypeHTML, content)
}

func notFound() *header.Response {
	return header.NewResponse(header.StatusNotFound, types.ContentTypeHTML, []byte(fileNotFound))
}
