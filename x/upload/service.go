// Package upload stores map images on the local filesystem
package upload

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/totegamma/chronicle/core"
)

var tracer = otel.Tracer("upload")

type service struct {
	config core.Config
}

// NewService creates a new upload service
func NewService(config core.Config) core.UploadService {
	return &service{config}
}

// Save validates the file as an image and stores it under the upload directory
func (s *service) Save(ctx context.Context, file *multipart.FileHeader) (core.Upload, error) {
	ctx, span := tracer.Start(ctx, "Upload.Service.Save")
	defer span.End()

	if file == nil {
		return core.Upload{}, core.NewErrorInvalidArgument("Image is required.")
	}
	if file.Size > s.config.MaxUploadSize {
		return core.Upload{}, core.NewErrorInvalidArgument(fmt.Sprintf("image exceeds %d bytes", s.config.MaxUploadSize))
	}

	span.SetAttributes(
		attribute.String("filename", file.Filename),
		attribute.Int64("size", file.Size),
	)

	src, err := file.Open()
	if err != nil {
		span.RecordError(err)
		return core.Upload{}, errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	config, format, err := image.DecodeConfig(src)
	if err != nil {
		return core.Upload{}, core.NewErrorInvalidArgument("image is not a supported image file")
	}
	_, err = src.Seek(0, io.SeekStart)
	if err != nil {
		span.RecordError(err)
		return core.Upload{}, errors.Wrap(err, "failed to rewind uploaded file")
	}

	err = os.MkdirAll(s.config.UploadDir, 0o755)
	if err != nil {
		span.RecordError(err)
		return core.Upload{}, errors.Wrap(err, "failed to prepare upload directory")
	}

	filename := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), xid.New().String(), sanitizeFilename(file.Filename))
	path := filepath.Join(s.config.UploadDir, filename)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		span.RecordError(err)
		return core.Upload{}, errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	if err != nil {
		span.RecordError(err)
		os.Remove(path)
		return core.Upload{}, errors.Wrap(err, "failed to write upload file")
	}

	slog.InfoContext(
		ctx, fmt.Sprintf("stored %s image %s (%dx%d)", format, filename, config.Width, config.Height),
		slog.String("module", "upload"),
	)

	return core.Upload{
		Filename: filename,
		URL:      s.config.UploadPrefix + "/" + filename,
		Path:     path,
		Width:    config.Width,
		Height:   config.Height,
	}, nil
}

// Remove deletes a stored file. Missing files are ignored
func (s *service) Remove(ctx context.Context, upload core.Upload) error {
	ctx, span := tracer.Start(ctx, "Upload.Service.Remove")
	defer span.End()

	if upload.Path == "" {
		return nil
	}

	err := os.Remove(upload.Path)
	if err != nil && !os.IsNotExist(err) {
		span.RecordError(err)
		return err
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	cleaned = strings.TrimLeft(cleaned, ".")
	if cleaned == "" {
		return "image"
	}
	return cleaned
}
