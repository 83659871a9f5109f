package images

import (
	"context"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("image not found")
	ErrUnknownUpload = errors.New("unknown uploaded image")
)

// Info describe un archivo guardado.
type Info struct {
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Upload es un archivo recibido en un multipart, todavía sin guardar.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store guarda las imágenes subidas. Las implementaciones viven en adapters/blob.
type Store interface {
	// Save guarda el contenido bajo StoredName(now, originalName) y devuelve el nombre final.
	Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error)
	Open(ctx context.Context, name string) (io.ReadSeekCloser, Info, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]Info, error)
	Remove(ctx context.Context, name string) error
}

// CleanName deja solo el nombre base que mandó el cliente.
func CleanName(original string) string {
	original = strings.ReplaceAll(strings.TrimSpace(original), "\\", "/")
	base := path.Base(original)
	if base == "." || base == "/" || base == ".." {
		return "image"
	}
	return base
}

// StoredName arma <unixMillis><nombreOriginal>.
func StoredName(t time.Time, originalName string) string {
	return strconv.FormatInt(t.UnixMilli(), 10) + CleanName(originalName)
}

// ValidName rechaza nombres que podrían salir del directorio/bucket.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return false
	}
	return !strings.HasPrefix(name, ".")
}
