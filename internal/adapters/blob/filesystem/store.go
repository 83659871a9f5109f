package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"time"

	"animal-id-card/internal/domain/images"

	"github.com/google/uuid"
)

// Store guarda las imágenes como archivos planos en un directorio.
type Store struct {
	dir string
	now func() time.Time
}

func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("filesystem store: empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filesystem store: create dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	tmp, err := os.CreateTemp(s.dir, ".upload-"+uuid.NewString()+"-*")
	if err != nil {
		return "", fmt.Errorf("filesystem store: temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("filesystem store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("filesystem store: close: %w", err)
	}

	// Link falla si el nombre ya existe: dos uploads del mismo archivo en el mismo ms.
	t := s.now()
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := images.StoredName(t, originalName)
		err := os.Link(tmpPath, filepath.Join(s.dir, name))
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("filesystem store: link: %w", err)
		}
		t = t.Add(time.Millisecond)
	}
}

func (s *Store) Open(ctx context.Context, name string) (io.ReadSeekCloser, images.Info, error) {
	if !images.ValidName(name) {
		return nil, images.Info{}, images.ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, images.Info{}, images.ErrNotFound
		}
		return nil, images.Info{}, fmt.Errorf("filesystem store: open: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, images.Info{}, fmt.Errorf("filesystem store: stat: %w", err)
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, images.Info{}, images.ErrNotFound
	}

	return f, toInfo(st), nil
}

func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	if !images.ValidName(name) {
		return false, nil
	}
	st, err := os.Stat(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("filesystem store: stat: %w", err)
	}
	return !st.IsDir(), nil
}

func (s *Store) List(ctx context.Context) ([]images.Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("filesystem store: read dir: %w", err)
	}

	out := make([]images.Info, 0, len(entries))
	for _, e := range entries {
		// temporales (.upload-*) y ocultos no son imágenes
		if e.IsDir() || !images.ValidName(e.Name()) {
			continue
		}
		st, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("filesystem store: stat %s: %w", e.Name(), err)
		}
		out = append(out, toInfo(st))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Remove(ctx context.Context, name string) error {
	if !images.ValidName(name) {
		return images.ErrNotFound
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return images.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("filesystem store: remove: %w", err)
	}
	return nil
}

func toInfo(st fs.FileInfo) images.Info {
	return images.Info{
		Name:        st.Name(),
		Size:        st.Size(),
		ModTime:     st.ModTime(),
		ContentType: mime.TypeByExtension(filepath.Ext(st.Name())),
	}
}
