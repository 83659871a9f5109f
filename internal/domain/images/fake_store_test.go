package images

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"
)

type nopSeekCloser struct{ *bytes.Reader }

func (nopSeekCloser) Close() error { return nil }

// fakeStore guarda en memoria; ModTime lo fija el test.
type fakeStore struct {
	mu    sync.Mutex
	now   func() time.Time
	files map[string][]byte
	times map[string]time.Time
}

func newFakeStore(now func() time.Time) *fakeStore {
	return &fakeStore{now: now, files: map[string][]byte{}, times: map[string]time.Time{}}
}

func (s *fakeStore) put(name string, modTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = []byte(name)
	s.times[name] = modTime
}

func (s *fakeStore) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := StoredName(s.now(), originalName)
	s.files[name] = b
	s.times[name] = s.now()
	return name, nil
}

func (s *fakeStore) Open(ctx context.Context, name string) (io.ReadSeekCloser, Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	if !ok {
		return nil, Info{}, ErrNotFound
	}
	return nopSeekCloser{bytes.NewReader(b)}, Info{Name: name, Size: int64(len(b)), ModTime: s.times[name]}, nil
}

func (s *fakeStore) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[name]
	return ok, nil
}

func (s *fakeStore) List(ctx context.Context) ([]Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Info, 0, len(s.files))
	for n, b := range s.files {
		out = append(out, Info{Name: n, Size: int64(len(b)), ModTime: s.times[n]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[name]; !ok {
		return ErrNotFound
	}
	delete(s.files, name)
	delete(s.times, name)
	return nil
}

type staticRefs []string

func (r staticRefs) ListImages(ctx context.Context) ([]string, error) { return r, nil }
