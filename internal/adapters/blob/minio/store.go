// Package minio guarda las imágenes en un bucket S3-compatible.
package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"animal-id-card/internal/domain/images"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Store struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// New crea el cliente y el bucket si todavía no existe.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("minio store: empty bucket")
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio store: new client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio store: check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio store: create bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: opts.Bucket, now: time.Now}, nil
}

func (s *Store) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	if size <= 0 {
		size = -1
	}

	// S3 pisa objetos existentes: buscar un nombre libre avanzando de a 1ms.
	t := s.now()
	var name string
	for {
		name = images.StoredName(t, originalName)
		ok, err := s.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		t = t.Add(time.Millisecond)
	}

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio store: put object: %w", err)
	}
	return name, nil
}

func (s *Store) Open(ctx context.Context, name string) (io.ReadSeekCloser, images.Info, error) {
	if !images.ValidName(name) {
		return nil, images.Info{}, images.ErrNotFound
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, images.Info{}, fmt.Errorf("minio store: get object: %w", err)
	}

	// GetObject es lazy; Stat es la primera llamada que pega al servidor.
	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, images.Info{}, images.ErrNotFound
		}
		return nil, images.Info{}, fmt.Errorf("minio store: stat object: %w", err)
	}

	return obj, toInfo(st), nil
}

func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	if !images.ValidName(name) {
		return false, nil
	}
	_, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("minio store: stat object: %w", err)
	}
	return true, nil
}

func (s *Store) List(ctx context.Context) ([]images.Info, error) {
	out := make([]images.Info, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("minio store: list objects: %w", obj.Err)
		}
		if !images.ValidName(obj.Key) {
			continue
		}
		out = append(out, toInfo(obj))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Remove(ctx context.Context, name string) error {
	ok, err := s.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return images.ErrNotFound
	}
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio store: remove object: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func toInfo(o minio.ObjectInfo) images.Info {
	return images.Info{
		Name:        o.Key,
		Size:        o.Size,
		ModTime:     o.LastModified,
		ContentType: o.ContentType,
	}
}
