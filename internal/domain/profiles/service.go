package profiles

import (
	"context"
	"fmt"
	"time"

	"animal-id-card/internal/domain/images"
)

type Service struct {
	repo   Repository
	images images.Store
	now    func() time.Time
	strict bool
}

type Option func(*Service)

// WithStrictEnums activa la validación server-side de gender, animal_type y birthmark >= 0.
func WithStrictEnums(on bool) Option {
	return func(s *Service) { s.strict = on }
}

func NewService(repo Repository, store images.Store, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		images: store,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Validate corre las mismas reglas que Create/Update sin tocar la base.
func (s *Service) Validate(in Input) (Profile, error) {
	return in.toProfile(s.strict)
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input, img *images.Upload) (Profile, error) {
	p, err := in.toProfile(s.strict)
	if err != nil {
		return Profile{}, err
	}

	p.Image, err = s.resolveImage(ctx, in.trimmed().UploadedImage, img, nil)
	if err != nil {
		return Profile{}, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	p.ID = id
	return p, nil
}

// Update reemplaza todos los campos. Sin archivo nuevo se conserva la imagen que
// ya está guardada en la base (no la que diga el cliente).
func (s *Service) Update(ctx context.Context, id int64, in Input, img *images.Upload) (Profile, error) {
	p, err := in.toProfile(s.strict)
	if err != nil {
		return Profile{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	p.ID = id
	p.Image, err = s.resolveImage(ctx, in.trimmed().UploadedImage, img, current.Image)
	if err != nil {
		return Profile{}, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// resolveImage: archivo nuevo > uploadedImage existente > fallback.
func (s *Service) resolveImage(ctx context.Context, uploaded string, img *images.Upload, fallback *string) (*string, error) {
	if img != nil {
		if s.images == nil {
			return nil, fmt.Errorf("save image: no image store configured")
		}
		name, err := s.images.Save(ctx, img.Filename, img.Body, img.Size, img.ContentType)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		return &name, nil
	}

	if uploaded != "" {
		if s.images == nil || !images.ValidName(uploaded) {
			return nil, images.ErrUnknownUpload
		}
		ok, err := s.images.Exists(ctx, uploaded)
		if err != nil {
			return nil, fmt.Errorf("check uploaded image: %w", err)
		}
		if !ok {
			return nil, images.ErrUnknownUpload
		}
		return &uploaded, nil
	}

	return fallback, nil
}
