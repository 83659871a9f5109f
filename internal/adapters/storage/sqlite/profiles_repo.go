package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"animal-id-card/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

var _ profiles.Repository = (*ProfilesRepo)(nil)

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

const selectProfile = `SELECT id, image, name, lastname, description, birthday, gender, birthmark, animal_type, address_id, owner_id FROM profile`

func (r *ProfilesRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, selectProfile+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profiles.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id int64) (profiles.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, selectProfile+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, err
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (image, name, lastname, description, birthday, gender, birthmark, animal_type, address_id, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Image,
		p.Name,
		p.Lastname,
		p.Description,
		p.Birthday.Format(profiles.DateLayout),
		string(p.Gender),
		p.Birthmark,
		string(p.AnimalType),
		p.AddressID,
		p.OwnerID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET image = ?, name = ?, lastname = ?, description = ?, birthday = ?, gender = ?, birthmark = ?,
		    animal_type = ?, address_id = ?, owner_id = ?
		WHERE id = ?
	`,
		p.Image,
		p.Name,
		p.Lastname,
		p.Description,
		p.Birthday.Format(profiles.DateLayout),
		string(p.Gender),
		p.Birthmark,
		string(p.AnimalType),
		p.AddressID,
		p.OwnerID,
		p.ID,
	)
	return affectedOrNotFound(res, err)
}

func (r *ProfilesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func (r *ProfilesRepo) ListImages(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT image FROM profile WHERE image IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func affectedOrNotFound(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(s rowScanner) (profiles.Profile, error) {
	var p profiles.Profile
	var image, lastname, description sql.NullString
	var birthday, gender, animalType string
	var addressID, ownerID sql.NullInt64

	if err := s.Scan(&p.ID, &image, &p.Name, &lastname, &description, &birthday, &gender, &p.Birthmark, &animalType, &addressID, &ownerID); err != nil {
		return profiles.Profile{}, err
	}

	bd, err := time.Parse(profiles.DateLayout, birthday)
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("profile %d: bad birthday %q: %w", p.ID, birthday, err)
	}

	p.Birthday = bd
	p.Image = nullableString(image)
	p.Lastname = nullableString(lastname)
	p.Description = nullableString(description)
	p.Gender = profiles.Gender(gender)
	p.AnimalType = profiles.AnimalType(animalType)
	p.AddressID = nullableInt(addressID)
	p.OwnerID = nullableInt(ownerID)
	return p, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullableInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}
