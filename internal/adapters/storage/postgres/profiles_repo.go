package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"animal-id-card/internal/domain/profiles"
)

const profileColumns = `id, image, name, lastname, description, birthday, gender, birthmark, animal_type, address_id, owner_id`

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profile ORDER BY id ASC`)
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
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profile WHERE id = $1`, id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}
	return p, nil
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO profile (
			image, name, lastname, description,
			birthday, gender, birthmark, animal_type,
			address_id, owner_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		toNullString(p.Image),
		p.Name,
		toNullString(p.Lastname),
		toNullString(p.Description),
		p.Birthday,
		string(p.Gender),
		p.Birthmark,
		string(p.AnimalType),
		toNullInt(p.AddressID),
		toNullInt(p.OwnerID),
	).Scan(&id)
	return id, err
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET
			image = $2,
			name = $3,
			lastname = $4,
			description = $5,
			birthday = $6,
			gender = $7,
			birthmark = $8,
			animal_type = $9,
			address_id = $10,
			owner_id = $11
		WHERE id = $1
	`,
		p.ID,
		toNullString(p.Image),
		p.Name,
		toNullString(p.Lastname),
		toNullString(p.Description),
		p.Birthday,
		string(p.Gender),
		p.Birthmark,
		string(p.AnimalType),
		toNullInt(p.AddressID),
		toNullInt(p.OwnerID),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
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

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (profiles.Profile, error) {
	var p profiles.Profile
	var image, lastname, description sql.NullString
	var gender, animalType string
	var birthday time.Time
	var addressID, ownerID sql.NullInt64
	if err := s.Scan(
		&p.ID,
		&image,
		&p.Name,
		&lastname,
		&description,
		&birthday,
		&gender,
		&p.Birthmark,
		&animalType,
		&addressID,
		&ownerID,
	); err != nil {
		return profiles.Profile{}, err
	}

	// birthday es DATE: pgx lo mapea a medianoche UTC
	p.Birthday = birthday.UTC()
	p.Image = fromNullString(image)
	p.Lastname = fromNullString(lastname)
	p.Description = fromNullString(description)
	p.Gender = profiles.Gender(gender)
	p.AnimalType = profiles.AnimalType(animalType)
	p.AddressID = fromNullInt(addressID)
	p.OwnerID = fromNullInt(ownerID)
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
