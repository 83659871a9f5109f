package sqlite

import (
	"context"
	"database/sql"

	"animal-id-card/internal/domain/reference"
)

type ReferenceRepo struct {
	db *sql.DB
}

var _ reference.Repository = (*ReferenceRepo)(nil)

func NewReferenceRepo(db *sql.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

func (r *ReferenceRepo) ListOwners(ctx context.Context) ([]reference.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, firstname, lastname, phone, email FROM owner ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reference.Owner, 0)
	for rows.Next() {
		var o reference.Owner
		var phone, email sql.NullString
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &phone, &email); err != nil {
			return nil, err
		}
		o.Phone, o.Email = nullableString(phone), nullableString(email)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ReferenceRepo) ListAddresses(ctx context.Context) ([]reference.Address, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, address_line, subdistrict, district, province, postcode FROM address ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reference.Address, 0)
	for rows.Next() {
		var a reference.Address
		var sub, district, province, postcode sql.NullString
		if err := rows.Scan(&a.ID, &a.Line, &sub, &district, &province, &postcode); err != nil {
			return nil, err
		}
		a.SubDistrict = nullableString(sub)
		a.District = nullableString(district)
		a.Province = nullableString(province)
		a.Postcode = nullableString(postcode)
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ reference.Writer = (*ReferenceRepo)(nil)

func (r *ReferenceRepo) UpsertOwner(ctx context.Context, o reference.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owner (id, firstname, lastname, phone, email)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			firstname = excluded.firstname,
			lastname  = excluded.lastname,
			phone     = excluded.phone,
			email     = excluded.email`,
		o.ID, o.FirstName, o.LastName, o.Phone, o.Email,
	)
	return err
}

func (r *ReferenceRepo) UpsertAddress(ctx context.Context, a reference.Address) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO address (id, address_line, subdistrict, district, province, postcode)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			address_line = excluded.address_line,
			subdistrict  = excluded.subdistrict,
			district     = excluded.district,
			province     = excluded.province,
			postcode     = excluded.postcode`,
		a.ID, a.Line, a.SubDistrict, a.District, a.Province, a.Postcode,
	)
	return err
}
