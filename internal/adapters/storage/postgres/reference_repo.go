package postgres

import (
	"context"
	"database/sql"

	"animal-id-card/internal/domain/reference"
)

type ReferenceRepo struct {
	db *sql.DB
}

func NewReferenceRepo(db *sql.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

func (r *ReferenceRepo) ListOwners(ctx context.Context) ([]reference.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, firstname, lastname, phone, email FROM owner ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reference.Owner, 0)
	for rows.Next() {
		var (
			o            reference.Owner
			phone, email sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &phone, &email); err != nil {
			return nil, err
		}
		o.Phone = fromNullString(phone)
		o.Email = fromNullString(email)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ReferenceRepo) ListAddresses(ctx context.Context) ([]reference.Address, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, address_line, subdistrict, district, province, postcode
		FROM address
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reference.Address, 0)
	for rows.Next() {
		var (
			a                                     reference.Address
			subdistrict, district, province, post sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Line, &subdistrict, &district, &province, &post); err != nil {
			return nil, err
		}
		a.SubDistrict = fromNullString(subdistrict)
		a.District = fromNullString(district)
		a.Province = fromNullString(province)
		a.Postcode = fromNullString(post)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ReferenceRepo) UpsertOwner(ctx context.Context, o reference.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owner (id, firstname, lastname, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			firstname = EXCLUDED.firstname,
			lastname  = EXCLUDED.lastname,
			phone     = EXCLUDED.phone,
			email     = EXCLUDED.email`,
		o.ID, o.FirstName, o.LastName, toNullString(o.Phone), toNullString(o.Email),
	)
	if err != nil {
		return err
	}
	return r.syncSequence(ctx, "owner")
}

func (r *ReferenceRepo) UpsertAddress(ctx context.Context, a reference.Address) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO address (id, address_line, subdistrict, district, province, postcode)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			address_line = EXCLUDED.address_line,
			subdistrict  = EXCLUDED.subdistrict,
			district     = EXCLUDED.district,
			province     = EXCLUDED.province,
			postcode     = EXCLUDED.postcode`,
		a.ID, a.Line, toNullString(a.SubDistrict), toNullString(a.District), toNullString(a.Province), toNullString(a.Postcode),
	)
	if err != nil {
		return err
	}
	return r.syncSequence(ctx, "address")
}

// syncSequence deja el BIGSERIAL por delante de los ids cargados a mano.
// table es siempre una constante de este archivo.
func (r *ReferenceRepo) syncSequence(ctx context.Context, table string) error {
	_, err := r.db.ExecContext(ctx,
		`SELECT setval(pg_get_serial_sequence('`+table+`', 'id'), (SELECT COALESCE(MAX(id), 1) FROM `+table+`))`)
	return err
}
