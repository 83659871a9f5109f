// Package seed carga dueños y direcciones desde un archivo YAML.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"animal-id-card/internal/domain/reference"

	"gopkg.in/yaml.v3"
)

type ownerFixture struct {
	ID        int64   `yaml:"id"`
	FirstName string  `yaml:"firstname"`
	LastName  string  `yaml:"lastname"`
	Phone     *string `yaml:"phone"`
	Email     *string `yaml:"email"`
}

type addressFixture struct {
	ID          int64   `yaml:"id"`
	Line        string  `yaml:"address_line"`
	SubDistrict *string `yaml:"subdistrict"`
	District    *string `yaml:"district"`
	Province    *string `yaml:"province"`
	Postcode    *string `yaml:"postcode"`
}

type Fixtures struct {
	Owners    []ownerFixture   `yaml:"owners"`
	Addresses []addressFixture `yaml:"addresses"`
}

type Result struct {
	Owners    int
	Addresses int
}

func LoadFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	for i, o := range fx.Owners {
		if o.ID <= 0 || o.FirstName == "" || o.LastName == "" {
			return nil, fmt.Errorf("owner #%d: id, firstname and lastname are required", i+1)
		}
	}
	for i, a := range fx.Addresses {
		if a.ID <= 0 || a.Line == "" {
			return nil, fmt.Errorf("address #%d: id and address_line are required", i+1)
		}
	}
	return &fx, nil
}

// Apply hace upsert por id, así correrlo dos veces no duplica filas.
func Apply(ctx context.Context, w reference.Writer, fx *Fixtures) (Result, error) {
	var res Result

	for _, o := range fx.Owners {
		err := w.UpsertOwner(ctx, reference.Owner{
			ID:        o.ID,
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Phone:     o.Phone,
			Email:     o.Email,
		})
		if err != nil {
			return res, fmt.Errorf("upsert owner %d: %w", o.ID, err)
		}
		res.Owners++
	}

	for _, a := range fx.Addresses {
		err := w.UpsertAddress(ctx, reference.Address{
			ID:          a.ID,
			Line:        a.Line,
			SubDistrict: a.SubDistrict,
			District:    a.District,
			Province:    a.Province,
			Postcode:    a.Postcode,
		})
		if err != nil {
			return res, fmt.Errorf("upsert address %d: %w", a.ID, err)
		}
		res.Addresses++
	}

	return res, nil
}
