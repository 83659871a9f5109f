package profiles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("profile not found")
)

// Input son los campos tal como llegan del formulario (multipart, urlencoded o JSON).
// Vacío significa "no enviado".
type Input struct {
	Name        string `json:"name"`
	Lastname    string `json:"lastname"`
	Description string `json:"description"`
	Birthday    string `json:"birthday"`
	Gender      string `json:"gender"`
	Birthmark   string `json:"birthmark"`
	AnimalType  string `json:"animal_type"`
	AddressID   string `json:"address_id"`
	OwnerID     string `json:"owner_id"`

	// UploadedImage referencia un archivo ya subido por /api/upload.
	UploadedImage string `json:"uploadedImage"`
}

func (in Input) trimmed() Input {
	return Input{
		Name:          strings.TrimSpace(in.Name),
		Lastname:      strings.TrimSpace(in.Lastname),
		Description:   strings.TrimSpace(in.Description),
		Birthday:      strings.TrimSpace(in.Birthday),
		Gender:        strings.TrimSpace(in.Gender),
		Birthmark:     strings.TrimSpace(in.Birthmark),
		AnimalType:    strings.TrimSpace(in.AnimalType),
		AddressID:     strings.TrimSpace(in.AddressID),
		OwnerID:       strings.TrimSpace(in.OwnerID),
		UploadedImage: strings.TrimSpace(in.UploadedImage),
	}
}

func (in Input) validatePresence() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.Birthday, validation.Required.Error("birthday is required")),
		validation.Field(&in.Gender, validation.Required.Error("gender is required")),
		validation.Field(&in.Birthmark, validation.Required.Error("birthmark is required")),
		validation.Field(&in.AnimalType, validation.Required.Error("animal_type is required")),
	)
}

func (in Input) validateFormat() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Birthday, validation.Date(DateLayout).Error("birthday must be YYYY-MM-DD")),
		validation.Field(&in.Birthmark, validation.By(intInRange(32, "birthmark must be a whole number"))),
		validation.Field(&in.AddressID, validation.By(intInRange(64, "address_id must be a number"))),
		validation.Field(&in.OwnerID, validation.By(intInRange(64, "owner_id must be a number"))),
	)
}

// intInRange rechaza lo que no entra en la columna (birthmark es INTEGER, los ids BIGINT).
func intInRange(bitSize int, msg string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := strconv.ParseInt(s, 10, bitSize); err != nil {
			return errors.New(msg)
		}
		return nil
	}
}

func (in Input) validateEnums() error {
	types := make([]any, 0, len(AnimalTypes()))
	for _, t := range AnimalTypes() {
		types = append(types, string(t))
	}
	return validation.ValidateStruct(&in,
		validation.Field(&in.Gender, validation.In(string(GenderMale), string(GenderFemale)).Error("gender must be Male or Female")),
		validation.Field(&in.AnimalType, validation.In(types...).Error("animal_type is not a known animal type")),
	)
}

// toProfile valida y convierte. strict agrega las reglas que en el sistema original
// solo aplicaba el cliente (enums y birthmark >= 0).
func (in Input) toProfile(strict bool) (Profile, error) {
	in = in.trimmed()

	if err := in.validatePresence(); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	if err := in.validateFormat(); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	birthday, err := time.Parse(DateLayout, in.Birthday)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: birthday: %v", ErrInvalidInput, err)
	}
	birthmark, err := strconv.ParseInt(in.Birthmark, 10, 32)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: birthmark: %v", ErrInvalidInput, err)
	}
	addressID, err := optionalID(in.AddressID)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: address_id: %v", ErrInvalidInput, err)
	}
	ownerID, err := optionalID(in.OwnerID)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: owner_id: %v", ErrInvalidInput, err)
	}

	if strict {
		if err := in.validateEnums(); err != nil {
			return Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := validation.Validate(int(birthmark), validation.Min(0).Error("birthmark must be a positive number")); err != nil {
			return Profile{}, fmt.Errorf("%w: birthmark: %v", ErrInvalidInput, err)
		}
	}

	return Profile{
		Name:        in.Name,
		Lastname:    optionalString(in.Lastname),
		Description: optionalString(in.Description),
		Birthday:    birthday,
		Gender:      Gender(in.Gender),
		Birthmark:   int(birthmark),
		AnimalType:  AnimalType(in.AnimalType),
		AddressID:   addressID,
		OwnerID:     ownerID,
	}, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
