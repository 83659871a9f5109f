package web

import (
	"strconv"
	"strings"

	"animal-id-card/internal/domain/drafts"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

const (
	FirstStep = 1
	LastStep  = 4
)

// Fields son los valores del formulario tal como vienen del navegador.
// Image es la imagen guardada actualmente (solo edición, solo para mostrar).
type Fields struct {
	Name          string
	Lastname      string
	Description   string
	Birthday      string
	Gender        string
	Birthmark     string
	AnimalType    string
	AddressID     string
	OwnerID       string
	UploadedImage string
	Image         string
}

// FormValues arma los campos que se mandan a /api/addProfile y /api/editProfile.
func (f Fields) FormValues() map[string]string {
	v := map[string]string{
		"name":        f.Name,
		"lastname":    f.Lastname,
		"description": f.Description,
		"birthday":    f.Birthday,
		"gender":      f.Gender,
		"birthmark":   f.Birthmark,
		"animal_type": f.AnimalType,
		"address_id":  f.AddressID,
		"owner_id":    f.OwnerID,
	}
	if f.UploadedImage != "" {
		v["uploadedImage"] = f.UploadedImage
	}
	return v
}

// Draft no incluye la imagen.
func (f Fields) Draft() drafts.Draft {
	return drafts.Draft{
		Name:        f.Name,
		Lastname:    f.Lastname,
		Description: f.Description,
		Birthday:    f.Birthday,
		Gender:      f.Gender,
		Birthmark:   f.Birthmark,
		AnimalType:  f.AnimalType,
		AddressID:   f.AddressID,
		OwnerID:     f.OwnerID,
	}
}

func FieldsFromDraft(d drafts.Draft) Fields {
	return Fields{
		Name:        d.Name,
		Lastname:    d.Lastname,
		Description: d.Description,
		Birthday:    d.Birthday,
		Gender:      d.Gender,
		Birthmark:   d.Birthmark,
		AnimalType:  d.AnimalType,
		AddressID:   d.AddressID,
		OwnerID:     d.OwnerID,
	}
}

func FieldsFromProfile(p Profile) Fields {
	f := Fields{
		Name:       p.Name,
		Birthday:   p.Birthday,
		Gender:     p.Gender,
		Birthmark:  strconv.Itoa(p.Birthmark),
		AnimalType: p.AnimalType,
	}
	if p.Lastname != nil {
		f.Lastname = *p.Lastname
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.AddressID != nil {
		f.AddressID = strconv.FormatInt(*p.AddressID, 10)
	}
	if p.OwnerID != nil {
		f.OwnerID = strconv.FormatInt(*p.OwnerID, 10)
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
	return f
}

// Wizard es el formulario de 4 pasos: 1 datos básicos, 2 nacimiento/género/marcas,
// 3 tipo + imagen, 4 resumen. Se avanza y retrocede de a un paso.
type Wizard struct {
	Mode   Mode
	Step   int
	Fields Fields
}

func NewWizard(mode Mode, f Fields) *Wizard {
	return &Wizard{Mode: mode, Step: FirstStep, Fields: f}
}

// Next avanza un paso. En edición valida antes los obligatorios del paso actual y,
// si falta alguno, no se mueve y devuelve campo -> mensaje.
func (w *Wizard) Next() map[string]string {
	if w.Mode == ModeEdit {
		if errs := w.stepErrors(); len(errs) > 0 {
			return errs
		}
	}
	if w.Step < LastStep {
		w.Step++
	}
	return nil
}

func (w *Wizard) Back() {
	if w.Step > FirstStep {
		w.Step--
	}
}

// ValidateSubmit corre antes de mandar el formulario a la API.
func (w *Wizard) ValidateSubmit() map[string]string {
	if w.Mode == ModeEdit {
		return w.stepErrors()
	}

	b := strings.TrimSpace(w.Fields.Birthmark)
	if b == "" {
		return nil
	}
	if n, err := strconv.Atoi(b); err != nil || n < 0 {
		return map[string]string{"birthmark": "Birthmark must be a positive number"}
	}
	return nil
}

func (w *Wizard) stepErrors() map[string]string {
	errs := map[string]string{}
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	switch w.Step {
	case 1:
		if blank(w.Fields.Name) {
			errs["name"] = "Name is required"
		}
	case 2:
		if blank(w.Fields.Birthday) {
			errs["birthday"] = "Birthday is required"
		}
		if blank(w.Fields.Gender) {
			errs["gender"] = "Gender is required"
		}
	case 3:
		if blank(w.Fields.AnimalType) {
			errs["animal_type"] = "Animal type is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
