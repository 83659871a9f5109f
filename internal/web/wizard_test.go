package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWizard_EditCannotLeaveStepOneWithoutName(t *testing.T) {
	wz := NewWizard(ModeEdit, Fields{Name: "   "})

	errs := wz.Next()
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, 1, wz.Step)

	wz.Fields.Name = "Rex"
	assert.Nil(t, wz.Next())
	assert.Equal(t, 2, wz.Step)
}

func TestWizard_EditStepTwoAndThree(t *testing.T) {
	wz := NewWizard(ModeEdit, Fields{Name: "Rex"})
	wz.Step = 2

	errs := wz.Next()
	assert.Len(t, errs, 2)
	assert.Equal(t, "Birthday is required", errs["birthday"])
	assert.Equal(t, "Gender is required", errs["gender"])

	wz.Step = 3
	errs = wz.Next()
	assert.Equal(t, "Animal type is required", errs["animal_type"])
	assert.Equal(t, 3, wz.Step)
}

func TestWizard_CreateNeverBlocksAndStaysInRange(t *testing.T) {
	wz := NewWizard(ModeCreate, Fields{})

	for i := 0; i < 6; i++ {
		assert.Nil(t, wz.Next())
	}
	assert.Equal(t, LastStep, wz.Step)

	for i := 0; i < 6; i++ {
		wz.Back()
	}
	assert.Equal(t, FirstStep, wz.Step)
}

func TestWizard_ValidateSubmit(t *testing.T) {
	wz := NewWizard(ModeCreate, Fields{Birthmark: "-1"})
	assert.Equal(t, "Birthmark must be a positive number", wz.ValidateSubmit()["birthmark"])

	wz.Fields.Birthmark = "0"
	assert.Nil(t, wz.ValidateSubmit())

	// en edición revalida el paso actual
	ed := NewWizard(ModeEdit, Fields{})
	assert.Contains(t, ed.ValidateSubmit(), "name")
	ed.Step = LastStep
	assert.Nil(t, ed.ValidateSubmit())
}

func TestFields_DraftExcludesImage(t *testing.T) {
	f := Fields{Name: "Mia", Birthmark: "2", UploadedImage: "1mia.png", Image: "0old.png"}

	back := FieldsFromDraft(f.Draft())
	assert.Equal(t, "Mia", back.Name)
	assert.Equal(t, "2", back.Birthmark)
	assert.Empty(t, back.UploadedImage)
	assert.Empty(t, back.Image)
}

func TestFields_FormValues(t *testing.T) {
	v := Fields{Name: "Rex"}.FormValues()
	assert.Equal(t, "Rex", v["name"])
	_, ok := v["uploadedImage"]
	assert.False(t, ok)

	v = Fields{UploadedImage: "1rex.png"}.FormValues()
	assert.Equal(t, "1rex.png", v["uploadedImage"])
}
