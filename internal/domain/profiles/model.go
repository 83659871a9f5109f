package profiles

import "time"

// Gender define el sexo del animal.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// AnimalType define el grupo del animal.
type AnimalType string

const (
	AnimalMammals     AnimalType = "Mammals"
	AnimalBirds       AnimalType = "Birds"
	AnimalReptiles    AnimalType = "Reptiles"
	AnimalAmphibians  AnimalType = "Amphibians"
	AnimalFish        AnimalType = "Fish"
	AnimalInsects     AnimalType = "Insects"
	AnimalArachnids   AnimalType = "Arachnids"
	AnimalMollusks    AnimalType = "Mollusks"
	AnimalCrustaceans AnimalType = "Crustaceans"
)

// AnimalTypes devuelve el conjunto enumerado en el orden que muestra la UI.
func AnimalTypes() []AnimalType {
	return []AnimalType{
		AnimalMammals,
		AnimalBirds,
		AnimalReptiles,
		AnimalAmphibians,
		AnimalFish,
		AnimalInsects,
		AnimalArachnids,
		AnimalMollusks,
		AnimalCrustaceans,
	}
}

// DateLayout es el formato de birthday en el wire y en sqlite.
const DateLayout = "2006-01-02"

// Profile representa la ficha de un animal.
type Profile struct {
	ID int64

	Image       *string // nombre del archivo guardado, nil si no hay
	Name        string
	Lastname    *string
	Description *string

	Birthday   time.Time
	Gender     Gender
	Birthmark  int
	AnimalType AnimalType

	AddressID *int64
	OwnerID   *int64
}
