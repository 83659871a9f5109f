package memory

import (
	"time"

	"animal-id-card/internal/domain/profiles"
)

func newProfile(name string) profiles.Profile {
	return profiles.Profile{
		Name:       name,
		Birthday:   time.Date(2022, 2, 2, 0, 0, 0, 0, time.UTC),
		Gender:     profiles.GenderMale,
		Birthmark:  1,
		AnimalType: profiles.AnimalBirds,
	}
}
