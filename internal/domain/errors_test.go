package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeasonValid(t *testing.T) {
	for _, s := range []Season{SeasonSummer, SeasonWinter, SeasonSpring, SeasonAutumn, SeasonAll} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Season("monsoon").Valid())
	assert.False(t, Season("").Valid())
}

func TestNewWardrobeItemValidate(t *testing.T) {
	ok := NewWardrobeItem{Name: "Rain jacket", Category: "Jacket", Season: SeasonAutumn}
	assert.NoError(t, ok.Validate())

	missingName := ok
	missingName.Name = "  "
	err := missingName.Validate()
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "name")

	badSeason := ok
	badSeason.Season = "monsoon"
	assert.ErrorIs(t, badSeason.Validate(), ErrInvalidInput)
}

func TestProfileUpdateApply(t *testing.T) {
	bio := "Layering enthusiast"
	premium := true
	user := User{ID: "1", Username: "jane", DisplayName: "jane", Bio: "old"}

	got := ProfileUpdate{Bio: &bio, IsPremium: &premium}.Apply(user)

	assert.Equal(t, "Layering enthusiast", got.Bio)
	assert.True(t, got.IsPremium)
	assert.Equal(t, "jane", got.DisplayName)
	assert.Equal(t, "old", user.Bio, "original must not be mutated")
}
