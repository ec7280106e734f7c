package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

func TestBuildMailto(t *testing.T) {
	uri := BuildMailto(models.Submission{
		Name:       "Ada Lovelace",
		Department: "Math",
		Position:   "Fellow",
		Country:    "UK",
		City:       "London",
		Status:     "Sponsor",
	})

	assert.Equal(t,
		"mailto:jordan.pennells@csiro.au"+
			"?subject=New%20Extrusion%20Symposium%20Stakeholder"+
			"&body=Name%3A%20Ada%20Lovelace"+
			"%0ADepartment%2FProgram%3A%20Math"+
			"%0APosition%3A%20Fellow"+
			"%0ACountry%3A%20UK"+
			"%0ACity%3A%20London"+
			"%0AStatus%3A%20Sponsor",
		uri)
}

func TestBuildMailtoEscapesReservedCharacters(t *testing.T) {
	uri := BuildMailto(models.Submission{
		Name:    "A&B",
		Country: "Trinidad & Tobago",
	})

	// Ampersands in values must not break the query string apart.
	assert.NotContains(t, strings.TrimPrefix(uri, "mailto:jordan.pennells@csiro.au?subject="), "&B")
	assert.Contains(t, uri, "A%26B")
	// Spaces are %20, never +.
	assert.NotContains(t, uri, "+")
}

func TestBuildMailtoEmptyFieldsKeepTheirLabels(t *testing.T) {
	uri := BuildMailto(models.Submission{Name: "Ada"})
	assert.Contains(t, uri, "City%3A%20%0A")
}
