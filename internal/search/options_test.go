package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogfetch/models"
)

func TestFilterBreedOptions(t *testing.T) {
	options := []models.BreedOption{
		{Name: "Airedale Terrier"},
		{Name: "Border Terrier", Selected: true},
		{Name: "Boxer"},
		{Name: "american Staffordshire Terrier"},
	}

	available, selected := FilterBreedOptions(options, "terrier")

	require.Len(t, available, 2)
	assert.Equal(t, "Airedale Terrier", available[0].Name)
	assert.Equal(t, "american Staffordshire Terrier", available[1].Name)

	require.Len(t, selected, 1)
	assert.Equal(t, "Border Terrier", selected[0].Name)
}

func TestFilterBreedOptions_EmptySearchKeepsAll(t *testing.T) {
	options := []models.BreedOption{{Name: "Pug"}, {Name: "Boxer"}}
	available, selected := FilterBreedOptions(options, "")
	assert.Len(t, available, 2)
	assert.Empty(t, selected)
}

func TestFilterStateOptions_MatchesNameOrCode(t *testing.T) {
	options := models.StateOptions()

	available, _ := FilterStateOptions(options, "wa")
	names := make([]string, 0, len(available))
	for _, s := range available {
		names = append(names, s.Name)
	}
	// "wa" hits Washington by name and by code, Delaware and Hawaii by name.
	assert.Contains(t, names, "Washington")
	assert.Contains(t, names, "Delaware")
	assert.Contains(t, names, "Hawaii")
}

func TestFilterStateOptions_SplitsSelected(t *testing.T) {
	options := models.StateOptions()
	for i := range options {
		if options[i].Code == "TX" {
			options[i].Selected = true
		}
	}

	available, selected := FilterStateOptions(options, "texas")
	assert.Empty(t, available)
	require.Len(t, selected, 1)
	assert.Equal(t, "TX", selected[0].Code)
}
