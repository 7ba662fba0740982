package search

import (
	"sort"
	"strings"

	"dogfetch/models"
)

// FilterBreedOptions narrows the breed options to those whose name contains
// searchValue (case-insensitive) and splits them into available and selected
// groups, each sorted alphabetically.
func FilterBreedOptions(options []models.BreedOption, searchValue string) (available, selected []models.BreedOption) {
	needle := strings.ToLower(searchValue)
	for _, opt := range options {
		if !strings.Contains(strings.ToLower(opt.Name), needle) {
			continue
		}
		if opt.Selected {
			selected = append(selected, opt)
		} else {
			available = append(available, opt)
		}
	}
	sortBreeds(available)
	sortBreeds(selected)
	return available, selected
}

// FilterStateOptions narrows the state options to those whose full name or
// two-letter code contains searchValue (case-insensitive) and splits them
// into available and selected groups, each sorted by name.
func FilterStateOptions(options []models.StateOption, searchValue string) (available, selected []models.StateOption) {
	needle := strings.ToLower(searchValue)
	for _, opt := range options {
		if !strings.Contains(strings.ToLower(opt.Name), needle) &&
			!strings.Contains(strings.ToLower(opt.Code), needle) {
			continue
		}
		if opt.Selected {
			selected = append(selected, opt)
		} else {
			available = append(available, opt)
		}
	}
	sortStates(available)
	sortStates(selected)
	return available, selected
}

func sortBreeds(opts []models.BreedOption) {
	sort.Slice(opts, func(i, j int) bool {
		return strings.ToLower(opts[i].Name) < strings.ToLower(opts[j].Name)
	})
}

func sortStates(opts []models.StateOption) {
	sort.Slice(opts, func(i, j int) bool {
		return strings.ToLower(opts[i].Name) < strings.ToLower(opts[j].Name)
	})
}
