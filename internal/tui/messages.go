package tui

import (
	"dogfetch/internal/service"
	"dogfetch/models"
)

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type breedsLoadedMsg struct {
	names []string
	err   error
}

type locationsResolvedMsg struct {
	gen   uint64
	zips  []string
	total int
	err   error
}

type pageLoadedMsg struct {
	gen  uint64
	page service.SearchPage
	err  error
}

type likedLoadedMsg struct {
	dogs []models.Dog
	err  error
}

type matchFoundMsg struct {
	dog        models.Dog
	firstVisit bool
	err        error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
