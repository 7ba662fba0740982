package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dogfetch/internal/adapter"
	"dogfetch/internal/pagination"
	"dogfetch/internal/search"
	"dogfetch/internal/service"
	"dogfetch/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenBrowse
	screenBreeds
	screenStates
	screenFilters
	screenFavorites
	screenMatch
)

var sortFields = []models.SortField{models.SortByBreed, models.SortByName, models.SortByAge}

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen

	reconciler *search.Reconciler
	pager      *pagination.Controller
	sortIdx    int
	sortDesc   bool

	welcome     welcomeModel
	browse      browseModel
	breedPicker pickerModel
	statePicker pickerModel
	filters     filtersModel
	favorites   favoritesModel
	match       matchModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, pageSize int) appModel {
	m := appModel{
		ctx:         ctx,
		services:    services,
		reconciler:  search.NewReconciler(),
		pager:       pagination.NewController(pageSize),
		welcome:     newWelcomeModel(),
		browse:      newBrowseModel(),
		breedPicker: newPickerModel(pickBreeds),
		statePicker: newPickerModel(pickStates),
		filters:     newFiltersModel(),
		favorites:   newFavoritesModel(),
		match:       newMatchModel(),
	}
	if services.AuthService.SessionActive() {
		m.currentScreen = screenBrowse
	}
	return m
}

func (m appModel) sortConfig() models.SortConfig {
	dir := models.SortAsc
	if m.sortDesc {
		dir = models.SortDesc
	}
	return models.SortConfig{Field: sortFields[m.sortIdx], Direction: dir}
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenBrowse {
		return tea.Batch(m.cmdLoadBreeds(), m.startSearch(), m.browse.spinner.Tick)
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case loginDoneMsg:
		m.welcome.submitting = false
		if msg.err != nil {
			m.welcome.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.currentScreen = screenBrowse
		m.browse.loading = true
		return m, tea.Batch(m.cmdLoadBreeds(), m.startSearch(), m.browse.spinner.Tick)
	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		return m.resetToWelcome(""), nil
	case breedsLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.reconciler.SetBreeds(msg.names)
		m.breedPicker.refresh(m.reconciler.Breeds(), nil)
		return m, nil
	case locationsResolvedMsg:
		if msg.err != nil {
			return m.searchFailed(msg.err)
		}
		m.reconciler.ApplyZipCodes(msg.zips, msg.total)
		m.browse.summary.ZipCodes = msg.total
		query := m.reconciler.BuildQuery(m.pager.Offset(), m.pager.PageSize(), sortPtr(m.sortConfig()))
		return m, m.cmdFetchPage(msg.gen, query)
	case pageLoadedMsg:
		if msg.err != nil {
			return m.searchFailed(msg.err)
		}
		m.browse.loading = false
		m.filters.submitting = false
		m.browse.dogs = msg.page.Dogs
		m.browse.summary.Dogs = msg.page.Summary.Dogs
		m.browse.summary.ZipCodes = m.reconciler.ZipTotal()
		m.pager.SetTotal(msg.page.Summary.Dogs)
		if m.browse.idx >= len(m.browse.dogs) {
			m.browse.idx = max(len(m.browse.dogs)-1, 0)
		}
		return m, nil
	case likedLoadedMsg:
		m.favorites.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.favorites.dogs = msg.dogs
		if m.favorites.idx >= len(m.favorites.dogs) {
			m.favorites.idx = max(len(m.favorites.dogs)-1, 0)
		}
		return m, nil
	case matchFoundMsg:
		m.match.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNoLikedDogs) {
				m.showErrorf("Like at least one dog before asking for a match.")
			} else {
				m.showErrorf(humanizeServerUnavailableError(msg.err))
			}
			if m.currentScreen == screenMatch {
				m.currentScreen = screenBrowse
			}
			return m, nil
		}
		m.match.dog = msg.dog
		m.match.firstVisit = msg.firstVisit
		m.currentScreen = screenMatch
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.setStatus("Copied!")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		if m.browse.loading {
			m.browse.spinner, cmd = m.browse.spinner.Update(msg)
			return m, cmd
		}
		if m.favorites.loading {
			m.favorites.spinner, cmd = m.favorites.spinner.Update(msg)
			return m, cmd
		}
		if m.match.loading {
			m.match.spinner, cmd = m.match.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenBreeds:
		return m.updateBreedPicker(msg)
	case screenStates:
		return m.updateStatePicker(msg)
	case screenFilters:
		return m.updateFilters(msg)
	case screenFavorites:
		return m.updateFavorites(msg)
	case screenMatch:
		return m.updateMatch(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenBrowse:
		body = m.browse.view(m.services.FavoritesService.IsLiked, m.pager, m.sortConfig(), m.filterLine())
	case screenBreeds:
		body = m.breedPicker.View()
	case screenStates:
		body = m.statePicker.View()
	case screenFilters:
		body = m.filters.view(m.filtersDirty(), m.reconciler.SelectedStateCodes())
	case screenFavorites:
		body = m.favorites.View()
	case screenMatch:
		body = m.match.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// filterLine summarizes the active criteria above the results list.
func (m appModel) filterLine() string {
	crit := m.reconciler.Criteria()
	var parts []string
	if n := len(crit.Breeds); n > 0 {
		parts = append(parts, plural(n, "breed"))
	}
	if n := len(crit.ZipCodes); n > 0 {
		parts = append(parts, fmt.Sprintf("%d of %s", n, plural(m.reconciler.ZipTotal(), "zip code")))
	}
	if crit.AgeMin != nil || crit.AgeMax != nil {
		parts = append(parts, "age filter")
	}
	if len(parts) == 0 {
		return ""
	}
	return "Filters: " + strings.Join(parts, " · ")
}

func (m appModel) filtersDirty() bool {
	form, errs := m.filters.rawForm().Parse()
	if len(errs) > 0 {
		return true
	}
	return m.reconciler.Dirty(form)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(s string) {
	m.browse.status = s
	m.favorites.status = s
	m.match.status = s
}

// searchFailed routes a failed search-cycle response. Stale responses are
// dropped silently: a newer cycle is already in flight.
func (m appModel) searchFailed(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrStaleResponse) {
		return m, nil
	}
	m.browse.loading = false
	m.filters.submitting = false
	if errors.Is(err, adapter.ErrUnauthorized) {
		return m.resetToWelcome("Session expired, please log in again"), nil
	}
	m.showErrorf(humanizeServerUnavailableError(err))
	return m, nil
}

// resetToWelcome drops all per-session UI state and returns to the login
// screen.
func (m appModel) resetToWelcome(notice string) appModel {
	fresh := newAppModel(m.ctx, m.services, m.pager.PageSize())
	fresh.currentScreen = screenWelcome
	fresh.welcome.errMsg = notice
	fresh.err = m.err
	return fresh
}

// startSearch opens a new search generation and fetches the current page.
func (m *appModel) startSearch() tea.Cmd {
	gen := m.services.SearchService.Begin()
	m.browse.loading = true
	query := m.reconciler.BuildQuery(m.pager.Offset(), m.pager.PageSize(), sortPtr(m.sortConfig()))
	return tea.Batch(m.cmdFetchPage(gen, query), m.browse.spinner.Tick)
}

// ── per-screen updates ───────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.welcome = focusNextWelcome(m.welcome, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.welcome = focusNextWelcome(m.welcome, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.welcome.inputs[0].Value())
			email := strings.TrimSpace(m.welcome.inputs[1].Value())
			if name == "" || email == "" {
				m.welcome.errMsg = "Name and email are required"
				return m, nil
			}
			if !strings.Contains(email, "@") {
				m.welcome.errMsg = "That does not look like an email address"
				return m, nil
			}
			m.welcome.errMsg = ""
			m.welcome.submitting = true
			return m, m.cmdLogin(models.User{Name: name, Email: email})
		}
	}

	var cmd tea.Cmd
	m.welcome.inputs[m.welcome.focus], cmd = m.welcome.inputs[m.welcome.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.browse.idx > 0 {
			m.browse.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.browse.idx < len(m.browse.dogs)-1 {
			m.browse.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.pager.Prev() {
			return m, m.startSearch()
		}
	case key.Matches(keyMsg, keys.right):
		if m.pager.Next() {
			return m, m.startSearch()
		}
	case key.Matches(keyMsg, keys.like):
		dog, ok := m.browse.current()
		if !ok {
			return m, nil
		}
		if _, err := m.services.FavoritesService.ToggleLike(dog.ID); err != nil {
			m.showErrorf(err.Error())
		}
	case key.Matches(keyMsg, keys.breeds):
		m.breedPicker.refresh(m.reconciler.Breeds(), nil)
		m.currentScreen = screenBreeds
	case key.Matches(keyMsg, keys.states):
		m.statePicker.refresh(nil, m.reconciler.States())
		m.currentScreen = screenStates
	case key.Matches(keyMsg, keys.filters):
		m.currentScreen = screenFilters
	case key.Matches(keyMsg, keys.sortField):
		m.sortIdx = (m.sortIdx + 1) % len(sortFields)
		m.pager.Reset()
		return m, m.startSearch()
	case key.Matches(keyMsg, keys.sortDir):
		m.sortDesc = !m.sortDesc
		m.pager.Reset()
		return m, m.startSearch()
	case key.Matches(keyMsg, keys.reset):
		m.reconciler.Reset()
		m.filters.clear()
		m.pager.Reset()
		return m, m.startSearch()
	case key.Matches(keyMsg, keys.favorites):
		m.favorites.loading = true
		m.currentScreen = screenFavorites
		return m, tea.Batch(m.cmdLoadLiked(), m.favorites.spinner.Tick)
	case key.Matches(keyMsg, keys.match):
		m.match.loading = true
		m.currentScreen = screenMatch
		return m, tea.Batch(m.cmdRequestMatch(), m.match.spinner.Tick)
	case key.Matches(keyMsg, keys.copyItem):
		if dog, ok := m.browse.current(); ok {
			return m, cmdCopyToClipboard(dogClipboardText(dog))
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateBreedPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenBrowse
			return m, nil
		case key.Matches(keyMsg, keys.up):
			if m.breedPicker.idx > 0 {
				m.breedPicker.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.breedPicker.idx < len(m.breedPicker.rows)-1 {
				m.breedPicker.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			row, ok := m.breedPicker.currentRow()
			if !ok {
				return m, nil
			}
			// Breed selection is live: every toggle re-runs the search.
			m.reconciler.ToggleBreed(row.value)
			m.breedPicker.refresh(m.reconciler.Breeds(), nil)
			m.pager.Reset()
			return m, m.startSearch()
		}
	}

	var cmd tea.Cmd
	m.breedPicker.search, cmd = m.breedPicker.search.Update(msg)
	m.breedPicker.refresh(m.reconciler.Breeds(), nil)
	return m, cmd
}

func (m appModel) updateStatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenFilters
			return m, nil
		case key.Matches(keyMsg, keys.up):
			if m.statePicker.idx > 0 {
				m.statePicker.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.statePicker.idx < len(m.statePicker.rows)-1 {
				m.statePicker.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			row, ok := m.statePicker.currentRow()
			if !ok {
				return m, nil
			}
			// State selection stays staged until the filter form is applied.
			m.reconciler.ToggleState(row.value)
			m.statePicker.refresh(nil, m.reconciler.States())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.statePicker.search, cmd = m.statePicker.search.Update(msg)
	m.statePicker.refresh(nil, m.reconciler.States())
	return m, cmd
}

func (m appModel) updateFilters(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenBrowse
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.filters.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.filters.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.filters.currentRow() < 0 {
				m.filters.cycleMode(-1)
				return m, nil
			}
		case key.Matches(keyMsg, keys.right):
			if m.filters.currentRow() < 0 {
				m.filters.cycleMode(1)
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			return m.submitFilters()
		}
	}

	if row := m.filters.currentRow(); row >= 0 {
		var cmd tea.Cmd
		m.filters.inputs[row], cmd = m.filters.inputs[row].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitFilters parses, validates, and commits the staged form, then kicks
// off the location resolution or, on an implicit reset, the dog search
// directly.
func (m appModel) submitFilters() (tea.Model, tea.Cmd) {
	form, parseErrs := m.filters.rawForm().Parse()
	if len(parseErrs) > 0 {
		m.filters.fieldErrs = parseErrs
		m.filters.status = ""
		return m, nil
	}

	if !m.reconciler.Dirty(form) {
		m.filters.status = "Nothing changed since the last apply."
		return m, nil
	}

	res, err := m.reconciler.Submit(form)
	if err != nil {
		var valErr *search.ValidationError
		if errors.As(err, &valErr) {
			m.filters.fieldErrs = valErr.Fields
			m.filters.status = ""
			return m, nil
		}
		m.showErrorf(err.Error())
		return m, nil
	}

	m.filters.fieldErrs = nil
	m.filters.status = ""
	m.filters.submitting = true
	m.pager.Reset()
	m.currentScreen = screenBrowse
	m.browse.loading = true

	if res.LocationQuery != nil {
		gen := m.services.SearchService.Begin()
		return m, tea.Batch(m.cmdResolveLocations(gen, *res.LocationQuery), m.browse.spinner.Tick)
	}
	return m, m.startSearch()
}

func (m appModel) updateFavorites(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenBrowse
	case key.Matches(keyMsg, keys.up):
		if m.favorites.idx > 0 {
			m.favorites.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.favorites.idx < len(m.favorites.dogs)-1 {
			m.favorites.idx++
		}
	case key.Matches(keyMsg, keys.like):
		dog, ok := m.favorites.current()
		if !ok {
			return m, nil
		}
		if _, err := m.services.FavoritesService.ToggleLike(dog.ID); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.favorites.loading = true
		return m, tea.Batch(m.cmdLoadLiked(), m.favorites.spinner.Tick)
	case key.Matches(keyMsg, keys.match):
		m.match.loading = true
		m.currentScreen = screenMatch
		return m, tea.Batch(m.cmdRequestMatch(), m.match.spinner.Tick)
	case key.Matches(keyMsg, keys.copyItem):
		if dog, ok := m.favorites.current(); ok {
			return m, cmdCopyToClipboard(dogClipboardText(dog))
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenBrowse
	case key.Matches(keyMsg, keys.copyItem):
		if m.match.dog.ID != "" {
			return m, cmdCopyToClipboard(dogClipboardText(m.match.dog))
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, user)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadBreeds() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService
	return func() tea.Msg {
		names, err := svc.Breeds(ctx)
		return breedsLoadedMsg{names: names, err: err}
	}
}

func (m appModel) cmdFetchPage(gen uint64, query models.DogSearchQuery) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService
	return func() tea.Msg {
		page, err := svc.FetchPage(ctx, gen, query)
		return pageLoadedMsg{gen: gen, page: page, err: err}
	}
}

func (m appModel) cmdResolveLocations(gen uint64, query models.LocationSearchQuery) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService
	return func() tea.Msg {
		zips, total, err := svc.ResolveLocations(ctx, gen, query)
		return locationsResolvedMsg{gen: gen, zips: zips, total: total, err: err}
	}
}

func (m appModel) cmdLoadLiked() tea.Cmd {
	ctx := m.ctx
	svc := m.services.FavoritesService
	return func() tea.Msg {
		dogs, err := svc.LikedDogs(ctx)
		return likedLoadedMsg{dogs: dogs, err: err}
	}
}

func (m appModel) cmdRequestMatch() tea.Cmd {
	ctx := m.ctx
	svc := m.services.FavoritesService
	return func() tea.Msg {
		dog, err := svc.RequestMatch(ctx)
		if err != nil {
			return matchFoundMsg{err: err}
		}
		return matchFoundMsg{dog: dog, firstVisit: svc.FirstMatchVisit()}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func dogClipboardText(dog models.Dog) string {
	return joinNonEmpty(" · ", dog.Name, dog.Breed, plural(dog.Age, "year"), "zip "+dog.ZipCode, dog.Img)
}

func sortPtr(cfg models.SortConfig) *models.SortConfig { return &cfg }

func focusNextWelcome(m welcomeModel, delta int) welcomeModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
