package service

import (
	"context"
	"fmt"
	"time"

	"dogfetch/internal/adapter"
	"dogfetch/internal/logger"
	"dogfetch/internal/store"
	"dogfetch/models"
)

type clientAuthService struct {
	localStore store.LocalStorage
	catalog    adapter.CatalogAdapter
	sessionTTL time.Duration
	log        *logger.Logger
}

// NewClientAuthService builds the session service.
func NewClientAuthService(localStore store.LocalStorage, catalog adapter.CatalogAdapter, sessionTTL time.Duration, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		catalog:    catalog,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	if err := a.catalog.Login(ctx, user); err != nil {
		return fmt.Errorf("catalog login: %w", err)
	}

	if err := a.localStore.Set(store.IsLoggedInKey, true, a.sessionTTL); err != nil {
		// The server session is live even if the flag write failed; the
		// client just loses the welcome-back shortcut.
		a.log.Warn().Err(err).Msg("persist login flag")
	}

	a.log.Info().Str("email", user.Email).Msg("logged in")
	return nil
}

func (a *clientAuthService) SessionActive() bool {
	var loggedIn bool
	ok, err := a.localStore.Get(store.IsLoggedInKey, &loggedIn)
	if err != nil {
		a.log.Warn().Err(err).Msg("read login flag")
		return false
	}
	return ok && loggedIn
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.localStore.Remove(store.IsLoggedInKey); err != nil {
		a.log.Warn().Err(err).Msg("clear login flag")
	}

	if err := a.catalog.Logout(ctx); err != nil {
		return fmt.Errorf("catalog logout: %w", err)
	}
	return nil
}
