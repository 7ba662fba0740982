package service

import (
	"context"
	"fmt"
	"slices"

	"dogfetch/internal/adapter"
	"dogfetch/internal/logger"
	"dogfetch/internal/store"
	"dogfetch/models"
)

type clientFavoritesService struct {
	localStore store.LocalStorage
	catalog    adapter.CatalogAdapter
	log        *logger.Logger
}

// NewClientFavoritesService builds the favorites/match service.
func NewClientFavoritesService(localStore store.LocalStorage, catalog adapter.CatalogAdapter, log *logger.Logger) ClientFavoritesService {
	return &clientFavoritesService{localStore: localStore, catalog: catalog, log: log}
}

func (f *clientFavoritesService) Liked() []string {
	var liked []string
	ok, err := f.localStore.Get(store.LikedDogsKey, &liked)
	if err != nil {
		f.log.Warn().Err(err).Msg("read liked dogs")
		return nil
	}
	if !ok {
		return nil
	}
	return liked
}

func (f *clientFavoritesService) IsLiked(dogID string) bool {
	return slices.Contains(f.Liked(), dogID)
}

func (f *clientFavoritesService) ToggleLike(dogID string) ([]string, error) {
	liked := f.Liked()

	if i := slices.Index(liked, dogID); i >= 0 {
		liked = slices.Delete(liked, i, i+1)
	} else {
		liked = append(liked, dogID)
	}

	if err := f.localStore.Set(store.LikedDogsKey, liked, store.DefaultTTL); err != nil {
		return nil, fmt.Errorf("persist liked dogs: %w", err)
	}
	return liked, nil
}

func (f *clientFavoritesService) LikedDogs(ctx context.Context) ([]models.Dog, error) {
	liked := f.Liked()
	if len(liked) == 0 {
		return []models.Dog{}, nil
	}

	dogs, err := f.catalog.Dogs(ctx, liked)
	if err != nil {
		return nil, fmt.Errorf("resolve liked dogs: %w", err)
	}
	return dogs, nil
}

func (f *clientFavoritesService) RequestMatch(ctx context.Context) (models.Dog, error) {
	liked := f.Liked()
	if len(liked) == 0 {
		return models.Dog{}, ErrNoLikedDogs
	}

	matchID, err := f.catalog.Match(ctx, liked)
	if err != nil {
		return models.Dog{}, fmt.Errorf("match request: %w", err)
	}

	dogs, err := f.catalog.Dogs(ctx, []string{matchID})
	if err != nil {
		return models.Dog{}, fmt.Errorf("resolve match: %w", err)
	}
	if len(dogs) == 0 {
		return models.Dog{}, fmt.Errorf("%w: id %s", ErrMatchNotFound, matchID)
	}

	f.log.Info().Str("dog_id", matchID).Msg("match found")
	return dogs[0], nil
}

func (f *clientFavoritesService) FirstMatchVisit() bool {
	var visited bool
	ok, err := f.localStore.Get(store.MatchPageVisitedKey, &visited)
	if err != nil {
		f.log.Warn().Err(err).Msg("read match visit flag")
		return false
	}
	if ok && visited {
		return false
	}

	if err := f.localStore.Set(store.MatchPageVisitedKey, true, store.DefaultTTL); err != nil {
		f.log.Warn().Err(err).Msg("persist match visit flag")
	}
	return true
}
