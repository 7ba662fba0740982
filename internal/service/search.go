package service

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"dogfetch/internal/adapter"
	"dogfetch/internal/logger"
	"dogfetch/models"
)

// dogCacheSize bounds the in-process dog record cache. Records are immutable
// on the catalog side, so cached entries never need invalidation within a
// session.
const dogCacheSize = 512

// SearchPage is one rendered page of search results.
type SearchPage struct {
	Dogs    []models.Dog
	Summary models.SearchResultsSummary
}

type clientSearchService struct {
	catalog adapter.CatalogAdapter
	cache   *lru.Cache[string, models.Dog]
	log     *logger.Logger

	gen atomic.Uint64
}

// NewClientSearchService builds the search service with its record cache.
func NewClientSearchService(catalog adapter.CatalogAdapter, log *logger.Logger) (ClientSearchService, error) {
	cache, err := lru.New[string, models.Dog](dogCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create dog cache: %w", err)
	}
	return &clientSearchService{catalog: catalog, cache: cache, log: log}, nil
}

func (s *clientSearchService) Begin() uint64 {
	return s.gen.Add(1)
}

func (s *clientSearchService) Breeds(ctx context.Context) ([]string, error) {
	names, err := s.catalog.Breeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("breed list: %w", err)
	}
	return names, nil
}

func (s *clientSearchService) stale(gen uint64) bool {
	return s.gen.Load() != gen
}

func (s *clientSearchService) FetchPage(ctx context.Context, gen uint64, query models.DogSearchQuery) (SearchPage, error) {
	result, err := s.catalog.SearchDogs(ctx, query)
	if err != nil {
		return SearchPage{}, fmt.Errorf("dog search: %w", err)
	}
	if s.stale(gen) {
		return SearchPage{}, ErrStaleResponse
	}

	dogs, err := s.resolveDogs(ctx, result.ResultIDs)
	if err != nil {
		return SearchPage{}, err
	}
	if s.stale(gen) {
		return SearchPage{}, ErrStaleResponse
	}

	s.log.Debug().
		Int("total", result.Total).
		Int("page_ids", len(result.ResultIDs)).
		Msg("search page fetched")

	return SearchPage{
		Dogs:    dogs,
		Summary: models.SearchResultsSummary{Dogs: result.Total},
	}, nil
}

func (s *clientSearchService) ResolveLocations(ctx context.Context, gen uint64, query models.LocationSearchQuery) ([]string, int, error) {
	result, err := s.catalog.SearchLocations(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("location search: %w", err)
	}
	if s.stale(gen) {
		return nil, 0, ErrStaleResponse
	}

	zips := make([]string, 0, len(result.Results))
	for _, loc := range result.Results {
		zips = append(zips, loc.ZipCode)
	}
	return zips, result.Total, nil
}

// resolveDogs returns full records for ids in their original order, fetching
// only the ids missing from the cache.
func (s *clientSearchService) resolveDogs(ctx context.Context, ids []string) ([]models.Dog, error) {
	byID := make(map[string]models.Dog, len(ids))
	var missing []string
	for _, id := range ids {
		if dog, ok := s.cache.Get(id); ok {
			byID[id] = dog
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := s.catalog.Dogs(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("dog batch fetch: %w", err)
		}
		for _, dog := range fetched {
			byID[dog.ID] = dog
			s.cache.Add(dog.ID, dog)
		}
	}

	dogs := make([]models.Dog, 0, len(ids))
	for _, id := range ids {
		if dog, ok := byID[id]; ok {
			dogs = append(dogs, dog)
		}
	}
	return dogs, nil
}
