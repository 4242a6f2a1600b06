package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/linkreg/linkreg/internal/models"
	"github.com/linkreg/linkreg/internal/repository"
	"github.com/linkreg/linkreg/pkg/cache"
	"github.com/linkreg/linkreg/pkg/idgen"
	"github.com/linkreg/linkreg/pkg/metrics"
	"github.com/linkreg/linkreg/pkg/validate"
)

var (
	ErrInvalidURL          = errors.New("invalid URL")
	ErrInvalidCode         = errors.New("invalid code format (A-Za-z0-9, 6-8 chars)")
	ErrCodeConflict        = errors.New("code already exists")
	ErrNotFound            = errors.New("link not found")
	ErrGenerationExhausted = errors.New("failed to generate unique code after retries")
)

// maxCodeAttempts bounds the generate-and-insert retry loop. A policy
// constant, not derived from the code space: the cap trades a tiny success
// probability loss for bounded worst-case request latency.
const maxCodeAttempts = 5

// Store is the persistence contract the registry operates against. The
// production implementation is repository.LinkRepository; tests substitute
// an in-memory one.
type Store interface {
	Insert(ctx context.Context, code, url string) error
	FindByCode(ctx context.Context, code string) (*models.Link, error)
	List(ctx context.Context) ([]models.Link, error)
	Delete(ctx context.Context, code string) (bool, error)
	RecordClick(ctx context.Context, code string) (string, error)
}

// LinkService is the link registry and redirect resolver. It owns all
// writes to the store; uniqueness and click atomicity are delegated to the
// store's transactional guarantees, so the service holds no locks across
// store calls.
type LinkService struct {
	store     Store
	generator idgen.Generator
	l1        *cache.LRUCache   // in-process destination cache
	l2        *cache.RedisCache // shared destination cache, optional
}

func NewLinkService(store Store, gen idgen.Generator, l1 *cache.LRUCache, l2 *cache.RedisCache) *LinkService {
	return &LinkService{
		store:     store,
		generator: gen,
		l1:        l1,
		l2:        l2,
	}
}

// Create registers a new link. An explicit code is tried exactly once and a
// collision is terminal (the caller asked for that code); an absent code is
// generated and retried up to maxCodeAttempts times on collision. Any store
// failure other than a collision aborts immediately: a broken store will
// not be fixed by a different code.
func (s *LinkService) Create(ctx context.Context, req models.CreateLinkRequest) (*models.CreateLinkResponse, error) {
	if !validate.IsValidURL(req.URL) {
		return nil, ErrInvalidURL
	}

	if req.Code != "" {
		if !validate.IsValidCode(req.Code) {
			return nil, ErrInvalidCode
		}
		if err := s.store.Insert(ctx, req.Code, req.URL); err != nil {
			if errors.Is(err, repository.ErrDuplicateCode) {
				return nil, ErrCodeConflict
			}
			return nil, fmt.Errorf("insert link: %w", err)
		}
		return &models.CreateLinkResponse{Code: req.Code, URL: req.URL}, nil
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.generator.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}

		err = s.store.Insert(ctx, code, req.URL)
		if err == nil {
			return &models.CreateLinkResponse{Code: code, URL: req.URL}, nil
		}
		if errors.Is(err, repository.ErrDuplicateCode) {
			log.Printf("code collision on %s, retrying (attempt %d/%d)", code, attempt, maxCodeAttempts)
			continue
		}
		return nil, fmt.Errorf("insert link: %w", err)
	}

	return nil, ErrGenerationExhausted
}

// Get returns the full link record. Reads go straight to the store so the
// click counter is always fresh.
func (s *LinkService) Get(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find link: %w", err)
	}
	if link == nil {
		return nil, ErrNotFound
	}
	return link, nil
}

// List returns all links, newest first.
func (s *LinkService) List(ctx context.Context) ([]models.Link, error) {
	links, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

// Delete removes a link. Deleting an absent code reports ErrNotFound, so a
// second delete of the same code is a clean not-found, not a failure.
func (s *LinkService) Delete(ctx context.Context, code string) error {
	deleted, err := s.store.Delete(ctx, code)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate(ctx, code)
	return nil
}

// Resolve turns a code into its destination URL and records the click.
//
// On a cache miss the lookup and the increment are one atomic store
// statement, so there is no window for a concurrent delete to split them.
// On a cache hit the destination is already known; the click is then
// recorded best-effort. If the row vanished in the meantime the redirect
// is still served with the URL already read, and only the accounting is
// dropped. Callers always either get a destination or ErrNotFound.
func (s *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	if dest, ok := s.cachedDestination(ctx, code); ok {
		s.recordClickBestEffort(ctx, code)
		return dest, nil
	}

	dest, err := s.store.RecordClick(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("record click: %w", err)
	}
	metrics.ClicksRecorded.Inc()

	s.cacheDestination(ctx, code, dest)
	return dest, nil
}

// cachedDestination checks L1 then L2, promoting L2 hits into L1.
func (s *LinkService) cachedDestination(ctx context.Context, code string) (string, bool) {
	if dest, ok := s.l1.Get(code); ok {
		metrics.CacheHits.WithLabelValues("l1").Inc()
		return dest, true
	}
	metrics.CacheMisses.WithLabelValues("l1").Inc()

	if s.l2 == nil {
		return "", false
	}

	var dest string
	err := s.l2.Get(ctx, cacheKey(code), &dest)
	if err == nil {
		metrics.CacheHits.WithLabelValues("l2").Inc()
		s.l1.Put(code, dest)
		return dest, true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("l2 cache get failed for code %s: %v", code, err)
	}
	metrics.CacheMisses.WithLabelValues("l2").Inc()
	return "", false
}

func (s *LinkService) cacheDestination(ctx context.Context, code, dest string) {
	s.l1.Put(code, dest)
	metrics.CacheSize.WithLabelValues("l1").Set(float64(s.l1.Len()))

	if s.l2 != nil {
		if err := s.l2.Set(ctx, cacheKey(code), dest); err != nil {
			log.Printf("l2 cache set failed for code %s: %v", code, err)
		}
	}
}

// recordClickBestEffort records a click for a destination served from cache.
// A missing row means the link was deleted after the destination was cached;
// the stale entries are dropped so later lookups miss cleanly.
func (s *LinkService) recordClickBestEffort(ctx context.Context, code string) {
	if _, err := s.store.RecordClick(ctx, code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.invalidate(ctx, code)
			return
		}
		log.Printf("click accounting failed for code %s: %v", code, err)
		return
	}
	metrics.ClicksRecorded.Inc()
}

func (s *LinkService) invalidate(ctx context.Context, code string) {
	s.l1.Delete(code)
	metrics.CacheSize.WithLabelValues("l1").Set(float64(s.l1.Len()))

	if s.l2 != nil {
		if err := s.l2.Delete(ctx, cacheKey(code)); err != nil {
			log.Printf("l2 cache delete failed for code %s: %v", code, err)
		}
	}
}

func cacheKey(code string) string {
	return "linkreg:dest:" + code
}
