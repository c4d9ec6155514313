package service

import (
	"context"
	"errors"
	"strings"

	dom "todoapp/internal/domain"
	"todoapp/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"todoapp/internal/cache"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyName = errors.New("name must not be empty")
)

type ItemService struct {
	repo  repo.ItemRepo
	cache *cache.ItemCache
	sf    singleflight.Group
}

// NewItemService creates an ItemService. If c is nil, caching is disabled.
func NewItemService(r repo.ItemRepo, c *cache.ItemCache) *ItemService {
	return &ItemService{repo: r, cache: c}
}

func (s *ItemService) Create(ctx context.Context, name string) (dom.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Item{}, ErrEmptyName
	}

	it, err := s.repo.Create(ctx, name)
	if err != nil {
		return dom.Item{}, err
	}
	s.invalidateCache(ctx)
	return it, nil
}

func (s *ItemService) List(ctx context.Context) ([]dom.Item, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Item), nil
	}
	return s.repo.List(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id int64) (dom.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	return it, nil
}

func (s *ItemService) SetCompleted(ctx context.Context, id int64, completed bool) (dom.Item, error) {
	it, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	s.invalidateCache(ctx)
	return it, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ItemService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
