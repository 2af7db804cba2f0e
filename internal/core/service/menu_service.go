package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

type MenuService struct {
	repo   ports.MenuItemRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuItemRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

// List returns every menu item in insertion order.
func (s *MenuService) List(ctx context.Context) ([]*domain.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	item := &domain.MenuItem{
		Title:     in.Title,
		Price:     in.Price,
		Inventory: in.Inventory,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("title", item.Title).Msg("failed to create menu item")
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.logger.Info().Int64("menu_item_id", item.ID).Str("item", item.String()).Msg("menu item created")
	return item, nil
}

func (s *MenuService) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces every field of an existing menu item.
func (s *MenuService) Update(ctx context.Context, id int64, in ports.MenuItemInput) (*domain.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Price = in.Price
	item.Inventory = in.Inventory
	return s.save(ctx, item)
}

// PartialUpdate applies only the fields present in patch.
func (s *MenuService) PartialUpdate(ctx context.Context, id int64, patch ports.MenuItemPatch) (*domain.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Inventory != nil {
		item.Inventory = *patch.Inventory
	}
	return s.save(ctx, item)
}

func (s *MenuService) save(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item %d: %w", item.ID, err)
	}

	s.logger.Info().Int64("menu_item_id", item.ID).Str("item", item.String()).Msg("menu item updated")
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	s.logger.Info().Int64("menu_item_id", id).Msg("menu item deleted")
	return nil
}
