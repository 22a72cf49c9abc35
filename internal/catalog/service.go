package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Public browsing
// --------------------------------------------------

type CategoryWithItems struct {
	Category *Category   `json:"category"`
	Items    []*MenuItem `json:"items"`
}

func (s *Service) BrowseMenu(ctx context.Context) ([]*CategoryWithItems, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	var out []*CategoryWithItems
	for _, c := range cats {
		items, err := s.repo.ListActiveByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &CategoryWithItems{Category: c, Items: items})
	}
	return out, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetItem(ctx, id)
}

// --------------------------------------------------
// Side policy aggregation
// --------------------------------------------------

// GetSidePolicy folds all SideConfiguration rows for a main item into
// one policy: required = OR of rows, min/max from the first row. Rows
// are supposed to agree on min/max; if they don't we keep the first
// row's values and log the inconsistency.
func (s *Service) GetSidePolicy(ctx context.Context, mainItemID string) (*SidePolicy, error) {
	configs, err := s.repo.ListSideConfigs(ctx, mainItemID)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}

	policy := &SidePolicy{
		MainItemID: mainItemID,
		MinSelect:  configs[0].MinSelect,
		MaxSelect:  configs[0].MaxSelect,
	}

	for _, sc := range configs {
		policy.SideIDs = append(policy.SideIDs, sc.SideItemID)
		if sc.IsRequired {
			policy.IsRequired = true
		}
		if sc.IsDefault {
			policy.DefaultIDs = append(policy.DefaultIDs, sc.SideItemID)
		}
		if sc.MinSelect != policy.MinSelect || sc.MaxSelect != policy.MaxSelect {
			logrus.WithFields(logrus.Fields{
				"main_item": mainItemID,
				"side_item": sc.SideItemID,
			}).Warn("side configuration rows disagree on min/max, keeping first row")
		}
	}
	return policy, nil
}

// ActiveSideItems lists every active item in the side-dish
// categories, the general fallback candidate set.
func (s *Service) ActiveSideItems(ctx context.Context) ([]*MenuItem, error) {
	ids, err := s.repo.SideCategoryIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.ListActiveInCategories(ctx, ids)
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (s *Service) CreateItem(ctx context.Context, item *MenuItem) error {
	if item.Name == "" || item.CategoryID == "" {
		return errors.New("missing required fields")
	}
	if item.Price < 0 {
		return errors.New("price must not be negative")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) SetItemActive(ctx context.Context, itemID string, active bool) error {
	return s.repo.SetItemActive(ctx, itemID, active)
}

// UploadItemImage stores the image and records its public URL.
func (s *Service) UploadItemImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (string, error) {

	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("items/%s/%s%s", itemID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateItemImage(ctx, itemID, url); err != nil {
		return "", err
	}
	return url, nil
}
