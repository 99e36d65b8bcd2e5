package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftPlanner_Go/internal/concurrency"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
)

// Extractor turns a screenshot of the in-game sales history into records.
// Implementations own their retry and error policy.
type Extractor interface {
	Extract(ctx context.Context, image []byte) ([]domain.SaleRecord, error)
}

// Service defines the interface for a profile's sales ledger
type Service interface {
	List(ctx context.Context, profileName string) ([]domain.SaleRecord, error)
	Import(ctx context.Context, profileName string, records []domain.SaleRecord) ([]domain.SaleRecord, error)
	ImportImages(ctx context.Context, profileName string, images [][]byte) ([]domain.SaleRecord, error)
	Remove(ctx context.Context, profileName string, order int) error
	Clear(ctx context.Context, profileName string) error
	Summary(ctx context.Context, profileName string) (domain.SalesSummary, error)
}

type service struct {
	store       profile.Store
	extractor   Extractor
	lockManager *concurrency.LockManager
	now         func() time.Time
}

// NewService creates a new sales service. extractor may be nil, in which case
// ImportImages returns domain.ErrExtractorUnavailable.
func NewService(store profile.Store, extractor Extractor, lockManager *concurrency.LockManager) Service {
	return &service{
		store:       store,
		extractor:   extractor,
		lockManager: lockManager,
		now:         time.Now,
	}
}

func lockKey(profileName string) string {
	return "sales:" + profileName
}

// update runs a read-modify-write of the profile's sales under the profile lock
func (s *service) update(ctx context.Context, profileName string, fn func([]domain.SaleRecord) []domain.SaleRecord) ([]domain.SaleRecord, error) {
	if err := profile.ValidateName(profileName); err != nil {
		return nil, err
	}

	var updated []domain.SaleRecord
	err := s.lockManager.WithLock(lockKey(profileName), func() error {
		current, err := s.store.LoadSales(ctx, profileName)
		if err != nil {
			return fmt.Errorf(ErrMsgLoadSalesFailed, err)
		}
		updated = fn(current)
		if err := s.store.SaveSales(ctx, profileName, updated); err != nil {
			return fmt.Errorf(ErrMsgSaveSalesFailed, err)
		}
		return nil
	})
	return updated, err
}

// List returns the profile's sales sorted by order number
func (s *service) List(ctx context.Context, profileName string) ([]domain.SaleRecord, error) {
	if err := profile.ValidateName(profileName); err != nil {
		return nil, err
	}
	records, err := s.store.LoadSales(ctx, profileName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSalesFailed, err)
	}
	return Merge(nil, records), nil
}

// Import merges records into the ledger and returns the full ledger
func (s *service) Import(ctx context.Context, profileName string, records []domain.SaleRecord) ([]domain.SaleRecord, error) {
	merged, err := s.update(ctx, profileName, func(current []domain.SaleRecord) []domain.SaleRecord {
		return Merge(current, records)
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgSalesImported, "profile", profileName, "imported", len(records), "total", len(merged))
	return merged, nil
}

// ImportImages extracts records from every image, then merges them in one step.
// Nothing is stored when any extraction fails.
func (s *service) ImportImages(ctx context.Context, profileName string, images [][]byte) ([]domain.SaleRecord, error) {
	if s.extractor == nil {
		return nil, domain.ErrExtractorUnavailable
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no images provided: %w", domain.ErrInvalidInput)
	}

	extracted := make([]domain.SaleRecord, 0)
	for i, img := range images {
		records, err := s.extractor.Extract(ctx, img)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgExtractFailed, "profile", profileName, "image", i, "error", err)
			return nil, fmt.Errorf(ErrMsgExtractFailedFmt, domain.ErrExtractionFailed, i, err)
		}
		extracted = append(extracted, records...)
	}
	return s.Import(ctx, profileName, extracted)
}

// Remove deletes the sale with the given order number. Removing an unknown order is a no-op.
func (s *service) Remove(ctx context.Context, profileName string, order int) error {
	_, err := s.update(ctx, profileName, func(current []domain.SaleRecord) []domain.SaleRecord {
		kept := make([]domain.SaleRecord, 0, len(current))
		for _, r := range current {
			if r.Order != order {
				kept = append(kept, r)
			}
		}
		return kept
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSaleRemoved, "profile", profileName, "order", order)
	return nil
}

// Clear empties the profile's sales ledger
func (s *service) Clear(ctx context.Context, profileName string) error {
	_, err := s.update(ctx, profileName, func([]domain.SaleRecord) []domain.SaleRecord {
		return []domain.SaleRecord{}
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSalesCleared, "profile", profileName)
	return nil
}

// Summary analyzes the profile's sales as of now
func (s *service) Summary(ctx context.Context, profileName string) (domain.SalesSummary, error) {
	records, err := s.List(ctx, profileName)
	if err != nil {
		return domain.SalesSummary{}, err
	}
	return Analyze(ctx, records, s.now()), nil
}
