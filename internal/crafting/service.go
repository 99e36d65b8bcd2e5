package crafting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CraftPlanner_Go/internal/concurrency"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/metrics"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
	"github.com/osse101/CraftPlanner_Go/internal/worker"
)

// Resolver fetches an item and its hydrated recipe from the item database
type Resolver interface {
	GetItem(ctx context.Context, id int) (*domain.Item, error)
}

// Service defines the interface for crafting plan operations.
// Every method is scoped to a profile name.
type Service interface {
	AddItem(ctx context.Context, profileName string, itemID int) (*domain.WishlistEntry, error)
	SetQuantity(ctx context.Context, profileName string, itemID, quantity int) error
	RemoveItem(ctx context.Context, profileName string, itemID int) error
	ClearPlan(ctx context.Context, profileName string) error
	SetOwned(ctx context.Context, profileName string, ingredientID, count int) (int, error)
	GetOwned(ctx context.Context, profileName string, ingredientID int) (int, error)
	Wishlist(ctx context.Context, profileName string) ([]domain.WishlistEntry, error)
	FlatIngredients(ctx context.Context, profileName string) ([]domain.ReconciledIngredient, error)
	GroupedIngredients(ctx context.Context, profileName string) ([]domain.ReconciledGroup, error)
	DeleteProfile(ctx context.Context, profileName string) error
	EvictIdle(ctx context.Context, maxIdle time.Duration) int
	Shutdown(ctx context.Context) error
}

type service struct {
	store       profile.Store
	resolver    Resolver
	pool        *worker.Pool
	lockManager *concurrency.LockManager

	mu       sync.Mutex
	sessions map[string]*Plan
	lastUsed map[string]time.Time
	now      func() time.Time
}

// NewService creates a new crafting service. The pool must already be started;
// the service stops it on Shutdown.
func NewService(store profile.Store, resolver Resolver, pool *worker.Pool, lockManager *concurrency.LockManager) Service {
	return &service{
		store:       store,
		resolver:    resolver,
		pool:        pool,
		lockManager: lockManager,
		sessions:    make(map[string]*Plan),
		lastUsed:    make(map[string]time.Time),
		now:         time.Now,
	}
}

func planLockKey(profileName string) string {
	return "plan:" + profileName
}

func saveLockKey(profileName string) string {
	return "plan-save:" + profileName
}

// withPlan runs fn on the profile's session while holding the profile lock.
// The session is loaded from the store on first use; a load failure is logged
// and the profile starts from an empty plan.
func (s *service) withPlan(ctx context.Context, profileName string, fn func(p *Plan) error) error {
	if err := profile.ValidateName(profileName); err != nil {
		return err
	}

	return s.lockManager.WithLock(planLockKey(profileName), func() error {
		plan := s.session(profileName)
		if plan == nil {
			plan = s.loadPlan(ctx, profileName)
		}
		s.mu.Lock()
		s.sessions[profileName] = plan
		s.lastUsed[profileName] = s.now()
		s.mu.Unlock()
		return fn(plan)
	})
}

func (s *service) session(profileName string) *Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[profileName]
}

func (s *service) loadPlan(ctx context.Context, profileName string) *Plan {
	log := logger.FromContext(ctx)

	state, err := s.store.LoadPlan(ctx, profileName)
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OperationLoad).Inc()
		log.Error(LogMsgLoadProfileFailed, "profile", profileName, "error", err)
		return NewPlan(nil, nil)
	}

	plan := NewPlan(state.Wishlist, state.Owned)
	log.Debug(LogMsgSessionLoaded, "profile", profileName, "entries", plan.Wishlist.Len())
	return plan
}

// mutate applies fn and schedules a save when it succeeds
func (s *service) mutate(ctx context.Context, profileName, op string, fn func(p *Plan) error) error {
	if err := s.withPlan(ctx, profileName, fn); err != nil {
		return err
	}
	metrics.CraftingMutations.WithLabelValues(op).Inc()
	s.scheduleSave(profileName)
	return nil
}

// scheduleSave enqueues a save that snapshots the session when it runs, so a
// later job always writes state at least as new as an earlier one.
func (s *service) scheduleSave(profileName string) {
	s.pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
		saveLock := s.lockManager.GetLock(saveLockKey(profileName))
		saveLock.Lock()
		defer saveLock.Unlock()

		var snapshot *profile.PlanState
		_ = s.lockManager.WithLock(planLockKey(profileName), func() error {
			if plan := s.session(profileName); plan != nil {
				snapshot = &profile.PlanState{
					Wishlist: plan.Wishlist.Entries(),
					Owned:    plan.Ledger.Snapshot(),
				}
			}
			return nil
		})
		if snapshot == nil {
			// Session was dropped (profile deleted or evicted) before the save ran
			return nil
		}

		s.save(ctx, profileName, snapshot)
		return nil
	}))
}

// save writes a snapshot and reports whether the session may be dropped.
// A profile that no longer exists is never recreated.
func (s *service) save(ctx context.Context, profileName string, snapshot *profile.PlanState) bool {
	err := s.store.SavePlan(ctx, profileName, snapshot)
	switch {
	case err == nil:
		return true
	case errors.Is(err, domain.ErrProfileNotFound):
		logger.FromContext(ctx).Debug(LogMsgSaveSkippedNoProfile, "profile", profileName)
		return true
	default:
		metrics.PersistenceFailures.WithLabelValues(metrics.OperationSave).Inc()
		logger.FromContext(ctx).Error(LogMsgSaveProfileFailed, "profile", profileName, "error", err)
		return false
	}
}

// AddItem resolves the item and adds it to the profile's crafting list,
// incrementing the quantity when it is already present.
// Nothing is added when resolution fails.
func (s *service) AddItem(ctx context.Context, profileName string, itemID int) (*domain.WishlistEntry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddItemCalled, "profile", profileName, "itemID", itemID)

	if err := profile.ValidateName(profileName); err != nil {
		return nil, err
	}

	item, err := s.resolver.GetItem(ctx, itemID)
	if err != nil {
		log.Warn(LogMsgResolveItemFailed, "itemID", itemID, "error", err)
		return nil, fmt.Errorf(ErrMsgResolveItemFailedFmt, itemID, err)
	}

	var entry domain.WishlistEntry
	err = s.mutate(ctx, profileName, OpAdd, func(p *Plan) error {
		entry = p.Wishlist.Add(*item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemAdded, "profile", profileName, "item", item.Name, "quantity", entry.Quantity)
	return &entry, nil
}

// SetQuantity replaces the desired quantity of an item; quantity <= 0 removes it
func (s *service) SetQuantity(ctx context.Context, profileName string, itemID, quantity int) error {
	err := s.mutate(ctx, profileName, OpSetQuantity, func(p *Plan) error {
		if !p.Wishlist.SetQuantity(itemID, quantity) && quantity > 0 {
			return fmt.Errorf(ErrMsgNotInWishlistFmt, itemID, domain.ErrNotInWishlist)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgQuantityUpdated, "profile", profileName, "itemID", itemID, "quantity", quantity)
	return nil
}

// RemoveItem deletes an item from the crafting list. Removing an absent item is not an error.
func (s *service) RemoveItem(ctx context.Context, profileName string, itemID int) error {
	err := s.mutate(ctx, profileName, OpRemove, func(p *Plan) error {
		p.Wishlist.Remove(itemID)
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgItemRemoved, "profile", profileName, "itemID", itemID)
	return nil
}

// ClearPlan empties the crafting list and resets every owned ingredient count
func (s *service) ClearPlan(ctx context.Context, profileName string) error {
	err := s.mutate(ctx, profileName, OpClear, func(p *Plan) error {
		p.Clear()
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgPlanCleared, "profile", profileName)
	return nil
}

// SetOwned records how many of an ingredient the user owns, clamped at zero.
// Returns the stored count.
func (s *service) SetOwned(ctx context.Context, profileName string, ingredientID, count int) (int, error) {
	var stored int
	err := s.mutate(ctx, profileName, OpSetOwned, func(p *Plan) error {
		stored = p.Ledger.SetOwned(ingredientID, count)
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgOwnedUpdated, "profile", profileName, "ingredientID", ingredientID, "owned", stored)
	return stored, nil
}

// GetOwned returns the owned count of an ingredient, 0 when never set
func (s *service) GetOwned(ctx context.Context, profileName string, ingredientID int) (int, error) {
	var owned int
	err := s.withPlan(ctx, profileName, func(p *Plan) error {
		owned = p.Ledger.Owned(ingredientID)
		return nil
	})
	return owned, err
}

// Wishlist returns the crafting list in insertion order
func (s *service) Wishlist(ctx context.Context, profileName string) ([]domain.WishlistEntry, error) {
	var entries []domain.WishlistEntry
	err := s.withPlan(ctx, profileName, func(p *Plan) error {
		entries = p.Wishlist.Entries()
		return nil
	})
	return entries, err
}

// FlatIngredients returns the merged ingredient demand sorted by name
func (s *service) FlatIngredients(ctx context.Context, profileName string) ([]domain.ReconciledIngredient, error) {
	var out []domain.ReconciledIngredient
	err := s.withPlan(ctx, profileName, func(p *Plan) error {
		out = p.Flat()
		return nil
	})
	return out, err
}

// GroupedIngredients returns the per-item ingredient breakdown in list order
func (s *service) GroupedIngredients(ctx context.Context, profileName string) ([]domain.ReconciledGroup, error) {
	var out []domain.ReconciledGroup
	err := s.withPlan(ctx, profileName, func(p *Plan) error {
		out = p.Grouped()
		return nil
	})
	return out, err
}

// DeleteProfile removes the profile from the store and drops its session.
// It waits for a running save of the profile, and saves queued behind it
// find no session and write nothing.
func (s *service) DeleteProfile(ctx context.Context, profileName string) error {
	saveLock := s.lockManager.GetLock(saveLockKey(profileName))
	saveLock.Lock()
	defer saveLock.Unlock()

	err := s.lockManager.WithLock(planLockKey(profileName), func() error {
		if err := s.store.Delete(ctx, profileName); err != nil {
			return err
		}
		s.mu.Lock()
		delete(s.sessions, profileName)
		delete(s.lastUsed, profileName)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgProfileDeleted, "profile", profileName)
	return nil
}

// EvictIdle saves and unloads sessions untouched for longer than maxIdle.
// A session whose save fails stays loaded. Returns the number evicted.
func (s *service) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var idle []string
	for name, used := range s.lastUsed {
		if used.Before(cutoff) {
			idle = append(idle, name)
		}
	}
	s.mu.Unlock()

	evicted := 0
	for _, name := range idle {
		if s.evict(ctx, name, cutoff) {
			evicted++
		}
	}
	if evicted > 0 {
		logger.FromContext(ctx).Info(LogMsgSessionsEvicted, "count", evicted, "remaining", s.sessionCount())
	}
	return evicted
}

// evict persists and drops one session. Lock order matches scheduleSave:
// save lock, then plan lock. The save completes before a reload can run.
func (s *service) evict(ctx context.Context, profileName string, cutoff time.Time) bool {
	saveLock := s.lockManager.GetLock(saveLockKey(profileName))
	saveLock.Lock()
	defer saveLock.Unlock()

	evicted := false
	_ = s.lockManager.WithLock(planLockKey(profileName), func() error {
		s.mu.Lock()
		plan, used := s.sessions[profileName], s.lastUsed[profileName]
		s.mu.Unlock()
		if plan == nil || !used.Before(cutoff) {
			return nil
		}

		snapshot := &profile.PlanState{
			Wishlist: plan.Wishlist.Entries(),
			Owned:    plan.Ledger.Snapshot(),
		}
		if !s.save(ctx, profileName, snapshot) {
			return nil
		}

		s.mu.Lock()
		delete(s.sessions, profileName)
		delete(s.lastUsed, profileName)
		s.mu.Unlock()
		evicted = true
		return nil
	})
	return evicted
}

func (s *service) sessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown waits for pending saves to complete or for ctx to be cancelled
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if err := s.pool.Stop(ctx); err != nil {
		log.Warn(LogMsgShutdownForced, "error", err)
		return err
	}

	log.Info(LogMsgShutdownComplete)
	return nil
}
