package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type memoryEntry struct {
	res models.Reservation
	seq int64
}

// MemoryRepository keeps everything in process. Used for local runs
// (STORE_DRIVER=memory) and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	logs  []models.AuditLog
	seq   int64
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" {
		res.ID = models.NewID()
	}
	now := r.now()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = now
	if res.Status == "" {
		res.Status = string(domain.InitialStatus())
	}

	r.seq++
	r.items[res.ID] = memoryEntry{res: *res, seq: r.seq}
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, patch domain.Patch) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	patch.Apply(&e.res)
	e.res.UpdatedAt = r.now()
	r.items[id] = e

	out := e.res
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.items, id)

	out := e.res
	return &out, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]models.Reservation, error) {
	return r.collect(func(models.Reservation) bool { return true }, true), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := e.res
	return &out, nil
}

func (r *MemoryRepository) FindByDate(_ context.Context, day time.Time) ([]models.Reservation, error) {
	end := day.AddDate(0, 0, 1)
	return r.collect(func(res models.Reservation) bool {
		return !res.Date.Before(day) && res.Date.Before(end)
	}, false), nil
}

func (r *MemoryRepository) FindByDateAndTime(_ context.Context, day time.Time, clock string) ([]models.Reservation, error) {
	end := day.AddDate(0, 0, 1)
	return r.collect(func(res models.Reservation) bool {
		return !res.Date.Before(day) && res.Date.Before(end) && res.Time == clock
	}, false), nil
}

func (r *MemoryRepository) FindByStatus(_ context.Context, status domain.Status) ([]models.Reservation, error) {
	return r.collect(func(res models.Reservation) bool {
		return res.Status == string(status)
	}, true), nil
}

// collect orders by insertion sequence, which follows creation time.
func (r *MemoryRepository) collect(match func(models.Reservation) bool, newestFirst bool) []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]memoryEntry, 0, len(r.items))
	for _, e := range r.items {
		if match(e.res) {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if newestFirst {
			return entries[i].seq > entries[j].seq
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]models.Reservation, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.res)
	}
	return out
}

func (r *MemoryRepository) CreateAuditLog(_ context.Context, entry *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = models.NewID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *MemoryRepository) ListAuditLogs(_ context.Context, filter audit.Filter) ([]models.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.LimitOrDefault()
	out := make([]models.AuditLog, 0)
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if filter.EntityID != "" && r.logs[i].EntityID != filter.EntityID {
			continue
		}
		out = append(out, r.logs[i])
	}
	return out, nil
}

var (
	_ domain.Repository = (*MemoryRepository)(nil)
	_ audit.Store       = (*MemoryRepository)(nil)
)
