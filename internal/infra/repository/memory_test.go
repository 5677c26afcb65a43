package repository

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	day := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	res := &models.Reservation{Name: "Ana", Date: day, Time: "7:00 PM", Guests: 2}
	if err := repo.Create(ctx, res); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(res.ID) != 24 {
		t.Errorf("ID = %q, want 24 hex chars", res.ID)
	}
	if res.Status != string(domain.StatusPending) {
		t.Errorf("Status = %v, want %v", res.Status, domain.StatusPending)
	}

	got, err := repo.FindByID(ctx, res.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Name != "Ana" {
		t.Errorf("Name = %v, want %v", got.Name, "Ana")
	}

	guests := 4
	updated, err := repo.Update(ctx, res.ID, domain.Patch{Guests: &guests})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Guests != 4 {
		t.Errorf("Guests = %v, want %v", updated.Guests, 4)
	}

	if _, err := repo.Delete(ctx, res.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Delete(ctx, res.ID); err != domain.ErrNotFound {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByID(ctx, res.ID); err != domain.ErrNotFound {
		t.Errorf("FindByID after delete error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	day := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	seed := []models.Reservation{
		{Name: "first", Date: day, Time: "7:00 PM", Status: "pending"},
		{Name: "second", Date: day, Time: "9:00 PM", Status: "confirmed"},
		{Name: "other day", Date: day.AddDate(0, 0, 1), Time: "7:00 PM", Status: "pending"},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 3 || all[0].Name != "other day" {
		t.Errorf("FindAll newest first = %v", names(all))
	}

	sameDay, _ := repo.FindByDate(ctx, day)
	if len(sameDay) != 2 {
		t.Errorf("FindByDate = %v, want 2 records", names(sameDay))
	}

	slot, _ := repo.FindByDateAndTime(ctx, day, "7:00 PM")
	if len(slot) != 1 || slot[0].Name != "first" {
		t.Errorf("FindByDateAndTime = %v", names(slot))
	}

	pending, _ := repo.FindByStatus(ctx, domain.StatusPending)
	if len(pending) != 2 || pending[0].Name != "other day" {
		t.Errorf("FindByStatus = %v", names(pending))
	}
}

func TestMemoryRepository_AuditLogs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, id := range []string{"a", "b", "a"} {
		if err := repo.CreateAuditLog(ctx, &models.AuditLog{Action: "x", EntityID: id}); err != nil {
			t.Fatalf("CreateAuditLog failed: %v", err)
		}
	}

	logs, _ := repo.ListAuditLogs(ctx, audit.Filter{EntityID: "a"})
	if len(logs) != 2 {
		t.Errorf("ListAuditLogs = %d entries, want 2", len(logs))
	}

	logs, _ = repo.ListAuditLogs(ctx, audit.Filter{Limit: 1})
	if len(logs) != 1 || logs[0].EntityID != "a" {
		t.Errorf("ListAuditLogs limit = %+v", logs)
	}
}

func names(rs []models.Reservation) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}
