package reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (n *fakeNotifier) SendConfirmation(_ context.Context, r *models.Reservation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, r.Email)
	return n.err
}

type fakeAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *fakeAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

type fakePublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

// slotOnlyRepo hides same-day records from the conflict query so that a
// create reaches the capacity check.
type slotOnlyRepo struct {
	*repository.MemoryRepository
}

func (slotOnlyRepo) FindByDate(context.Context, time.Time) ([]models.Reservation, error) {
	return nil, nil
}

// ======================================================
// HELPERS
// ======================================================

var newYear = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *repository.MemoryRepository
	notifier *fakeNotifier
	audit    *fakeAudit
	events   *fakePublisher
	uc       UseCases
}

func newFixture() *fixture {
	f := &fixture{
		repo:     repository.NewMemoryRepository(),
		notifier: &fakeNotifier{},
		audit:    &fakeAudit{},
		events:   &fakePublisher{},
	}
	f.uc = New(f.repo, f.deps())
	return f
}

func (f *fixture) deps() Deps {
	return Deps{
		Location: time.UTC,
		Notifier: f.notifier,
		Audit:    f.audit,
		Events:   f.events,
		Metrics:  metrics.New(),
	}
}

func input(clock string) CreateReservationInput {
	return CreateReservationInput{
		Name:        "  Ana Souza ",
		Email:       "Ana@Example.com ",
		PhoneNumber: "1198765432",
		Date:        newYear,
		Time:        clock,
		Guests:      2,
	}
}

// seed writes straight to the store, skipping admission.
func (f *fixture) seed(t *testing.T, clock, status string) *models.Reservation {
	t.Helper()
	r := &models.Reservation{
		Name:        "Seeded",
		Email:       "seed@example.com",
		PhoneNumber: "1198765432",
		Date:        newYear,
		Time:        clock,
		Guests:      2,
		Status:      status,
	}
	if err := f.repo.Create(context.Background(), r); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return r
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("error = %v, want business error %q", err, code)
	}
}

// ======================================================
// CREATE
// ======================================================

func TestCreate_NormalizesAndNotifies(t *testing.T) {
	f := newFixture()

	r, err := f.uc.Create.Execute(context.Background(), input("7:00 PM"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if r.ID == "" {
		t.Error("expected an id")
	}
	if r.Name != "Ana Souza" {
		t.Errorf("Name = %q, want %q", r.Name, "Ana Souza")
	}
	if r.Email != "ana@example.com" {
		t.Errorf("Email = %q, want %q", r.Email, "ana@example.com")
	}
	if r.Status != string(domain.StatusPending) {
		t.Errorf("Status = %q, want %q", r.Status, domain.StatusPending)
	}
	if len(f.notifier.sent) != 1 {
		t.Errorf("confirmations sent = %d, want 1", len(f.notifier.sent))
	}
	if got := f.audit.actions(); len(got) != 1 || got[0] != audit.ActionCreated {
		t.Errorf("audit actions = %v, want [%s]", got, audit.ActionCreated)
	}
	if len(f.events.keys) != 1 {
		t.Errorf("events published = %d, want 1", len(f.events.keys))
	}
}

func TestCreate_ConflictWindow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.uc.Create.Execute(ctx, input("7:00 PM")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := f.uc.Create.Execute(ctx, input("8:00 PM"))
	assertCode(t, err, domain.CodeTimeConflict)
	if err.Error() != "Time slot conflicts with existing reservation at 7:00 PM" {
		t.Errorf("message = %q", err.Error())
	}

	if _, err := f.uc.Create.Execute(ctx, input("9:00 PM")); err != nil {
		t.Errorf("9:00 PM should be accepted, got %v", err)
	}

	all, _ := f.repo.FindAll(ctx)
	if len(all) != 2 {
		t.Errorf("stored = %d, want 2", len(all))
	}
}

func TestCreate_HourGranularity(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		clock    string
		conflict bool
	}{
		{"same hour different minutes", "7:00 PM", "7:45 PM", true},
		{"one minute apart across hours", "7:59 PM", "8:00 PM", true},
		{"61 minutes by clock but two hours apart", "7:59 PM", "9:00 PM", false},
		{"cancelled still blocks", "7:00 PM", "8:30 PM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			status := string(domain.StatusPending)
			if tt.name == "cancelled still blocks" {
				status = string(domain.StatusCancelled)
			}
			f.seed(t, tt.existing, status)

			_, err := f.uc.Create.Execute(context.Background(), input(tt.clock))
			if tt.conflict {
				assertCode(t, err, domain.CodeTimeConflict)
				return
			}
			if err != nil {
				t.Errorf("expected accepted, got %v", err)
			}
		})
	}
}

func TestCreate_SlotFull(t *testing.T) {
	f := newFixture()
	for i := 0; i < domain.MaxPerSlot; i++ {
		f.seed(t, "7:00 PM", string(domain.StatusConfirmed))
	}
	uc := New(slotOnlyRepo{f.repo}, f.deps())

	_, err := uc.Create.Execute(context.Background(), input("7:00 PM"))
	assertCode(t, err, domain.CodeSlotFull)
	if err.Error() != "Time slot is full. Maximum 6 reservations allowed for this date and time." {
		t.Errorf("message = %q", err.Error())
	}

	all, _ := f.repo.FindAll(context.Background())
	if len(all) != domain.MaxPerSlot {
		t.Errorf("stored = %d, want %d", len(all), domain.MaxPerSlot)
	}
	if got := f.audit.actions(); len(got) != 1 || got[0] != audit.ActionRejected {
		t.Errorf("audit actions = %v, want [%s]", got, audit.ActionRejected)
	}
}

func TestCreate_CancelledFreeCapacity(t *testing.T) {
	f := newFixture()
	for i := 0; i < domain.MaxPerSlot-1; i++ {
		f.seed(t, "7:00 PM", string(domain.StatusConfirmed))
	}
	f.seed(t, "7:00 PM", string(domain.StatusCancelled))
	uc := New(slotOnlyRepo{f.repo}, f.deps())

	if _, err := uc.Create.Execute(context.Background(), input("7:00 PM")); err != nil {
		t.Errorf("expected accepted, got %v", err)
	}
}

func TestCreate_EmailFailureIsIgnored(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("provider down")

	r, err := f.uc.Create.Execute(context.Background(), input("7:00 PM"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if r == nil || r.ID == "" {
		t.Error("expected the reservation to be stored")
	}
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdate_StatusOnlySkipsAdmission(t *testing.T) {
	f := newFixture()
	f.seed(t, "7:00 PM", string(domain.StatusPending))
	b := f.seed(t, "8:00 PM", string(domain.StatusPending))

	confirmed := domain.StatusConfirmed
	r, err := f.uc.UpdateStatus.Execute(context.Background(), b.ID, confirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if r.Status != string(domain.StatusConfirmed) {
		t.Errorf("Status = %q, want %q", r.Status, domain.StatusConfirmed)
	}

	name := "Renamed"
	if _, err := f.uc.Update.Execute(context.Background(), b.ID, domain.Patch{Name: &name}); err != nil {
		t.Errorf("non-schedule update failed: %v", err)
	}
}

func TestUpdate_MoveRechecksExcludingSelf(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.uc.Create.Execute(ctx, input("7:00 PM"))
	if err != nil {
		t.Fatalf("create A failed: %v", err)
	}
	b, err := f.uc.Create.Execute(ctx, input("10:00 PM"))
	if err != nil {
		t.Fatalf("create B failed: %v", err)
	}

	eight := "8:00 PM"
	_, err = f.uc.Update.Execute(ctx, b.ID, domain.Patch{Time: &eight})
	assertCode(t, err, domain.CodeTimeConflict)

	stored, _ := f.repo.FindByID(ctx, b.ID)
	if stored.Time != "10:00 PM" {
		t.Errorf("rejected update was persisted: time = %q", stored.Time)
	}

	half := "7:30 PM"
	r, err := f.uc.Update.Execute(ctx, a.ID, domain.Patch{Time: &half})
	if err != nil {
		t.Fatalf("moving within own hour failed: %v", err)
	}
	if r.Time != half {
		t.Errorf("Time = %q, want %q", r.Time, half)
	}

	nextDay := newYear.AddDate(0, 0, 1)
	if _, err := f.uc.Update.Execute(ctx, b.ID, domain.Patch{Date: &nextDay, Time: &eight}); err != nil {
		t.Errorf("moving to another day failed: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture()
	id := models.NewID()

	name := "X"
	_, err := f.uc.Update.Execute(context.Background(), id, domain.Patch{Name: &name})
	assertCode(t, err, domain.CodeNotFound)

	clock := "7:00 PM"
	_, err = f.uc.Update.Execute(context.Background(), id, domain.Patch{Time: &clock})
	assertCode(t, err, domain.CodeNotFound)

	_, err = f.uc.UpdateStatus.Execute(context.Background(), id, domain.StatusCancelled)
	assertCode(t, err, domain.CodeNotFound)
}

// ======================================================
// DELETE / READS
// ======================================================

func TestDelete_Twice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.uc.Create.Execute(ctx, input("7:00 PM"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := f.uc.Delete.Execute(ctx, r.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	_, err = f.uc.Delete.Execute(ctx, r.ID)
	assertCode(t, err, domain.CodeNotFound)

	_, err = f.uc.Get.Execute(ctx, r.ID)
	assertCode(t, err, domain.CodeNotFound)
}

func TestListByDate_TimeOfDayOrder(t *testing.T) {
	f := newFixture()
	f.seed(t, "1:00 PM", string(domain.StatusPending))
	f.seed(t, "11:00 AM", string(domain.StatusPending))
	f.seed(t, "9:00 AM", string(domain.StatusPending))

	other := &models.Reservation{Date: newYear.AddDate(0, 0, 1), Time: "8:00 AM", Status: "pending"}
	_ = f.repo.Create(context.Background(), other)

	rs, err := f.uc.ListByDate.Execute(context.Background(), newYear)
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}

	want := []string{"9:00 AM", "11:00 AM", "1:00 PM"}
	if len(rs) != len(want) {
		t.Fatalf("len = %d, want %d", len(rs), len(want))
	}
	for i, r := range rs {
		if r.Time != want[i] {
			t.Errorf("rs[%d].Time = %q, want %q", i, r.Time, want[i])
		}
	}
}

func TestListByStatus(t *testing.T) {
	f := newFixture()
	f.seed(t, "9:00 AM", string(domain.StatusPending))
	f.seed(t, "1:00 PM", string(domain.StatusCancelled))

	rs, err := f.uc.ListByStatus.Execute(context.Background(), domain.StatusCancelled)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(rs) != 1 || rs[0].Time != "1:00 PM" {
		t.Errorf("result = %+v", rs)
	}

	_, err = f.uc.ListByStatus.Execute(context.Background(), domain.Status("archived"))
	assertCode(t, err, domain.CodeInvalidStatus)
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture()
	f.seed(t, "7:00 PM", string(domain.StatusPending))
	f.seed(t, "7:00 PM", string(domain.StatusConfirmed))
	f.seed(t, "7:00 PM", string(domain.StatusCancelled))

	a, err := f.uc.CheckAvailability.Execute(context.Background(), newYear, "7:00 PM")
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	want := domain.Availability{Available: true, CurrentCount: 2, MaxReservations: 6, RemainingSlots: 4}
	if a != want {
		t.Errorf("availability = %+v, want %+v", a, want)
	}

	all, _ := f.repo.FindAll(context.Background())
	if len(all) != 3 {
		t.Errorf("availability check wrote records: %d", len(all))
	}

	for i := 0; i < 4; i++ {
		f.seed(t, "7:00 PM", string(domain.StatusPending))
	}
	a, err = f.uc.CheckAvailability.Execute(context.Background(), newYear, "7:00 PM")
	assertCode(t, err, domain.CodeSlotFull)
	if a.Available || a.RemainingSlots != 0 {
		t.Errorf("availability = %+v, want unavailable", a)
	}
}
