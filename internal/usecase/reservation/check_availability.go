package reservation

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
)

// CheckAvailability reports the capacity of one slot without writing.
type CheckAvailability struct {
	repo domain.Repository
	deps Deps
}

func NewCheckAvailability(repo domain.Repository, deps Deps) *CheckAvailability {
	return &CheckAvailability{repo: repo, deps: deps}
}

// Execute returns a slot-full business error, alongside the counts, when
// the slot holds the maximum already.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	date time.Time,
	clock string,
) (domain.Availability, error) {

	day := domain.DayOf(date, uc.deps.location())

	slot, err := uc.repo.FindByDateAndTime(ctx, day, strings.TrimSpace(clock))
	if err != nil {
		return domain.Availability{}, err
	}

	return domain.CheckCapacity(slot, "")
}
