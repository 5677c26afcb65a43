package reservation

import (
	"sort"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// SortByTimeOfDay orders same-day reservations chronologically. Unparseable
// times sort last; ties keep creation order.
func SortByTimeOfDay(rs []models.Reservation) {
	key := func(r models.Reservation) int {
		m, err := MinutesOf(r.Time)
		if err != nil {
			return 24 * 60
		}
		return m
	}

	sort.SliceStable(rs, func(i, j int) bool {
		ki, kj := key(rs[i]), key(rs[j])
		if ki != kj {
			return ki < kj
		}
		return rs[i].CreatedAt.Before(rs[j].CreatedAt)
	})
}
