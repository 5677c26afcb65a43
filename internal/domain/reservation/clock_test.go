package reservation

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2030-05-01", time.Date(2030, 5, 1, 0, 0, 0, 0, loc)},
		{"2030-05-01T22:30:00Z", time.Date(2030, 5, 1, 0, 0, 0, 0, loc)},
		{"2030-05-01T01:00:00+09:00", time.Date(2030, 5, 1, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in, loc)
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("not-a-date", loc); err == nil {
		t.Error("ParseDate(not-a-date): expected error, got nil")
	}
}

func TestIsTodayOrLater(t *testing.T) {
	loc := time.UTC
	now := time.Date(2030, 5, 10, 23, 59, 0, 0, loc)

	if !IsTodayOrLater(time.Date(2030, 5, 10, 0, 0, 0, 0, loc), now, loc) {
		t.Error("today should be accepted")
	}
	if !IsTodayOrLater(time.Date(2030, 5, 11, 0, 0, 0, 0, loc), now, loc) {
		t.Error("tomorrow should be accepted")
	}
	if IsTodayOrLater(time.Date(2030, 5, 9, 0, 0, 0, 0, loc), now, loc) {
		t.Error("yesterday should be rejected")
	}
}

func TestSortByTimeOfDay(t *testing.T) {
	rs := []models.Reservation{
		{ID: "c", Time: "7:00 PM"},
		{ID: "a", Time: "9:00 AM"},
		{ID: "d", Time: "bad"},
		{ID: "b", Time: "12:00 PM"},
		{ID: "0", Time: "12:30 AM"},
	}

	SortByTimeOfDay(rs)

	want := []string{"0", "a", "b", "c", "d"}
	for i, id := range want {
		if rs[i].ID != id {
			t.Errorf("position %d = %v, want %v", i, rs[i].ID, id)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParseStatus("seated"); err == nil {
		t.Error("ParseStatus(seated): expected error, got nil")
	}
}

func TestPatch(t *testing.T) {
	name := "  Ana  "
	email := " ANA@Example.com "
	clock := "8:00 PM"
	p := Patch{Name: &name, Email: &email, Time: &clock}

	if p.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !p.TouchesSchedule() {
		t.Error("TouchesSchedule() = false, want true")
	}

	r := models.Reservation{Name: "Old", Email: "old@example.com", Time: "7:00 PM", Guests: 2}
	p.Apply(&r)

	if r.Name != "Ana" || r.Email != "ana@example.com" || r.Time != "8:00 PM" || r.Guests != 2 {
		t.Errorf("Apply result = %+v", r)
	}

	cols := p.Columns()
	if len(cols) != 3 || cols["email"] != "ana@example.com" {
		t.Errorf("Columns() = %v", cols)
	}

	if !(Patch{}).IsEmpty() {
		t.Error("empty Patch IsEmpty() = false, want true")
	}
}
