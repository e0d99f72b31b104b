package find_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/ptr"
)

func TestEvaluateClosures_NoClosures(t *testing.T) {
	got := EvaluateClosures(nil, at("2025-03-10", "19:00"), at("2025-03-10", "21:00"), nil, rome())

	assert.False(t, got.Blocked)
	assert.Empty(t, got.BlockedTables)
	assert.Equal(t, 100, got.CapacityPercent)
	assert.Empty(t, got.Reasons)
}

func TestEvaluateClosures_Scopes(t *testing.T) {
	loc := rome()
	slotStart, slotEnd := at("2025-03-10", "19:00"), at("2025-03-10", "21:00")
	dayStart, dayEnd := at("2025-03-10", "00:00"), at("2025-03-11", "00:00")

	tests := []struct {
		name          string
		closure       domain.Closure
		roomID        *int64
		blocked       bool
		blockedTables map[int64]bool
		reasons       []string
	}{
		{
			name:          "restaurant closure blocks",
			closure:       domain.Closure{ID: 1, Scope: domain.ClosureScopeGlobal, Start: dayStart, End: dayEnd, Note: "private event"},
			blocked:       true,
			blockedTables: map[int64]bool{},
			reasons:       []string{"restaurant closed (closure #1): private event"},
		},
		{
			name:          "room closure without room filter blocks",
			closure:       domain.Closure{ID: 2, Scope: domain.ClosureScopeRoom, RoomID: ptr.Ptr(int64(5)), Start: dayStart, End: dayEnd},
			blocked:       true,
			blockedTables: map[int64]bool{},
			reasons:       []string{"room closed (closure #2)"},
		},
		{
			name:          "room closure for matching room blocks",
			closure:       domain.Closure{ID: 3, Scope: domain.ClosureScopeRoom, RoomID: ptr.Ptr(int64(5)), Start: dayStart, End: dayEnd},
			roomID:        ptr.Ptr(int64(5)),
			blocked:       true,
			blockedTables: map[int64]bool{},
			reasons:       []string{"room closed (closure #3)"},
		},
		{
			name:          "room closure for other room skipped",
			closure:       domain.Closure{ID: 4, Scope: domain.ClosureScopeRoom, RoomID: ptr.Ptr(int64(5)), Start: dayStart, End: dayEnd},
			roomID:        ptr.Ptr(int64(6)),
			blockedTables: map[int64]bool{},
			reasons:       []string{},
		},
		{
			name:          "table closure blocks only the table",
			closure:       domain.Closure{ID: 5, Scope: domain.ClosureScopeTable, TableID: ptr.Ptr(int64(9)), Start: dayStart, End: dayEnd},
			blockedTables: map[int64]bool{9: true},
			reasons:       []string{"table 9 unavailable (closure #5)"},
		},
		{
			name:          "table closure without table skipped",
			closure:       domain.Closure{ID: 6, Scope: domain.ClosureScopeTable, Start: dayStart, End: dayEnd},
			blockedTables: map[int64]bool{},
			reasons:       []string{},
		},
		{
			name:          "closure ending at slot start does not apply",
			closure:       domain.Closure{ID: 7, Scope: domain.ClosureScopeGlobal, Start: at("2025-03-10", "12:00"), End: slotStart},
			blockedTables: map[int64]bool{},
			reasons:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateClosures([]domain.Closure{tt.closure}, slotStart, slotEnd, tt.roomID, loc)
			assert.Equal(t, tt.blocked, got.Blocked)
			assert.Equal(t, tt.blockedTables, got.BlockedTables)
			assert.Equal(t, tt.reasons, got.Reasons)
			assert.Equal(t, 100, got.CapacityPercent)
		})
	}
}

func TestEvaluateClosures_CapacityOverrideMinimumWins(t *testing.T) {
	dayStart, dayEnd := at("2025-03-10", "00:00"), at("2025-03-11", "00:00")
	closures := []domain.Closure{
		{ID: 1, Scope: domain.ClosureScopeGlobal, Start: dayStart, End: dayEnd, CapacityOverride: &domain.CapacityOverride{Percent: 50}},
		{ID: 2, Scope: domain.ClosureScopeGlobal, Start: dayStart, End: dayEnd, CapacityOverride: &domain.CapacityOverride{Percent: 30}},
		{ID: 3, Scope: domain.ClosureScopeTable, TableID: ptr.Ptr(int64(4)), Start: dayStart, End: dayEnd},
	}

	got := EvaluateClosures(closures, at("2025-03-10", "19:00"), at("2025-03-10", "20:00"), nil, rome())

	assert.False(t, got.Blocked)
	assert.Equal(t, 30, got.CapacityPercent)
	assert.Equal(t, map[int64]bool{4: true}, got.BlockedTables)
	assert.Equal(t, []string{
		"capacity reduced to 50% by closure #1",
		"capacity reduced to 30% by closure #2",
		"table 4 unavailable (closure #3)",
	}, got.Reasons)
}

func TestEvaluateClosures_Recurring(t *testing.T) {
	loc := rome()
	// первое повторение в понедельник 2025-03-03 с 18:00 до 22:00
	base := domain.Closure{ID: 1, Scope: domain.ClosureScopeGlobal, Start: at("2025-03-03", "18:00"), End: at("2025-03-03", "22:00")}

	withRule := func(rule domain.RecurrenceRule) []domain.Closure {
		c := base
		c.Recurrence = &rule
		return []domain.Closure{c}
	}

	monday := func(clock string) (time.Time, time.Time) {
		s := at("2025-03-10", clock)
		return s, s.Add(time.Hour)
	}

	tests := []struct {
		name    string
		rule    domain.RecurrenceRule
		slot    string
		date    string
		blocked bool
	}{
		{name: "daily inside", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily}, date: "2025-03-12", slot: "19:00", blocked: true},
		{name: "daily before occurrence", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily}, date: "2025-03-12", slot: "17:00"},
		{name: "daily touching end", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily}, date: "2025-03-12", slot: "22:00"},
		{name: "weekly default weekday", rule: domain.RecurrenceRule{Type: domain.RecurrenceWeekly}, date: "2025-03-10", slot: "19:00", blocked: true},
		{name: "weekly default other weekday", rule: domain.RecurrenceRule{Type: domain.RecurrenceWeekly}, date: "2025-03-11", slot: "19:00"},
		{name: "weekly listed day", rule: domain.RecurrenceRule{Type: domain.RecurrenceWeekly, Days: []int{2, 7}}, date: "2025-03-16", slot: "19:00", blocked: true},
		{name: "weekly unlisted day", rule: domain.RecurrenceRule{Type: domain.RecurrenceWeekly, Days: []int{2, 7}}, date: "2025-03-10", slot: "19:00"},
		{name: "monthly default day", rule: domain.RecurrenceRule{Type: domain.RecurrenceMonthly}, date: "2025-04-03", slot: "19:00", blocked: true},
		{name: "monthly listed day", rule: domain.RecurrenceRule{Type: domain.RecurrenceMonthly, Days: []int{15}}, date: "2025-03-15", slot: "19:00", blocked: true},
		{name: "before from", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily, From: "2025-03-11"}, date: "2025-03-10", slot: "19:00"},
		{name: "on from", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily, From: "2025-03-10"}, date: "2025-03-10", slot: "19:00", blocked: true},
		{name: "on until", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily, Until: "2025-03-10"}, date: "2025-03-10", slot: "19:00", blocked: true},
		{name: "after until", rule: domain.RecurrenceRule{Type: domain.RecurrenceDaily, Until: "2025-03-09"}, date: "2025-03-10", slot: "19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := at(tt.date, tt.slot)
			got := EvaluateClosures(withRule(tt.rule), start, start.Add(time.Hour), nil, loc)
			assert.Equal(t, tt.blocked, got.Blocked)
		})
	}

	t.Run("spans midnight", func(t *testing.T) {
		c := domain.Closure{
			ID:         2,
			Scope:      domain.ClosureScopeGlobal,
			Start:      at("2025-03-03", "22:30"),
			End:        at("2025-03-04", "01:00"),
			Recurrence: &domain.RecurrenceRule{Type: domain.RecurrenceDaily},
		}
		start, end := monday("23:00")
		assert.True(t, EvaluateClosures([]domain.Closure{c}, start, end, nil, loc).Blocked)

		start, end = monday("21:30")
		assert.False(t, EvaluateClosures([]domain.Closure{c}, start, end, nil, loc).Blocked)
	})
}
