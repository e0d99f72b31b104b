package domain

import "time"

// ClosureScope область действия закрытия
type ClosureScope string

const (
	ClosureScopeGlobal ClosureScope = "restaurant"
	ClosureScopeRoom   ClosureScope = "room"
	ClosureScopeTable  ClosureScope = "table"
)

// NormalizeClosureScope неизвестные значения считаются глобальными
func NormalizeClosureScope(s string) ClosureScope {
	switch ClosureScope(s) {
	case ClosureScopeRoom, ClosureScopeTable:
		return ClosureScope(s)
	default:
		return ClosureScopeGlobal
	}
}

// RecurrenceType тип повторения закрытия
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// RecurrenceRule правило повторения
// Days: для weekly - ISO номера дней недели (1..7), для monthly - числа месяца (1..31)
// From/Until - границы действия в формате YYYY-MM-DD, включительно; пустая строка - без границы
type RecurrenceRule struct {
	Type  RecurrenceType
	Days  []int
	From  string
	Until string
}

// CapacityOverride частичное закрытие: доступен только Percent процентов вместимости
type CapacityOverride struct {
	Percent int
}

// Closure закрытие ресторана, зала или стола
// Для разовых закрытий используются Start/End, для повторяющихся Start/End задают время суток
type Closure struct {
	ID               int64
	Scope            ClosureScope
	RoomID           *int64
	TableID          *int64
	Start            time.Time
	End              time.Time
	Recurrence       *RecurrenceRule
	CapacityOverride *CapacityOverride
	Note             string
}

// IsRecurring true для повторяющихся закрытий
func (c *Closure) IsRecurring() bool {
	return c.Recurrence != nil
}
