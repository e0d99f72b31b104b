package domain

import "fmt"

// Table стол в зале
type Table struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	Code      string `json:"code"`
	SeatsMin  int    `json:"seats_min"`
	SeatsStd  int    `json:"seats_std"`
	SeatsMax  int    `json:"seats_max"`
	JoinGroup string `json:"join_group,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// Capacity максимальное из seats_max, seats_std, seats_min
func (t *Table) Capacity() int {
	return max(t.SeatsMax, t.SeatsStd, t.SeatsMin)
}

// MinSeats нижняя граница рассадки (не меньше 1)
func (t *Table) MinSeats() int {
	if t.SeatsMin < 1 {
		return 1
	}
	return t.SeatsMin
}

// MaxSeats верхняя граница рассадки; если seats_max не задан, используется Capacity
func (t *Table) MaxSeats() int {
	if t.SeatsMax > 0 {
		return t.SeatsMax
	}
	return t.Capacity()
}

// Fits true, если компания размера party помещается за стол без объединения
func (t *Table) Fits(party int) bool {
	return party >= t.MinSeats() && party <= t.MaxSeats()
}

// MergeGroupKey группа, внутри которой столы можно объединять
// Столы без join_group объединяются в пределах своего зала
func (t *Table) MergeGroupKey() string {
	if t.JoinGroup != "" {
		return t.JoinGroup
	}
	return fmt.Sprintf("room_%d", t.RoomID)
}
