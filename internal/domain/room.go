package domain

// Room зал ресторана
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"is_active"`
}

// RoomCapacity агрегированная вместимость зала
// Capacity - вместимость зала, TableCapacity - сумма мест его столов
type RoomCapacity struct {
	Capacity      int
	TableCapacity int
}
