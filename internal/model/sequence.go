package model

// Sequence 是ID allocator的counter record
// Version欄位用於optimistic concurrency compare-and-swap
type Sequence struct {
	Name    string `gorm:"primaryKey;type:varchar(255)"`
	Value   int64  `gorm:"not null;default:0"`
	Version int64  `gorm:"not null;default:0"`
}
