package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Habits    []Habit   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Habit is a tracked habit owned by a single user. Archived is a
// soft-delete flag: it is written as false on creation and filtered on
// read, but no endpoint currently sets it.
type Habit struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"index;not null" json:"user_id"`
	Name        string       `gorm:"not null" json:"name"`
	Archived    bool         `gorm:"default:false" json:"archived"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	Completions []Completion `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

// Completion marks one habit as done on one calendar day. Presence of
// the row is the "done" signal; there is no boolean flag. Month is
// 0-based (0 = January), matching what the web client sends.
// The composite unique index guarantees at most one row per
// (habit, day, month, year) tuple.
type Completion struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HabitID uint `gorm:"index:idx_completion_tuple,unique" json:"habit_id"`
	Day     int  `gorm:"index:idx_completion_tuple,unique" json:"day"`
	Month   int  `gorm:"index:idx_completion_tuple,unique" json:"month"`
	Year    int  `gorm:"index:idx_completion_tuple,unique" json:"year"`
}

// HabitWithDays is one row of the month-scoped snapshot: a habit
// annotated with the days it was completed within a single month.
type HabitWithDays struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	CompletedDays []int  `json:"completedDays"`
}
