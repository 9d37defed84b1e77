package models

import "time"

// JournalDB represents a journal entry row. Owner references users.id.
type JournalDB struct {
	ID        int64     `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title     string    `json:"title" db:"title" gorm:"column:title;not null;index"`
	Date      string    `json:"date" db:"date" gorm:"column:date;not null"`
	Entry     string    `json:"entry" db:"entry" gorm:"column:entry;not null"`
	Owner     int64     `json:"owner" db:"owner" gorm:"column:owner;not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null"`
}

// TableName pins the table name used by schema sync.
func (JournalDB) TableName() string { return "journals" }

// JournalChanges holds the fields of a journal update. Nil fields are left untouched.
type JournalChanges struct {
	Title *string
	Date  *string
	Entry *string
}
