package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`                         // Primary key
	Email     string    `json:"email" db:"email" gorm:"column:email;type:varchar(100);not null;uniqueIndex"` // Unique login email
	Password  string    `json:"-" db:"password" gorm:"column:password;not null"`                             // bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null"`                 // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null"`                 // Last update timestamp
}

// TableName pins the table name used by schema sync.
func (UserDB) TableName() string { return "users" }
