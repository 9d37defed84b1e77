package models

import "time"

// ProfileDB represents a profile row. UserID is unique: one profile per user.
type ProfileDB struct {
	ID          int64     `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FirstName   *string   `json:"firstName" db:"first_name" gorm:"column:first_name"`
	LastName    *string   `json:"lastName" db:"last_name" gorm:"column:last_name"`
	UserName    *string   `json:"userName" db:"user_name" gorm:"column:user_name"`
	PhoneNumber *string   `json:"phoneNumber" db:"phone_number" gorm:"column:phone_number"`
	Bio         *string   `json:"bio" db:"bio" gorm:"column:bio"`
	UserID      int64     `json:"userId" db:"user_id" gorm:"column:user_id;not null;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null"`
}

// TableName pins the table name used by schema sync.
func (ProfileDB) TableName() string { return "profiles" }

// ProfileFields carries profile values from a create or update request.
// On update, nil fields keep their stored value.
type ProfileFields struct {
	FirstName   *string
	LastName    *string
	UserName    *string
	PhoneNumber *string
	Bio         *string
}

// ProfileOwner is the public part of a user embedded in a profile view.
type ProfileOwner struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Journals []JournalDB `json:"journals"`
}

// ProfileView is a profile joined with its owner and the owner's journal entries.
type ProfileView struct {
	ProfileDB
	User ProfileOwner `json:"user"`
}
