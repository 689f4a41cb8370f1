package models

import (
	"time"
)

// Role IDs as seeded in the roles table.
const (
	RoleStudent    = 1
	RoleScout      = 2
	RoleScoutAdmin = 3
)

type User struct {
	UserID    int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName string     `gorm:"column:first_name" json:"first_name"`
	LastName  string     `gorm:"column:last_name" json:"last_name"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	Password  string     `gorm:"column:password" json:"-"`
	RoleID    int        `gorm:"column:role_id" json:"role_id"`
	AvatarURL *string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role           Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID" json:"student_profile,omitempty"`
}

type Role struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// StudentProfile carries the athletic profile shown on submission cards and
// searched by the review queue filters.
type StudentProfile struct {
	ProfileID      int        `gorm:"primaryKey;column:profile_id" json:"profile_id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	School         string     `gorm:"column:school" json:"school"`
	Sport          string     `gorm:"column:sport" json:"sport"`
	Position       string     `gorm:"column:position" json:"position"`
	GraduationYear *int       `gorm:"column:graduation_year" json:"graduation_year,omitempty"`
	City           *string    `gorm:"column:city" json:"city,omitempty"`
	State          *string    `gorm:"column:state" json:"state,omitempty"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}
