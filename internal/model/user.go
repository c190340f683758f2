package model

// User is an account holder. Every user references exactly one role.
type User struct {
	ID            uint    `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username      *string `json:"username" gorm:"size:255;uniqueIndex"`
	Email         string  `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password      string  `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed in JSON
	ContactNumber string  `json:"contactNumber" gorm:"size:50;not null"`
	State         string  `json:"state" gorm:"size:100;not null"`
	RoleID        uint    `json:"-" gorm:"column:role_id;not null;index"`
	Role          Role    `json:"role" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName pins the table name so migrations and raw queries agree.
func (User) TableName() string { return "users" }

// UsernameValue returns the username or "" when absent.
func (u *User) UsernameValue() string {
	if u == nil || u.Username == nil {
		return ""
	}
	return *u.Username
}

// UserPatch carries the fields an update overwrites.
type UserPatch struct {
	Username *string
	Email    string
	Password string
}

// NormalizeUsername maps an empty username to nil so it is stored as NULL.
func NormalizeUsername(username *string) *string {
	if username == nil || *username == "" {
		return nil
	}
	v := *username
	return &v
}
