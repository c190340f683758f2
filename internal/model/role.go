package model

// Role is a named category assigned to users.
type Role struct {
	ID   uint   `json:"roleId" gorm:"column:role_id;primaryKey;autoIncrement"`
	Name string `json:"roleName" gorm:"column:role_name;size:100;uniqueIndex;not null"`
}

func (Role) TableName() string { return "roles" }

// RolePatch carries the fields a role update overwrites.
type RolePatch struct {
	Name string
}
