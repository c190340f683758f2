package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"userservice/internal/model"
)

// DefaultRoles are inserted by the seed command when no names are given.
var DefaultRoles = []string{"admin", "customer"}

// SeedRoles inserts every named role that is not yet present and returns
// the number of rows created. Existing roles are left untouched.
func SeedRoles(gdb *gorm.DB, names ...string) (int, error) {
	if len(names) == 0 {
		names = DefaultRoles
	}

	created := 0
	err := gdb.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			var existing int64
			if err := tx.Model(&model.Role{}).Where("role_name = ?", name).Count(&existing).Error; err != nil {
				return fmt.Errorf("look up role %q: %w", name, err)
			}
			if existing > 0 {
				continue
			}
			if err := tx.Create(&model.Role{Name: name}).Error; err != nil {
				return fmt.Errorf("seed role %q: %w", name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
