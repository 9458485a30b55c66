package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncomeSource is where income transactions originate, e.g. a salary.
type IncomeSource struct {
	DefaultModel
	OwnerID uuid.UUID `gorm:"uniqueIndex:income_source_owner_name"`
	Name    string    `gorm:"uniqueIndex:income_source_owner_name"`
	Note    string
}

func (s *IncomeSource) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	if s.Name == "" {
		return ErrIncomeSourceNameEmpty
	}

	return nil
}
