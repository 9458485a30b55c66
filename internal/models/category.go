package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups envelopes. The ledger does not touch it, envelopes
// only reference it for presentation purposes.
type Category struct {
	DefaultModel
	OwnerID uuid.UUID `gorm:"uniqueIndex:category_owner_name"`
	Name    string    `gorm:"uniqueIndex:category_owner_name"`
	Note    string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// BeforeDelete uncategorizes all envelopes of the category.
// UpdateColumn does not run the envelope hooks.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	return tx.Model(&Envelope{}).
		Where("category_id = ?", c.ID).
		UpdateColumn("category_id", nil).Error
}
