package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule suggests an envelope for an expense based on its payee.
// Match is a glob pattern, globbing is case sensitive.
type MatchRule struct {
	DefaultModel
	OwnerID    uuid.UUID
	EnvelopeID uuid.UUID
	Envelope   Envelope `json:"-"`
	Priority   uint
	Match      string
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrMatchRuleMatchEmpty
	}

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return tx.First(&Envelope{}, toSave.EnvelopeID).Error
}

// SuggestEnvelope returns the envelope of the first match rule whose
// pattern matches the payee. Rules are applied in priority order, so the
// first match wins.
func SuggestEnvelope(db *gorm.DB, owner uuid.UUID, payee string) (Envelope, error) {
	var rules []MatchRule
	err := db.
		Where(&MatchRule{OwnerID: owner}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return Envelope{}, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, payee) {
			var envelope Envelope
			err = db.First(&envelope, rule.EnvelopeID).Error
			return envelope, err
		}
	}

	return Envelope{}, fmt.Errorf("%w match rule matching the payee", ErrResourceNotFound)
}
