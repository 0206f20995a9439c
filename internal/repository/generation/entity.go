package generation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voicesmith/internal/domains/generation"
)

// GenerationEntity represents the database entity for Generation with GORM tags
type GenerationEntity struct {
	ID        uuid.UUID `gorm:"primaryKey;type:char(36);not null"`
	UserID    string    `gorm:"column:user_id;type:varchar(128);not null;index"`
	VoiceID   uuid.UUID `gorm:"column:voice_id;type:char(36);not null;index"`
	Text      string    `gorm:"column:text;type:text;not null"`
	ModelID   string    `gorm:"column:model_id;type:varchar(64)"`
	CharCount int       `gorm:"column:char_count"`
	CreatedAt time.Time `gorm:"autoCreateTime(3)"`
}

// TableName returns the table name for GORM
func (GenerationEntity) TableName() string {
	return "generations"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (g *GenerationEntity) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// ToDomain converts GenerationEntity to domain Generation
func (g *GenerationEntity) ToDomain() *generation.Generation {
	return &generation.Generation{
		ID:        g.ID,
		UserID:    g.UserID,
		VoiceID:   g.VoiceID,
		Text:      g.Text,
		ModelID:   g.ModelID,
		CharCount: g.CharCount,
		CreatedAt: g.CreatedAt,
	}
}

// FromDomain converts domain Generation to GenerationEntity
func (g *GenerationEntity) FromDomain(d *generation.Generation) {
	g.ID = d.ID
	g.UserID = d.UserID
	g.VoiceID = d.VoiceID
	g.Text = d.Text
	g.ModelID = d.ModelID
	g.CharCount = d.CharCount
	g.CreatedAt = d.CreatedAt
}
