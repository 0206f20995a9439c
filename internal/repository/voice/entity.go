package voice

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voicesmith/internal/domains/voice"
)

// SettingsJSON is a custom type for handling JSON serialization of voice settings
type SettingsJSON voice.Settings

// Value implements driver.Valuer interface for GORM
func (s SettingsJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface for GORM
func (s *SettingsJSON) Scan(value interface{}) error {
	if value == nil {
		*s = SettingsJSON(voice.DefaultSettings())
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		*s = SettingsJSON(voice.DefaultSettings())
		return nil
	}
}

// VoiceEntity represents the database entity for Voice with GORM tags
type VoiceEntity struct {
	ID              uuid.UUID    `gorm:"primaryKey;type:char(36);not null"`
	UserID          string       `gorm:"column:user_id;type:varchar(128);not null;index"`
	Name            string       `gorm:"column:name;type:varchar(255);not null"`
	Description     string       `gorm:"column:description;type:text"`
	Category        string       `gorm:"column:category;type:varchar(64);index"`
	Language        string       `gorm:"column:language;type:varchar(16);index"`
	AudioURL        string       `gorm:"column:audio_url;type:text"`
	DurationSeconds float64      `gorm:"column:duration_seconds"`
	ExternalVoiceID string       `gorm:"column:external_voice_id;type:varchar(64);index"`
	Provider        string       `gorm:"column:provider;type:varchar(32);not null"`
	ModelID         string       `gorm:"column:model_id;type:varchar(64)"`
	Settings        SettingsJSON `gorm:"type:json;column:settings"`
	CreatedAt       time.Time    `gorm:"autoCreateTime(3)"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime(3)"`
}

// TableName returns the table name for GORM
func (VoiceEntity) TableName() string {
	return "voices"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (v *VoiceEntity) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// ToDomain converts VoiceEntity to domain Voice
func (v *VoiceEntity) ToDomain() *voice.Voice {
	return &voice.Voice{
		ID:              v.ID,
		UserID:          v.UserID,
		Name:            v.Name,
		Description:     v.Description,
		Category:        v.Category,
		Language:        v.Language,
		AudioURL:        v.AudioURL,
		DurationSeconds: v.DurationSeconds,
		ExternalVoiceID: v.ExternalVoiceID,
		Provider:        v.Provider,
		ModelID:         v.ModelID,
		Settings:        voice.Settings(v.Settings),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// FromDomain converts domain Voice to VoiceEntity
func (v *VoiceEntity) FromDomain(d *voice.Voice) {
	v.ID = d.ID
	v.UserID = d.UserID
	v.Name = d.Name
	v.Description = d.Description
	v.Category = d.Category
	v.Language = d.Language
	v.AudioURL = d.AudioURL
	v.DurationSeconds = d.DurationSeconds
	v.ExternalVoiceID = d.ExternalVoiceID
	v.Provider = d.Provider
	v.ModelID = d.ModelID
	v.Settings = SettingsJSON(d.Settings)
	v.CreatedAt = d.CreatedAt
	v.UpdatedAt = d.UpdatedAt
}

// NewVoiceEntityFromDomain creates a new VoiceEntity from domain Voice
func NewVoiceEntityFromDomain(d *voice.Voice) *VoiceEntity {
	entity := &VoiceEntity{}
	entity.FromDomain(d)
	return entity
}
