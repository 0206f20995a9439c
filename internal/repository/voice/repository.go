package voice

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"voicesmith/internal/domains/voice"
)

type GormVoiceRepo struct {
	db *gorm.DB
}

// Create implements voice.VoiceRepository
func (g *GormVoiceRepo) Create(v *voice.Voice) error {
	entity := NewVoiceEntityFromDomain(v)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create voice: %w", err)
	}

	*v = *entity.ToDomain()
	return nil
}

// GetByID implements voice.VoiceRepository
func (g *GormVoiceRepo) GetByID(id string) (*voice.Voice, error) {
	var entity VoiceEntity
	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voice.ErrVoiceNotFound
		}
		return nil, fmt.Errorf("failed to get voice by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// List implements voice.VoiceRepository
func (g *GormVoiceRepo) List(filters voice.ListVoicesRequest) ([]voice.Voice, int64, error) {
	var entities []VoiceEntity
	var total int64

	query := g.db.Model(&VoiceEntity{})

	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Language != "" {
		query = query.Where("language = ?", filters.Language)
	}
	if filters.Search != "" {
		// Case-insensitive match over name and description.
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count voices: %w", err)
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list voices: %w", err)
	}

	voices := make([]voice.Voice, len(entities))
	for i, entity := range entities {
		voices[i] = *entity.ToDomain()
	}

	return voices, total, nil
}

// Update implements voice.VoiceRepository
func (g *GormVoiceRepo) Update(id string, updates voice.UpdateVoiceRequest) (*voice.Voice, error) {
	var entity VoiceEntity
	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voice.ErrVoiceNotFound
		}
		return nil, fmt.Errorf("failed to get voice for update: %w", err)
	}

	if updates.Name != nil && *updates.Name == "" {
		return nil, voice.ErrInvalidVoiceData
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Description != nil {
		updateMap["description"] = *updates.Description
	}
	if updates.Category != nil {
		updateMap["category"] = *updates.Category
	}
	if updates.Language != nil {
		updateMap["language"] = *updates.Language
	}
	if updates.Settings != nil {
		updateMap["settings"] = SettingsJSON(*updates.Settings)
	}

	if len(updateMap) > 0 {
		if err := g.db.Model(&entity).Updates(updateMap).Error; err != nil {
			return nil, fmt.Errorf("failed to update voice: %w", err)
		}
	}

	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, fmt.Errorf("failed to get updated voice: %w", err)
	}

	return entity.ToDomain(), nil
}

// Delete implements voice.VoiceRepository (hard delete)
func (g *GormVoiceRepo) Delete(id string) error {
	result := g.db.Unscoped().Where("id = ?", id).Delete(&VoiceEntity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete voice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return voice.ErrVoiceNotFound
	}
	return nil
}

// NewGormVoiceRepo creates a new GORM-based voice repository
func NewGormVoiceRepo(db *gorm.DB) voice.VoiceRepository {
	return &GormVoiceRepo{db: db}
}
