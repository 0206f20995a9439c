package generation

import (
	"fmt"

	"gorm.io/gorm"

	"voicesmith/internal/domains/generation"
)

type GormGenerationRepo struct {
	db *gorm.DB
}

// Create implements generation.GenerationRepository
func (g *GormGenerationRepo) Create(gen *generation.Generation) error {
	entity := &GenerationEntity{}
	entity.FromDomain(gen)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create generation: %w", err)
	}

	*gen = *entity.ToDomain()
	return nil
}

// List implements generation.GenerationRepository
func (g *GormGenerationRepo) List(filters generation.ListGenerationsRequest) ([]generation.Generation, int64, error) {
	var entities []GenerationEntity
	var total int64

	query := g.db.Model(&GenerationEntity{})
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.VoiceID != "" {
		query = query.Where("voice_id = ?", filters.VoiceID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count generations: %w", err)
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list generations: %w", err)
	}

	generations := make([]generation.Generation, len(entities))
	for i, entity := range entities {
		generations[i] = *entity.ToDomain()
	}

	return generations, total, nil
}

// DeleteByVoiceID implements generation.GenerationRepository
func (g *GormGenerationRepo) DeleteByVoiceID(voiceID string) error {
	if err := g.db.Unscoped().Where("voice_id = ?", voiceID).Delete(&GenerationEntity{}).Error; err != nil {
		return fmt.Errorf("failed to delete generations: %w", err)
	}
	return nil
}

// NewGormGenerationRepo creates a new GORM-based generation repository
func NewGormGenerationRepo(db *gorm.DB) generation.GenerationRepository {
	return &GormGenerationRepo{db: db}
}
