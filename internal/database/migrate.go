package database

import (
	"gorm.io/gorm"

	generationrepo "voicesmith/internal/repository/generation"
	voicerepo "voicesmith/internal/repository/voice"
)

func MigrateDB(db *gorm.DB) {
	db.AutoMigrate(
		&voicerepo.VoiceEntity{},
		&generationrepo.GenerationEntity{},
	)
}
