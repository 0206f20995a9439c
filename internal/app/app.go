package app

import (
	"github.com/go-redis/redis"
	"gorm.io/gorm"

	"voicesmith/internal/config"
	"voicesmith/internal/domains/generation"
	"voicesmith/internal/domains/voice"
	"voicesmith/internal/elevenlabs"
	"voicesmith/internal/handlers"
	generationRepo "voicesmith/internal/repository/generation"
	voiceRepo "voicesmith/internal/repository/voice"
	"voicesmith/internal/server"
	"voicesmith/internal/storage"
	"voicesmith/pkg/Logger"
)

// App represents the application with all its dependencies
type App struct {
	Config *config.Settings
	Logger *Logger.Logger
	DB     *gorm.DB
	RC     *redis.Client

	// repos
	VoiceRepo      voice.VoiceRepository
	GenerationRepo generation.GenerationRepository

	// services
	VoiceService      voice.VoiceService
	CloneService      voice.CloneService
	GenerationService generation.GenerationService

	// vendor
	Vendor *elevenlabs.Client
	Store  *storage.SupabaseStore

	ServerDeps server.Dependencies
}

// NewApp creates a new application instance with all dependencies properly wired
func NewApp(cfg *config.Settings, logger *Logger.Logger, db *gorm.DB, rc *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		RC:     rc,
	}

	if err := app.setupDependencies(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupDependencies initializes all application dependencies
func (a *App) setupDependencies() error {
	// repositories
	a.VoiceRepo = voiceRepo.NewGormVoiceRepo(a.DB)
	a.GenerationRepo = generationRepo.NewGormGenerationRepo(a.DB)

	// vendor client with its redis read cache
	cache := elevenlabs.NewCache(a.RC, a.Logger)
	a.Vendor = elevenlabs.NewClient(a.Config.ElevenLabs, cache, a.Logger)
	a.Store = storage.NewSupabaseStore(a.Config.Storage, a.Logger)

	// services
	a.VoiceService = voice.NewVoiceService(a.VoiceRepo, a.Logger)
	a.GenerationService = generation.NewGenerationService(a.GenerationRepo, a.Logger)
	a.CloneService = voice.NewCloneService(a.VoiceService, a.Vendor, a.Store, a.Config.Audio.MaxUploadBytes, a.Logger)

	// handlers
	voiceHandler := handlers.NewVoiceHandler(a.VoiceService, a.Logger)
	cloningHandler := handlers.NewCloningHandler(
		a.CloneService,
		a.VoiceService,
		a.GenerationService,
		a.Vendor,
		a.Config.Audio.MaxUploadBytes,
		a.Logger,
	)
	generationHandler := handlers.NewGenerationHandler(a.GenerationService, a.Logger)
	captureHandler := handlers.NewCaptureHandler(
		a.Config.Audio.WaveformColumns,
		a.Config.Audio.TempDir,
		a.CloneService.Events(),
		a.Logger,
	)

	a.ServerDeps = server.NewServerDependencies(
		a.Logger,
		a.Config,
		voiceHandler,
		cloningHandler,
		generationHandler,
		captureHandler,
	)

	return nil
}

// GetServerDependencies returns the server dependencies
func (a *App) GetServerDependencies() server.Dependencies {
	return a.ServerDeps
}
