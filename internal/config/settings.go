package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	PoolSize int    `mapstructure:"pool_size"`
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.Username, d.Password, d.Name)
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
}

type ElevenLabsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	// DefaultModelID is applied when a synthesis request names no model.
	DefaultModelID string `mapstructure:"default_model_id"`
}

type StorageConfig struct {
	// Supabase project URL, e.g. https://abc.supabase.co
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
	Bucket     string `mapstructure:"bucket"`
}

type AudioConfig struct {
	// MaxUploadBytes caps clone sample uploads. Vendor limit is 25MB.
	MaxUploadBytes  int64  `mapstructure:"max_upload_bytes"`
	WaveformColumns int    `mapstructure:"waveform_columns"`
	TempDir         string `mapstructure:"temp_dir"`
}

type Settings struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	ElevenLabs ElevenLabsConfig `mapstructure:"elevenlabs"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Env        string           `mapstructure:"env"`
	Debug      bool             `mapstructure:"debug" default:"false"`
}

func Load() (*Settings, error) {
	// Load settings from a configuration file or environment variables
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.pool_size", 20)
	viper.SetDefault("elevenlabs.base_url", "https://api.elevenlabs.io")
	viper.SetDefault("elevenlabs.default_model_id", "eleven_multilingual_v2")
	viper.SetDefault("storage.bucket", "voice-samples")
	viper.SetDefault("audio.max_upload_bytes", 25*1024*1024)
	viper.SetDefault("audio.waveform_columns", 400)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &settings, nil
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
