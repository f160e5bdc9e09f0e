// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings: настройки запуска, читаются из YAML-файла.
// Отсутствующие в файле поля сохраняют значения по умолчанию.
type Settings struct {
	Seed            int64  `yaml:"seed"`
	SaveDir         string `yaml:"save_dir"`
	DatabaseDSN     string `yaml:"database_dsn"`
	DefinitionsFile string `yaml:"definitions_file"`
	ImageDir        string `yaml:"image_dir"`
	RewardChests    bool   `yaml:"reward_chests"`

	// Через сколько секунд экран поражения сам возвращается в меню, 0 = никогда
	GameOverReturnSeconds float64 `yaml:"game_over_return_seconds"`

	Sound SoundSettings `yaml:"sound"`
	Cloud CloudSettings `yaml:"cloud"`
}

// SoundSettings: громкость и расположение звуков
type SoundSettings struct {
	Dir         string  `yaml:"dir"`
	Music       string  `yaml:"music"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	MusicVolume float64 `yaml:"music_volume"`
	Muted       bool    `yaml:"muted"`
}

// CloudSettings: параметры облачной синхронизации прогресса
type CloudSettings struct {
	BaseURL        string  `yaml:"base_url"`
	Token          string  `yaml:"token"`
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		SaveDir:      "saves",
		ImageDir:     "assets/images",
		RewardChests: true,
		Sound: SoundSettings{
			Dir:         "assets/sounds",
			SFXVolume:   1.0,
			MusicVolume: 0.7,
		},
		Cloud: CloudSettings{
			TimeoutSeconds: 10,
		},
	}
}

// LoadSettings читает настройки из файла. Пустой путь или отсутствующий файл
// дают настройки по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(file, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	settings.normalize()
	return settings, nil
}

func (s *Settings) normalize() {
	s.Sound.SFXVolume = clampUnit(s.Sound.SFXVolume)
	s.Sound.MusicVolume = clampUnit(s.Sound.MusicVolume)
	if s.GameOverReturnSeconds < 0 {
		s.GameOverReturnSeconds = 0
	}
	if s.Cloud.TimeoutSeconds <= 0 {
		s.Cloud.TimeoutSeconds = 10
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
