// internal/audio/sound_manager.go
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"endless-survival/internal/assets"
	"endless-survival/internal/config"
	"endless-survival/internal/system"
)

const (
	sampleRate = 44100
	soundExt   = ".wav"
)

// Cues: звуки, которые загружаются при старте
var Cues = []string{
	system.SoundAttack,
	system.SoundPlayerHit,
	system.SoundMonsterDeath,
	system.SoundCollect,
	system.SoundLevelUp,
	system.SoundPurchase,
	system.SoundGameOver,
}

// SoundManager проигрывает звуковые эффекты и фоновую музыку.
// PlaySound не блокирует: незагруженный звук просто пропускается.
type SoundManager struct {
	mu          sync.Mutex
	ctx         *audio.Context
	sounds      *assets.Cache[[]byte]
	music       *audio.Player
	sfxVolume   float64
	musicVolume float64
	muted       bool
}

func NewSoundManager(settings config.SoundSettings) *SoundManager {
	return &SoundManager{
		ctx:         audio.NewContext(sampleRate),
		sounds:      assets.NewCache(assets.FileLoader(settings.Dir, decodeWAV), nil),
		sfxVolume:   settings.SFXVolume,
		musicVolume: settings.MusicVolume,
		muted:       settings.Muted,
	}
}

// decodeWAV читает wav-файл целиком в PCM для NewPlayerFromBytes
func decodeWAV(path string) ([]byte, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav: %w", err)
	}
	return pcm, nil
}

// Preload загружает звуки в фоне.
func (m *SoundManager) Preload(names ...string) <-chan error {
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = name + soundExt
	}
	return m.sounds.Preload(keys...)
}

// PlaySound запускает звук. Одинаковые звуки могут накладываться.
func (m *SoundManager) PlaySound(name string) {
	m.mu.Lock()
	muted, volume := m.muted, m.sfxVolume
	m.mu.Unlock()
	if muted || volume <= 0 {
		return
	}
	pcm, ok := m.sounds.Get(name + soundExt)
	if !ok {
		return
	}
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
}

// PlayMusic зацикливает фоновую музыку из файла.
func (m *SoundManager) PlayMusic(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read music: %w", err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(file))
	if err != nil {
		return fmt.Errorf("failed to decode music: %w", err)
	}
	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return fmt.Errorf("failed to create music player: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music != nil {
		m.music.Close()
	}
	m.music = player
	m.applyMusicVolume()
	player.Play()
	log.Printf("Playing music %s", path)
	return nil
}

func (m *SoundManager) applyMusicVolume() {
	if m.music == nil {
		return
	}
	if m.muted {
		m.music.SetVolume(0)
		return
	}
	m.music.SetVolume(m.musicVolume)
}

// ToggleMute переключает звук и возвращает новое состояние.
func (m *SoundManager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	m.applyMusicVolume()
	return m.muted
}

func (m *SoundManager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *SoundManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music != nil {
		err := m.music.Close()
		m.music = nil
		return err
	}
	return nil
}
