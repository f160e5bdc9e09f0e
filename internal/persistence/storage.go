// internal/persistence/storage.go
package persistence

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// InventoryItem: предмет снаряжения в сохранении
type InventoryItem struct {
	Type  string `json:"type"`
	Level int    `json:"level"`
}

// SkillLevel: уровень навыка в сохранении
type SkillLevel struct {
	Name         string `json:"name"`
	CurrentLevel int    `json:"currentLevel"`
}

// Progress: прогресс персонажа между забегами
type Progress struct {
	ProfileID             string          `json:"profileId"`
	Username              string          `json:"username"`
	MaxHealth             float64         `json:"maxHealth"`
	Damage                float64         `json:"damage"`
	Speed                 float64         `json:"speed"`
	Level                 int             `json:"level"`
	Experience            int             `json:"experience"`
	ExperienceToNextLevel int             `json:"experienceToNextLevel"`
	Gold                  int             `json:"gold"`
	Inventory             []InventoryItem `json:"inventory"`
	Skills                []SkillLevel    `json:"skills"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// CharacterState: состояние персонажа внутри забега
type CharacterState struct {
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	Health                float64 `json:"health"`
	MaxHealth             float64 `json:"maxHealth"`
	Damage                float64 `json:"damage"`
	Speed                 float64 `json:"speed"`
	Level                 int     `json:"level"`
	Experience            int     `json:"experience"`
	ExperienceToNextLevel int     `json:"experienceToNextLevel"`
	Gold                  int     `json:"gold"`
}

// RunSnapshot: сохранение посреди забега (F5/F9)
type RunSnapshot struct {
	ID        string         `json:"id"`
	ProfileID string         `json:"profileId"`
	Score     int            `json:"score"`
	GameTime  float64        `json:"gameTime"`
	Character CharacterState `json:"character"`
	SavedAt   time.Time      `json:"savedAt"`
}

// Storage: хранилище прогресса и сохранений забега
type Storage interface {
	SaveProgress(progress *Progress) error
	LoadProgress(profileID string) (*Progress, error)
	// LatestProgress: последний сохранённый профиль
	LatestProgress() (*Progress, error)
	SaveRun(run *RunSnapshot) error
	// LoadRun: последнее сохранение забега профиля
	LoadRun(profileID string) (*RunSnapshot, error)
	Close() error
}

// NewID возвращает новый идентификатор профиля или сохранения.
func NewID() string {
	return uuid.NewString()
}

// ValidID проверяет, что строка является UUID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Clone делает глубокую копию прогресса
func (p *Progress) Clone() *Progress {
	c := *p
	c.Inventory = append([]InventoryItem(nil), p.Inventory...)
	c.Skills = append([]SkillLevel(nil), p.Skills...)
	return &c
}

func (r *RunSnapshot) clone() *RunSnapshot {
	c := *r
	return &c
}
