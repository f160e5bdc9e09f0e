// internal/app/profile.go
package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"endless-survival/internal/config"
	"endless-survival/internal/persistence"
	"endless-survival/internal/state"
)

var (
	ErrUsernameEmpty    = errors.New("username is empty")
	ErrUsernameTooShort = errors.New("username is too short")
)

// usernameMessages: текст под полем ввода для каждой ошибки
var usernameMessages = map[error]string{
	ErrUsernameEmpty:    "Please enter a name for your warrior",
	ErrUsernameTooShort: fmt.Sprintf("Name must be at least %d characters", config.UsernameMinLength),
}

// ValidateUsername обрезает пробелы и проверяет длину имени.
func ValidateUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrUsernameEmpty
	}
	if utf8.RuneCountInString(name) < config.UsernameMinLength {
		return "", ErrUsernameTooShort
	}
	return name, nil
}

// UsernameMessage возвращает сообщение для игрока.
func UsernameMessage(err error) string {
	for target, msg := range usernameMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return ""
}

// SubmitUsername принимает имя, создаёт профиль и переходит в главное меню.
// При ошибке сообщение остаётся в UsernameError.
func (g *Game) SubmitUsername(name string) error {
	valid, err := ValidateUsername(name)
	if err != nil {
		g.UsernameError = UsernameMessage(err)
		return err
	}
	g.UsernameError = ""
	g.Username = valid
	if g.ProfileID == "" {
		g.ProfileID = persistence.NewID()
	}
	if err := g.SaveProgress(); err != nil {
		log.Printf("Failed to save new profile: %v", err)
	}
	log.Printf("Profile %s created for %s", g.ProfileID, valid)
	if err := g.Modes.Transition(state.Welcome); err != nil {
		return err
	}
	return nil
}

// ProfileStat: строка экрана профиля
type ProfileStat struct {
	Label string
	Value string
}

// ProfileStats: сводка профиля для экрана профиля.
func (g *Game) ProfileStats() []ProfileStat {
	c := g.Character
	stats := []ProfileStat{
		{"Name", g.Username},
		{"Level", fmt.Sprintf("%d", c.Level)},
		{"Experience", fmt.Sprintf("%d / %d", c.Experience, c.ExperienceToNextLevel)},
		{"Max Health", fmt.Sprintf("%.0f", c.MaxHealth)},
		{"Damage", fmt.Sprintf("%.0f", c.Damage)},
		{"Speed", fmt.Sprintf("%.2f", c.Speed)},
		{"Defense", fmt.Sprintf("%.0f", c.Defense)},
		{"Gold", fmt.Sprintf("%d", c.Gold)},
	}
	for _, item := range c.Inventory {
		stats = append(stats, ProfileStat{item.Icon + " " + item.Name, fmt.Sprintf("Lv.%d  %s", item.Level, item.Description())})
	}
	for _, s := range c.UnlockedSkills() {
		stats = append(stats, ProfileStat{s.Name(), fmt.Sprintf("Lv.%d/%d", s.Level, s.Def.MaxLevel)})
	}
	return stats
}
