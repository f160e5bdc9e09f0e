package app

import (
	"testing"

	"endless-survival/internal/config"
	"endless-survival/internal/event"
	"endless-survival/internal/persistence"
	"endless-survival/internal/state"
	"endless-survival/internal/utils"
)

type fakeAudio struct {
	played []string
	muted  bool
}

func (a *fakeAudio) PlaySound(name string) { a.played = append(a.played, name) }

func (a *fakeAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *fakeAudio) count(name string) int {
	n := 0
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

type testGame struct {
	*Game
	storage *persistence.MemoryStore
	audio   *fakeAudio
}

// newTestGame создаёт игру с профилем "tester" в главном меню
func newTestGame(t *testing.T, tweak func(*config.Settings)) *testGame {
	t.Helper()
	settings := config.DefaultSettings()
	if tweak != nil {
		tweak(settings)
	}
	tg := &testGame{storage: persistence.NewMemoryStore(), audio: &fakeAudio{}}
	tg.Game = NewGame(Options{
		Settings: settings,
		Storage:  tg.storage,
		Audio:    tg.audio,
		Rng:      utils.NewPRNGService(42),
	})
	if err := tg.SubmitUsername("tester"); err != nil {
		t.Fatalf("SubmitUsername: %v", err)
	}
	return tg
}

// startPlaying переводит игру в забег
func (tg *testGame) startPlaying(t *testing.T) {
	t.Helper()
	tg.Perform(ActionStart)
	if !tg.Modes.Is(state.Playing) {
		t.Fatalf("Expected playing, got %s", tg.Modes.Current())
	}
}

func eventLevelUp() event.Event {
	return event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: 2, X: 100, Y: 100}}
}
