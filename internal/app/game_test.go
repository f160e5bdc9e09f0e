package app

import (
	"math"
	"testing"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/state"
	"endless-survival/internal/system"
)

func TestNewGameStartsWithUsernameEntry(t *testing.T) {
	g := NewGame(Options{})
	if !g.Modes.Is(state.Username) {
		t.Errorf("Fresh install must ask for a name, got %s", g.Modes.Current())
	}
	cx, cy := g.Character.Center()
	if cx != config.MapWidth/2 || cy != config.MapHeight/2 {
		t.Errorf("Character must start at the map center, got (%v, %v)", cx, cy)
	}
}

func TestDeltaTimeClamp(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"Normal frame", 16, 16},
		{"At the limit", 100, 100},
		{"Stalled tab", 5000, 100},
		{"Negative", -20, 0},
		{"NaN", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			g.startPlaying(t)
			g.Update(tt.dt)
			if g.Run.GameTime != tt.expected {
				t.Errorf("Expected game time %v, got %v", tt.expected, g.Run.GameTime)
			}
		})
	}
}

func TestNaNFrameKeepsTimersRunning(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	g.SpawnSystem.SpawnTimer = -1e9 // без новых монстров
	g.Character.AttackCooldown.Set(config.CharacterAttackCooldown)

	g.Update(math.NaN())
	g.Update(16)
	if g.Run.GameTime != 16 {
		t.Errorf("Expected game time 16 after NaN frame, got %v", g.Run.GameTime)
	}
	if math.IsNaN(g.SpawnSystem.SpawnTimer) || math.IsNaN(g.Character.AttackCooldown.Remaining) {
		t.Fatalf("NaN leaked into timers: spawn=%v attack=%v", g.SpawnSystem.SpawnTimer, g.Character.AttackCooldown.Remaining)
	}
	for i := 0; i < 20; i++ {
		g.Update(16)
	}
	if !g.Character.AttackCooldown.Done() {
		t.Errorf("Attack cooldown must expire after a NaN frame, remaining %v", g.Character.AttackCooldown.Remaining)
	}
}

func TestSimulationPausedOutsidePlaying(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	g.Update(16)
	g.Perform(ActionToggleShop)
	if !g.Modes.Is(state.Shop) {
		t.Fatalf("Expected shop, got %s", g.Modes.Current())
	}
	before := g.Run.GameTime
	g.Update(50)
	if g.Run.GameTime != before {
		t.Error("Shop must pause the run")
	}

	g.Perform(ActionToggleShop)
	if !g.Modes.Is(state.Playing) || g.Run.GameTime != before {
		t.Error("Leaving the shop must resume the same run")
	}
}

func TestEffectsAnimateInShop(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	g.VisualEffectSystem.OnEvent(eventLevelUp())
	g.Perform(ActionToggleShop)
	for elapsed := 0.0; elapsed < config.LevelUpEffectLife; elapsed += config.MaxDeltaTime {
		g.Update(config.MaxDeltaTime)
	}
	if g.VisualEffectSystem.Count() != 0 {
		t.Error("Effects must keep expiring while the shop is open")
	}
}

func TestMovementAndMapBounds(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	x0 := g.Character.X
	g.HandleInput(Input{Right: true})
	g.Update(16)
	if g.Character.X != x0+config.CharacterSpeed {
		t.Errorf("Expected one frame of movement, got %v", g.Character.X-x0)
	}

	g.Character.X, g.Character.Y = 1, 1
	g.HandleInput(Input{Left: true, Up: true})
	g.Update(100)
	if g.Character.X != 0 || g.Character.Y != 0 {
		t.Errorf("Character must stay inside the map, got (%v, %v)", g.Character.X, g.Character.Y)
	}
}

func TestInputAxisDiagonal(t *testing.T) {
	dx, dy := Input{Up: true, Right: true}.Axis()
	if dx != config.DiagonalFactor || dy != -config.DiagonalFactor {
		t.Errorf("Unexpected diagonal (%v, %v)", dx, dy)
	}
	dx, dy = Input{Left: true, Right: true}.Axis()
	if dx != 0 || dy != 0 {
		t.Error("Opposite keys must cancel out")
	}
}

func TestKillAwardsScoreAndDrops(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	cx, cy := g.Character.Center()
	m := entity.NewMonster(g.Store.NewEntity(), cx+100-15, cy-15, defs.MonsterNormal, 1, nil)
	m.Health = 1
	g.Store.AddMonster(m)
	g.SpawnSystem.SpawnTimer = -1e9 // без новых монстров

	for i := 0; i < 30 && len(g.Store.Monsters) > 0; i++ {
		g.Update(16)
	}
	if g.Run.Score != config.ScorePerKill {
		t.Fatalf("Expected score %d, got %d", config.ScorePerKill, g.Run.Score)
	}
	if g.StatsSystem.Stats.MonstersDestroyed != 1 {
		t.Error("Kill must be counted")
	}
	if g.audio.count(system.SoundMonsterDeath) != 1 || g.audio.count(system.SoundAttack) == 0 {
		t.Errorf("Expected attack and death sounds, got %v", g.audio.played)
	}
	if g.VisualEffectSystem.Count() == 0 {
		t.Error("Kill must leave effects")
	}
}

func TestEntityCaps(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	for i := 0; i < config.MaxMonsters+10; i++ {
		g.Store.AddMonster(entity.NewMonster(g.Store.NewEntity(), 10, 10, defs.MonsterNormal, 1, nil))
	}
	first := g.Store.Monsters[10].ID
	g.Update(1)
	if len(g.Store.Monsters) > config.MaxMonsters {
		t.Fatalf("Expected at most %d monsters, got %d", config.MaxMonsters, len(g.Store.Monsters))
	}
	if g.Store.Monsters[0].ID != first {
		t.Error("Oldest monsters must be evicted first")
	}
}

func TestDeathGoesToRewardAndPersists(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	g.Character.Gold = 77
	g.Character.Health = 0
	g.Update(16)

	if !g.Modes.Is(state.Reward) {
		t.Fatalf("Expected reward screen, got %s", g.Modes.Current())
	}
	if len(g.Chests) != config.RewardChestCount {
		t.Errorf("Expected %d chests, got %d", config.RewardChestCount, len(g.Chests))
	}
	if g.audio.count(system.SoundGameOver) != 1 {
		t.Error("Death must play the game over sound")
	}
	saved, err := g.storage.LoadProgress(g.ProfileID)
	if err != nil || saved.Gold != 77 {
		t.Errorf("Progress must be saved on death: %+v %v", saved, err)
	}
}

func TestGameOverAutoReturn(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) {
		s.RewardChests = false
		s.GameOverReturnSeconds = 1
	})
	g.startPlaying(t)
	g.Character.Health = 0
	g.Update(16)
	if !g.Modes.Is(state.GameOver) {
		t.Fatalf("Expected game over, got %s", g.Modes.Current())
	}
	for i := 0; i < 9; i++ {
		g.Update(100)
	}
	if !g.Modes.Is(state.GameOver) {
		t.Fatal("Auto return must wait the full delay")
	}
	g.Update(100)
	if !g.Modes.Is(state.Welcome) {
		t.Errorf("Expected welcome after the delay, got %s", g.Modes.Current())
	}
}

func TestRestartKeepsProgression(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.RewardChests = false })
	g.startPlaying(t)
	g.Character.LevelUp()
	g.Character.Gold = 40
	g.Run.Score = 300
	g.Store.AddMonster(entity.NewMonster(g.Store.NewEntity(), 10, 10, defs.MonsterNormal, 1, nil))
	g.Character.Health = 0
	g.Update(16)

	g.Perform(ActionRestart)
	if !g.Modes.Is(state.Playing) {
		t.Fatalf("Expected playing after restart, got %s", g.Modes.Current())
	}
	c := g.Character
	if c.Level != 2 || c.Gold != 40 || c.Health != c.MaxHealth {
		t.Errorf("Restart must keep level and gold and heal fully: %+v", c)
	}
	if g.Run.Score != 0 || g.Run.GameTime != 0 || len(g.Store.Monsters) != 0 {
		t.Error("Restart must reset the run")
	}
}

func TestChestSelectedOnce(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	g.Character.Health = 0
	g.Update(16)

	g.Perform(ActionRestart)
	if !g.Modes.Is(state.Reward) {
		t.Fatal("Restart must wait for a chest to be chosen")
	}

	chest := g.Chests[1]
	if chest.Gold < config.ChestGoldMin || chest.Gold > config.ChestGoldMax ||
		chest.Experience < config.ChestExpMin || chest.Experience > config.ChestExpMax {
		t.Errorf("Chest out of range: %+v", chest)
	}
	gold := g.Character.Gold
	if !g.SelectChest(1) {
		t.Fatal("First selection must succeed")
	}
	if g.Character.Gold != gold+chest.Gold {
		t.Errorf("Expected +%d gold, got %d", chest.Gold, g.Character.Gold-gold)
	}
	if g.SelectChest(0) || g.SelectChest(1) {
		t.Error("Second selection must be a no-op")
	}
	if g.Character.Gold != gold+chest.Gold {
		t.Error("Rewards must be applied once")
	}
	if opened, ok := g.OpenedChest(); !ok || opened.Gold != chest.Gold {
		t.Error("Opened chest must be reported")
	}
}

func TestClampedCameraFollowsCharacter(t *testing.T) {
	g := newTestGame(t, nil)
	g.startPlaying(t)
	g.Character.X, g.Character.Y = 0, 0
	g.Update(16)
	if g.Camera.X != 0 || g.Camera.Y != 0 {
		t.Errorf("Camera must clamp at the map corner, got (%v, %v)", g.Camera.X, g.Camera.Y)
	}
}
