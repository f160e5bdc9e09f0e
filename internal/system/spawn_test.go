package system

import (
	"testing"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/utils"
)

func TestSpawnIntervalMonotoneWithFloor(t *testing.T) {
	for _, difficulty := range []float64{1, 1.5, 3} {
		prev := SpawnInterval(0, difficulty)
		if prev != 1000 {
			t.Errorf("Expected 1000ms at start, got %v", prev)
		}
		for seconds := 1.0; seconds < 600; seconds++ {
			next := SpawnInterval(seconds, difficulty)
			if next > prev {
				t.Fatalf("Interval grew at %vs (d=%v): %v > %v", seconds, difficulty, next, prev)
			}
			if next < config.MinSpawnInterval {
				t.Fatalf("Interval below floor: %v", next)
			}
			prev = next
		}
		if prev != config.MinSpawnInterval {
			t.Errorf("Expected floor to be reached, got %v", prev)
		}
	}
	if v := SpawnInterval(12.34, 1); v != 877 {
		t.Errorf("Expected 1000-floor(123.4)=877, got %v", v)
	}
}

func TestPickMonsterType(t *testing.T) {
	tests := []struct {
		name       string
		seconds    float64
		difficulty float64
		rolls      []float64
		expected   defs.MonsterType
	}{
		{"Early game is always normal", 3, 1, []float64{0}, defs.MonsterNormal},
		{"Tanker after 5s", 6, 1, []float64{0.1}, defs.MonsterTanker},
		{"Roll too high", 6, 1, []float64{0.5}, defs.MonsterNormal},
		{"Fast after 10s", 11, 1, []float64{0.25}, defs.MonsterFast},
		{"Tanker when fast misses", 11, 1, []float64{0.5, 0.1}, defs.MonsterTanker},
		{"Ranged after 20s", 21, 1, []float64{0.15}, defs.MonsterRanged},
		{"Fast when ranged misses", 21, 1, []float64{0.5, 0.25}, defs.MonsterFast},
		{"Elite after 30s", 31, 1, []float64{0.09}, defs.MonsterElite},
		{"Boss after 60s", 61, 1, []float64{0.04}, defs.MonsterBoss},
		{"Difficulty widens boss chance", 61, 2, []float64{0.09}, defs.MonsterBoss},
		{"Boss not before 60s", 59, 1, []float64{0.04}, defs.MonsterElite},
		{"Every tier misses", 61, 1, []float64{0.9}, defs.MonsterNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &utils.SequenceRandom{Floats: tt.rolls}
			if got := PickMonsterType(r, tt.seconds, tt.difficulty); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPickMonsterTypeKeepsTankersAfterFast(t *testing.T) {
	rng := utils.NewPRNGService(7)
	counts := map[defs.MonsterType]int{}
	const calls = 20000
	for i := 0; i < calls; i++ {
		counts[PickMonsterType(rng, 15, 1)]++
	}
	// fast 0.3, затем tanker 0.7*0.2 = 0.14
	tankers := float64(counts[defs.MonsterTanker]) / calls
	if tankers < 0.11 || tankers > 0.17 {
		t.Errorf("Expected about 14%% tankers at 15s, got %.3f (%v)", tankers, counts)
	}
	fast := float64(counts[defs.MonsterFast]) / calls
	if fast < 0.27 || fast > 0.33 {
		t.Errorf("Expected about 30%% fast at 15s, got %.3f", fast)
	}
}

func TestSpawnPositionOutsideViewport(t *testing.T) {
	viewport := component.Rect{X: 2000, Y: 2000, W: 1280, H: 720}
	for side := 0; side < 4; side++ {
		r := &utils.SequenceRandom{Floats: []float64{0.5}, Ints: []int{side}}
		x, y := SpawnPosition(r, viewport)
		box := component.Rect{X: x, Y: y, W: config.MonsterSize, H: config.MonsterSize}
		if box.Overlaps(viewport.Expand(-1)) {
			t.Errorf("Side %d: spawn (%v, %v) is inside the viewport", side, x, y)
		}
	}

	corner := component.Rect{X: 0, Y: 0, W: 1280, H: 720}
	r := &utils.SequenceRandom{Floats: []float64{0.5}, Ints: []int{3}}
	x, _ := SpawnPosition(r, corner)
	if x != 0 {
		t.Errorf("Spawn must be clamped to the map, got x=%v", x)
	}
}

func TestSpawnSystemTimer(t *testing.T) {
	store := entity.NewStore()
	spawner := NewSpawnSystem(store, utils.NewPRNGService(7))
	run := &RunState{}
	viewport := component.Rect{X: 1000, Y: 1000, W: 1280, H: 720}

	for i := 0; i < 9; i++ {
		if spawner.Update(100, run, viewport) != nil {
			t.Fatal("No spawn expected before 1000ms")
		}
	}
	if spawner.Update(100, run, viewport) == nil {
		t.Fatal("Expected spawn at 1000ms")
	}
	if len(store.Monsters) != 1 || spawner.SpawnTimer != 0 {
		t.Errorf("Expected one monster and reset timer, got %d, %v", len(store.Monsters), spawner.SpawnTimer)
	}

	run.GameTime = 30000
	run.Score = 500
	spawner.SpawnTimer = spawner.SpawnInterval
	m := spawner.Update(0, run, viewport)
	if m == nil {
		t.Fatal("Expected spawn")
	}
	if spawner.SpawnInterval != 550 {
		t.Errorf("Expected interval 1000-floor(30*10*1.5)=550, got %v", spawner.SpawnInterval)
	}
	base := defs.Monster(m.Type)
	if m.MaxHealth != float64(int(base.Health*1.5)) {
		t.Errorf("Monster health must be scaled by difficulty 1.5, got %v", m.MaxHealth)
	}
}
