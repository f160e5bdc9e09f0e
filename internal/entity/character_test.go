package entity

import (
	"math"
	"testing"

	"endless-survival/internal/defs"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestCharacter(t *testing.T) (*Character, *recorder) {
	t.Helper()
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{event.CharacterHealed, event.LevelUp, event.SkillActivated, event.AttackFired} {
		d.Subscribe(et, rec)
	}
	return NewCharacter(100, 100, d, &utils.SequenceRandom{Floats: []float64{0.99}}), rec
}

func learn(t *testing.T, c *Character, name string, level int) *Skill {
	t.Helper()
	s := c.Skill(name)
	if s == nil {
		t.Fatalf("Skill %q missing", name)
	}
	for s.Level < level {
		s.Upgrade()
	}
	return s
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	for _, amount := range []float64{0, 1, 250, 500, 501, 10000} {
		c, _ := newTestCharacter(t)
		c.TakeDamage(amount)
		expected := math.Max(0, 500-amount)
		if c.Health != expected {
			t.Errorf("TakeDamage(%v): expected %v, got %v", amount, expected, c.Health)
		}
	}
}

func TestHealReportsActualAmount(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		amount   float64
		expected float64
		events   int
	}{
		{"Partial", 400, 50, 450, 1},
		{"Clamped", 480, 50, 500, 1},
		{"Already full", 500, 50, 500, 0},
		{"Zero", 300, 0, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestCharacter(t)
			c.Health = tt.start
			healed := c.Heal(tt.amount)
			if c.Health != tt.expected {
				t.Errorf("Expected health %v, got %v", tt.expected, c.Health)
			}
			if healed != tt.expected-tt.start {
				t.Errorf("Expected healed %v, got %v", tt.expected-tt.start, healed)
			}
			if n := rec.count(event.CharacterHealed); n != tt.events {
				t.Fatalf("Expected %d heal events, got %d", tt.events, n)
			}
			if tt.events > 0 {
				data := rec.events[0].Data.(event.HealData)
				if data.Amount != healed {
					t.Errorf("Event amount %v, expected %v", data.Amount, healed)
				}
			}
		})
	}
}

func TestLevelUpScenario(t *testing.T) {
	c, rec := newTestCharacter(t)
	c.Experience = 90
	c.Health = 200

	if levels := c.AddExperience(20); levels != 1 {
		t.Fatalf("Expected exactly one level up, got %d", levels)
	}
	if c.Level != 2 {
		t.Errorf("Expected level 2, got %d", c.Level)
	}
	if c.Experience != 10 {
		t.Errorf("Expected experience 10, got %d", c.Experience)
	}
	if c.ExperienceToNextLevel != 150 {
		t.Errorf("Expected threshold 150, got %d", c.ExperienceToNextLevel)
	}
	if c.MaxHealth != 520 || c.Health != c.MaxHealth {
		t.Errorf("Expected full heal to 520, got %v/%v", c.Health, c.MaxHealth)
	}
	if c.Damage != 55 || c.Speed != 6.125 {
		t.Errorf("Unexpected damage/speed: %v/%v", c.Damage, c.Speed)
	}
	if rec.count(event.LevelUp) != 1 {
		t.Error("Expected one LevelUp event")
	}
}

func TestAddExperienceCascades(t *testing.T) {
	c, _ := newTestCharacter(t)
	// 100 + 150 + 225 = 475
	if levels := c.AddExperience(480); levels != 3 {
		t.Fatalf("Expected 3 level ups, got %d", levels)
	}
	if c.Level != 4 || c.Experience != 5 || c.ExperienceToNextLevel != 337 {
		t.Errorf("Unexpected state: level=%d exp=%d next=%d", c.Level, c.Experience, c.ExperienceToNextLevel)
	}
	if c.Experience >= c.ExperienceToNextLevel {
		t.Error("Experience must stay below threshold")
	}
}

func TestWhirlwindIncreasesLevelUpHealth(t *testing.T) {
	c, _ := newTestCharacter(t)
	learn(t, c, defs.SkillWhirlwind, 1)
	c.LevelUp()
	if c.MaxHealth != 530 {
		t.Errorf("Expected +30 max health with whirlwind, got %v", c.MaxHealth)
	}
}

func TestAttackRespectsCooldown(t *testing.T) {
	c, rec := newTestCharacter(t)
	if !c.Attack(500, 120) {
		t.Fatal("First attack must succeed")
	}
	if len(c.Bullets) != 3 {
		t.Fatalf("Expected 3 bullets by default, got %d", len(c.Bullets))
	}
	if c.Attack(500, 120) {
		t.Error("Attack during cooldown must fail")
	}
	if len(c.Bullets) != 3 {
		t.Error("Failed attack must not spawn bullets")
	}
	c.Update(250)
	if !c.CanAttack() {
		t.Error("Attack must be ready after 250ms")
	}
	if rec.count(event.AttackFired) != 1 {
		t.Errorf("Expected one AttackFired event, got %d", rec.count(event.AttackFired))
	}

	learn(t, c, defs.SkillMultiShot, 2)
	c.Attack(500, 120)
	if got := len(c.Bullets); got != 3+5 {
		t.Errorf("Expected 5 more bullets with multi shot level 2, got %d total", got)
	}
}

func TestPowerAttackAddsBonusOnce(t *testing.T) {
	c, _ := newTestCharacter(t)
	power := learn(t, c, defs.SkillPowerAttack, 1)

	c.Attack(500, 120)
	if c.Bullets[0].Damage != 200 {
		t.Errorf("Expected 50+150 damage, got %v", c.Bullets[0].Damage)
	}
	if power.IsReady() {
		t.Error("Power attack must enter cooldown after use")
	}

	c.Bullets = nil
	c.Update(250)
	c.Attack(500, 120)
	if c.Bullets[0].Damage != 50 {
		t.Errorf("Expected plain damage while power attack cools down, got %v", c.Bullets[0].Damage)
	}
}

func TestCriticalStrikeDoublesDamage(t *testing.T) {
	c := NewCharacter(0, 0, nil, &utils.SequenceRandom{Floats: []float64{0.01}})
	learn(t, c, defs.SkillCriticalStrike, 1)
	c.Attack(100, 0)
	if c.Bullets[0].Damage != 100 || !c.Bullets[0].Critical {
		t.Errorf("Expected critical 100 damage, got %v", c.Bullets[0].Damage)
	}
}

func TestBulletsArePrunedByLifetime(t *testing.T) {
	c, _ := newTestCharacter(t)
	c.X, c.Y = 2500, 2500
	c.Attack(2600, 2520)
	for i := 0; i < 9; i++ {
		c.Update(100)
	}
	if len(c.Bullets) != 3 {
		t.Fatalf("Bullets must live until 1000ms, got %d", len(c.Bullets))
	}
	c.Update(100)
	if len(c.Bullets) != 0 {
		t.Errorf("Expected bullets to expire, got %d", len(c.Bullets))
	}
}

func TestRegenerationHealsOnInterval(t *testing.T) {
	c, rec := newTestCharacter(t)
	learn(t, c, defs.SkillRegeneration, 3)
	c.Health = 400

	for i := 0; i < 9; i++ {
		c.Update(100)
	}
	if c.Health != 400 {
		t.Fatalf("No healing expected before 1000ms, got %v", c.Health)
	}
	c.Update(100)
	if c.Health != 403 {
		t.Errorf("Expected +3 after one interval, got %v", c.Health)
	}
	if rec.count(event.CharacterHealed) != 1 {
		t.Error("Expected one heal event")
	}
}

func TestSecondWindTriggersAtLowHealth(t *testing.T) {
	c, rec := newTestCharacter(t)
	sw := learn(t, c, defs.SkillSecondWind, 1)
	c.Health = 99

	c.Update(16)
	if c.Health != 249 {
		t.Errorf("Expected 30%% of 500 healed, got health %v", c.Health)
	}
	if sw.IsReady() {
		t.Error("Second wind must be on cooldown after triggering")
	}
	if rec.count(event.SkillActivated) != 1 {
		t.Error("Expected SkillActivated event")
	}
}

func TestDashMultipliesSpeed(t *testing.T) {
	c, _ := newTestCharacter(t)
	learn(t, c, defs.SkillDash, 1)

	c.Move(1, 0, 16)
	if c.X != 106 {
		t.Fatalf("Expected normal move of 6px, got x=%v", c.X)
	}
	if c.ActivateSkill(defs.SkillDash) == nil {
		t.Fatal("Dash must activate")
	}
	c.Move(1, 0, 16)
	if c.X != 118 {
		t.Errorf("Expected doubled move of 12px, got x=%v", c.X)
	}
	c.Update(300)
	c.Move(1, 0, 16)
	if c.X != 124 {
		t.Errorf("Expected dash to end after 300ms, got x=%v", c.X)
	}
}

func TestEquipmentBonuses(t *testing.T) {
	c, _ := newTestCharacter(t)
	if !c.AddEquipment(NewEquipment(defs.EquipmentAmulet, 1)) {
		t.Fatal("AddEquipment failed")
	}
	if c.MaxHealth != 520 || c.Health != 520 {
		t.Errorf("Amulet must add 20 to max and current health, got %v/%v", c.Health, c.MaxHealth)
	}
	if c.AddEquipment(NewEquipment(defs.EquipmentAmulet, 2)) {
		t.Error("Second amulet must be rejected")
	}
	if len(c.Inventory) != 1 {
		t.Errorf("Inventory must hold one item per type, got %d", len(c.Inventory))
	}

	c.AddEquipment(NewEquipment(defs.EquipmentSword, 1))
	c.UpgradeEquipment(defs.EquipmentSword)
	if c.Damage != 60 {
		t.Errorf("Sword level 2 must add 10 damage in total, got %v", c.Damage)
	}
	if b := c.EquipmentBonus(defs.StatDamage); b != 10 {
		t.Errorf("Expected damage bonus 10, got %v", b)
	}
	if b := c.EquipmentBonus(defs.StatSpeed); b != 0 {
		t.Errorf("Expected no speed bonus, got %v", b)
	}

	c.AddEquipment(NewEquipment(defs.EquipmentShield, 1))
	c.TakeDamage(100)
	if c.Health != 420 {
		t.Errorf("Defense must not reduce damage, got health %v", c.Health)
	}
}

func TestSkillViews(t *testing.T) {
	c, _ := newTestCharacter(t)
	if n := len(c.AvailableSkills()); n != 0 {
		t.Errorf("Level 1 character has no unlockable skills, got %d", n)
	}
	c.Level = 3
	available := c.AvailableSkills()
	names := map[string]bool{}
	for _, s := range available {
		names[s.Name()] = true
	}
	if !names[defs.SkillMultiShot] || !names[defs.SkillCriticalStrike] || !names[defs.SkillTripleEff] {
		t.Errorf("Unexpected available skills: %v", names)
	}
	if len(c.UnlockedSkills()) != 0 {
		t.Error("No skills are owned yet")
	}
	learn(t, c, defs.SkillMultiShot, 1)
	if len(c.UnlockedSkills()) != 1 {
		t.Error("Expected one owned skill")
	}
	if c.ActivateSkill("Fireball") != nil {
		t.Error("Unknown skill must not activate")
	}
}

func TestOrbitBalls(t *testing.T) {
	c, _ := newTestCharacter(t)
	if c.OrbitBalls() != nil {
		t.Fatal("No orbit without whirlwind")
	}
	learn(t, c, defs.SkillWhirlwind, 2)
	balls := c.OrbitBalls()
	if len(balls) != 6 {
		t.Fatalf("Expected 6 balls, got %d", len(balls))
	}
	cx, cy := c.Center()
	for _, b := range balls {
		if d := math.Hypot(b.X-cx, b.Y-cy); math.Abs(d-50) > 1e-9 {
			t.Errorf("Expected radius 50, got %v", d)
		}
	}
	c.Update(16)
	if math.Abs(c.OrbitAngle-0.07) > 1e-9 {
		t.Errorf("Expected angle 0.07 after one frame, got %v", c.OrbitAngle)
	}
}
