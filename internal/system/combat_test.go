package system

import (
	"math"
	"testing"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

func TestFindTargetsNearestFirst(t *testing.T) {
	w := newWorld(t, nil)
	cx, cy := w.character.Center()
	far := w.spawnAt(defs.MonsterNormal, cx+300, cy)
	near := w.spawnAt(defs.MonsterNormal, cx+100, cy)
	mid := w.spawnAt(defs.MonsterNormal, cx, cy+200)
	w.spawnAt(defs.MonsterNormal, cx+401, cy) // вне радиуса
	dead := w.spawnAt(defs.MonsterNormal, cx+10, cy)
	dead.Health = 0

	targets := w.combat.FindTargets(w.character, 3)
	if len(targets) != 3 {
		t.Fatalf("Expected 3 targets, got %d", len(targets))
	}
	if targets[0] != near || targets[1] != mid || targets[2] != far {
		t.Error("Targets must be sorted by distance")
	}
	if one := w.combat.FindTargets(w.character, 1); len(one) != 1 || one[0] != near {
		t.Error("Single target must be the nearest")
	}
}

func TestContactDamageIsChip(t *testing.T) {
	w := newWorld(t, nil)
	cx, cy := w.character.Center()
	w.spawnAt(defs.MonsterTanker, cx, cy)
	w.spawnAt(defs.MonsterNormal, cx+500, cy)

	w.combat.ApplyContactDamage(w.character)
	expected := 500 - 12*config.ContactDamageFactor
	if math.Abs(w.character.Health-expected) > 1e-9 {
		t.Errorf("Expected health %v after one frame of contact, got %v", expected, w.character.Health)
	}
	if w.rec.count(event.CharacterHit) != 1 {
		t.Errorf("Expected one contact hit, got %d", w.rec.count(event.CharacterHit))
	}
}

func TestOrbitHitsAtMostOncePerFrame(t *testing.T) {
	w := newWorld(t, nil)
	learn(w.character, defs.SkillWhirlwind, 1)
	cx, cy := w.character.Center()
	// сфера под углом 0 находится в (cx+45, cy)
	a := w.spawnAt(defs.MonsterNormal, cx+45, cy)
	b := w.spawnAt(defs.MonsterNormal, cx+45, cy+2)

	if !w.combat.ApplyOrbitDamage(w.character) {
		t.Fatal("Expected an orbit hit")
	}
	if a.Health+b.Health != 160-50 {
		t.Errorf("Expected exactly one 50 damage hit, got %v and %v", a.Health, b.Health)
	}
	if w.rec.count(event.MonsterHit) != 1 {
		t.Errorf("Expected one MonsterHit, got %d", w.rec.count(event.MonsterHit))
	}

	w2 := newWorld(t, nil)
	w2.spawnAt(defs.MonsterNormal, cx+45, cy)
	if w2.combat.ApplyOrbitDamage(w2.character) {
		t.Error("No orbit damage without whirlwind")
	}
}

func TestResolveAttackPrefersMultiTarget(t *testing.T) {
	w := newWorld(t, nil)
	multi := learn(w.character, defs.SkillTripleEff, 1)
	cx, cy := w.character.Center()
	w.spawnAt(defs.MonsterNormal, cx+100, cy)
	w.spawnAt(defs.MonsterNormal, cx+150, cy)

	group := w.combat.FindTargets(w.character, config.MultiTargetCount)
	if !w.combat.ResolveAttack(w.character, group[0], group) {
		t.Fatal("Expected attack")
	}
	if multi.IsReady() {
		t.Error("Multi-target skill must enter cooldown")
	}
	if w.rec.count(event.SkillActivated) != 1 {
		t.Error("Expected SkillActivated for multi-target attack")
	}

	w.character.Update(config.CharacterAttackCooldown)
	if !w.combat.ResolveAttack(w.character, group[0], group) {
		t.Error("Expected a normal attack while multi-target cools down")
	}
	if w.combat.ResolveAttack(w.character, group[0], group) {
		t.Error("Attack during cooldown must fail")
	}
	if w.combat.ResolveAttack(w.character, nil, nil) {
		t.Error("No attack without targets")
	}
}

// Персонаж с уроном 50 убивает обычного монстра (80 HP) двумя попаданиями
func TestTwoHitsKillNormalMonster(t *testing.T) {
	w := newWorld(t, nil)
	run := &RunState{}
	player := NewPlayerSystem(w.character, run)
	w.dispatcher.Subscribe(event.MonsterKilled, player)

	cx, cy := w.character.Center()
	m := w.spawnAt(defs.MonsterNormal, cx+200, cy)
	if !w.character.Attack(cx+200, cy) {
		t.Fatal("Attack failed")
	}
	if len(w.character.Bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(w.character.Bullets))
	}

	// первый снаряд уже в монстре, остальные мимо
	w.character.Bullets[0].X, w.character.Bullets[0].Y = cx+200, cy
	w.character.Bullets = w.character.Bullets[:1]
	if hits := w.projectile.ResolvePlayerBullets(w.character); hits != 1 {
		t.Fatalf("Expected one hit, got %d", hits)
	}
	if m.Health != 30 {
		t.Errorf("Expected 30 health after first hit, got %v", m.Health)
	}
	if len(w.character.Bullets) != 0 {
		t.Error("Bullet must be removed on hit")
	}
	w.combat.RemoveDead()
	if len(w.store.Monsters) != 1 {
		t.Fatal("Monster must survive the first hit")
	}

	w.character.Update(config.CharacterAttackCooldown)
	w.character.Attack(cx+200, cy)
	w.character.Bullets[0].X, w.character.Bullets[0].Y = cx+200, cy
	w.projectile.ResolvePlayerBullets(w.character)
	if !m.Dead() {
		t.Fatalf("Expected monster dead, health %v", m.Health)
	}
	if killed := w.combat.RemoveDead(); killed != 1 {
		t.Fatalf("Expected one kill, got %d", killed)
	}
	if len(w.store.Monsters) != 0 {
		t.Error("Dead monster must be removed")
	}
	if run.Score != 10 || w.character.Experience != 10 {
		t.Errorf("Expected score 10 and experience 10, got %d and %d", run.Score, w.character.Experience)
	}
}

func TestHitReportsDealtDamage(t *testing.T) {
	tests := []struct {
		name     string
		health   float64
		damage   float64
		expected float64
	}{
		{"Full hit", 80, 50, 50},
		{"Overkill on a nearly dead monster", 10, 50, 10},
		{"Exact kill", 50, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, nil)
			stats := NewStatsSystem(&RunState{})
			stats.Subscribe(w.dispatcher)
			m := w.spawnAt(defs.MonsterNormal, 1200, 1000)
			m.Health = tt.health

			if dealt := w.combat.ApplyDamage(m, tt.damage, "bullet", false); dealt != tt.expected {
				t.Errorf("Expected %v dealt, got %v", tt.expected, dealt)
			}
			if stats.Stats.TotalDamageCaused != tt.expected {
				t.Errorf("Expected total damage %v, got %v", tt.expected, stats.Stats.TotalDamageCaused)
			}
			if log := stats.Stats.CombatLog; len(log) != 1 || log[0].Damage != tt.expected {
				t.Errorf("Expected one log entry of %v, got %+v", tt.expected, log)
			}
		})
	}
}

func TestMonsterBulletsAndDodge(t *testing.T) {
	// первый бросок уклоняется (0.01 < 0.05), второй нет
	rng := &utils.SequenceRandom{Floats: []float64{0.01, 0.9}}
	w := newWorld(t, rng)
	learn(w.character, defs.SkillEvasion, 1)
	cx, cy := w.character.Center()
	ranged := w.spawnAt(defs.MonsterRanged, cx+500, cy)

	fire := func() {
		ranged.Bullets = append(ranged.Bullets, newMonsterBullet(cx, cy, ranged.Damage))
	}

	fire()
	if hits := w.projectile.ResolveMonsterBullets(w.character); hits != 0 {
		t.Errorf("Expected dodge, got %d hits", hits)
	}
	if len(ranged.Bullets) != 0 {
		t.Error("Dodged bullet must still be removed")
	}
	if w.character.Health != 500 || w.rec.count(event.AttackDodged) != 1 {
		t.Errorf("Dodge must negate damage, health %v", w.character.Health)
	}

	fire()
	if hits := w.projectile.ResolveMonsterBullets(w.character); hits != 1 {
		t.Errorf("Expected hit, got %d", hits)
	}
	if w.character.Health != 491 {
		t.Errorf("Expected 9 damage, got health %v", w.character.Health)
	}
}
