package entity

import (
	"testing"

	"endless-survival/internal/defs"
)

func catalogSkill(t *testing.T, name string) *Skill {
	t.Helper()
	def, ok := defs.Skill(name)
	if !ok {
		t.Fatalf("Skill %q not in catalog", name)
	}
	return NewSkill(def)
}

func TestSkillEffectValue(t *testing.T) {
	s := catalogSkill(t, defs.SkillWhirlwind)
	if v := s.EffectValue(); v != 0 {
		t.Errorf("Expected 0 at level 0, got %v", v)
	}
	s.Upgrade()
	if v := s.EffectValue(); v != 50 {
		t.Errorf("Expected 50 at level 1, got %v", v)
	}
	s.Upgrade()
	if v := s.EffectValue(); v != 75 {
		t.Errorf("Expected 75 at level 2, got %v", v)
	}
}

func TestSkillUpgradeAtMaxIsNoOp(t *testing.T) {
	s := catalogSkill(t, defs.SkillSecondWind)
	for s.CanUpgrade() {
		if !s.Upgrade() {
			t.Fatal("Upgrade below max level must succeed")
		}
	}
	for i := 0; i < 3; i++ {
		if s.Upgrade() {
			t.Error("Upgrade at max level must fail")
		}
		if s.Level != s.Def.MaxLevel {
			t.Errorf("Level changed at max: %d", s.Level)
		}
	}
}

func TestSkillCosts(t *testing.T) {
	s := catalogSkill(t, defs.SkillCriticalStrike)
	if c := s.PurchaseCost(); c != 100 {
		t.Errorf("First purchase should cost 100, got %d", c)
	}
	s.Upgrade()
	if c := s.PurchaseCost(); c != 100 {
		t.Errorf("Level 1->2 should cost 100, got %d", c)
	}
	s.Upgrade()
	if c := s.PurchaseCost(); c != 200 {
		t.Errorf("Level 2->3 should cost 200, got %d", c)
	}
}

func TestActiveSkillCooldown(t *testing.T) {
	s := catalogSkill(t, defs.SkillPowerAttack)
	if s.IsReady() || s.Activate() {
		t.Fatal("Unpurchased skill must not be ready")
	}
	s.Upgrade()
	if !s.Activate() {
		t.Fatal("Purchased skill must activate")
	}
	if s.Activate() {
		t.Error("Skill on cooldown must not activate")
	}
	s.Update(9999)
	if s.IsReady() {
		t.Error("Cooldown must still be running at 9999ms")
	}
	s.Update(5000)
	if s.Cooldown.Remaining != 0 {
		t.Errorf("Cooldown must clamp at 0, got %v", s.Cooldown.Remaining)
	}
	if !s.IsReady() {
		t.Error("Skill must be ready after cooldown")
	}

	passive := catalogSkill(t, defs.SkillEvasion)
	passive.Upgrade()
	if passive.IsReady() {
		t.Error("Passive skills never report ready")
	}
}
