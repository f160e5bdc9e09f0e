// internal/entity/character.go
package entity

import (
	"log"
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

// Character: персонаж игрока
type Character struct {
	X, Y          float64 // левый верхний угол в мировых координатах
	Width, Height float64
	Health        float64
	MaxHealth     float64
	Damage        float64
	Speed         float64
	Defense       float64 // копится от щитов, в расчёте урона не участвует

	Level                 int
	Experience            int
	ExperienceToNextLevel int
	Gold                  int

	AttackCooldown component.Countdown
	Inventory      []*Equipment
	Skills         []*Skill
	Bullets        []*Bullet
	OrbitAngle     float64
	// Границы, за которыми снаряды персонажа удаляются
	Bounds component.Rect

	dash       component.Countdown
	powerArmed bool
	dispatcher *event.Dispatcher
	rng        utils.Random
}

// NewCharacter создаёт персонажа со стартовыми характеристиками и полным
// каталогом навыков нулевого уровня.
func NewCharacter(x, y float64, dispatcher *event.Dispatcher, rng utils.Random) *Character {
	c := &Character{
		X:                     x,
		Y:                     y,
		Width:                 config.CharacterSize,
		Height:                config.CharacterSize,
		Health:                config.CharacterHealth,
		MaxHealth:             config.CharacterHealth,
		Damage:                config.CharacterDamage,
		Speed:                 config.CharacterSpeed,
		Level:                 1,
		ExperienceToNextLevel: config.InitialExpThreshold,
		Bounds:                component.Rect{W: config.MapWidth, H: config.MapHeight},
		dispatcher:            dispatcher,
		rng:                   rng,
	}
	for _, def := range defs.SkillDefs {
		c.Skills = append(c.Skills, NewSkill(def))
	}
	return c
}

// Rect: хитбокс персонажа
func (c *Character) Rect() component.Rect {
	return component.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// Center: центр персонажа
func (c *Character) Center() (float64, float64) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// Alive: здоровье больше нуля
func (c *Character) Alive() bool {
	return c.Health > 0
}

// Move сдвигает персонажа в направлении (dx, dy) со скоростью speed за кадр.
// Ограничение границами карты делает вызывающий код.
func (c *Character) Move(dx, dy, deltaTime float64) {
	speed := c.Speed
	if !c.dash.Done() {
		if mult := c.SkillValue(defs.SkillDash); mult > 0 {
			speed *= mult
		}
	}
	frames := deltaTime / config.FrameUnit
	c.X += dx * speed * frames
	c.Y += dy * speed * frames
}

// ClampTo удерживает персонажа внутри прямоугольника.
func (c *Character) ClampTo(bounds component.Rect) {
	c.X = utils.Clamp(c.X, bounds.X, bounds.X+bounds.W-c.Width)
	c.Y = utils.Clamp(c.Y, bounds.Y, bounds.Y+bounds.H-c.Height)
}

// Dashing: рывок активен
func (c *Character) Dashing() bool {
	return !c.dash.Done()
}

// Update продвигает таймеры персонажа: перезарядку атаки, периодическое
// лечение, вращение сфер вихря, снаряды и перезарядку навыков.
func (c *Character) Update(deltaTime float64) {
	c.AttackCooldown.Tick(deltaTime)
	c.dash.Tick(deltaTime)

	for _, name := range []string{defs.SkillRegeneration, defs.SkillHealing} {
		skill := c.Skill(name)
		if skill == nil || !skill.Owned() {
			continue
		}
		if fired := skill.Ticker.Step(deltaTime); fired > 0 && c.Health < c.MaxHealth {
			c.Heal(skill.EffectValue() * float64(fired))
		}
	}

	if sw := c.Skill(defs.SkillSecondWind); sw != nil && sw.IsReady() && c.Alive() &&
		c.Health < c.MaxHealth*config.SecondWindThreshold {
		c.ActivateSkill(defs.SkillSecondWind)
	}

	if ww := c.Skill(defs.SkillWhirlwind); ww != nil && ww.Owned() {
		speed := config.OrbitBaseSpeed + float64(ww.Level)*config.OrbitSpeedPerLevel
		c.OrbitAngle = math.Mod(c.OrbitAngle+speed*deltaTime/config.FrameUnit, 2*math.Pi)
	}

	for _, b := range c.Bullets {
		b.Update(deltaTime)
	}
	c.Bullets = utils.RemoveIf(c.Bullets, func(b *Bullet) bool {
		return !b.Alive() || b.OutOfBounds(c.Bounds, config.ProjectileMargin)
	})

	for _, skill := range c.Skills {
		skill.Update(deltaTime)
	}
}

// CanAttack: перезарядка атаки истекла
func (c *Character) CanAttack() bool {
	return c.AttackCooldown.Done()
}

// Attack выпускает веер снарядов в сторону цели. Возвращает false, если
// атака на перезарядке.
func (c *Character) Attack(targetX, targetY float64) bool {
	if !c.CanAttack() {
		return false
	}

	damage := c.Damage
	if power := c.Skill(defs.SkillPowerAttack); power != nil {
		if c.powerArmed {
			damage += power.EffectValue()
			c.powerArmed = false
		} else if power.Activate() {
			damage += power.EffectValue()
		}
	}

	critical := false
	if chance := c.SkillValue(defs.SkillCriticalStrike); chance > 0 && c.rng != nil &&
		utils.Chance(c.rng, chance/100) {
		damage *= 2
		critical = true
	}

	cx, cy := c.Center()
	count := c.BulletCount()
	base := math.Atan2(targetY-cy, targetX-cx)
	for i := 0; i < count; i++ {
		offset := (float64(i) - float64(count-1)/2) * config.BulletSpread
		b := NewBulletAngle(cx, cy, base+offset, config.BulletSpeed, damage, config.PlayerBulletColor, OwnerPlayer)
		b.Critical = critical
		c.Bullets = append(c.Bullets, b)
	}

	c.AttackCooldown.Set(config.CharacterAttackCooldown)
	c.dispatcher.Dispatch(event.Event{Type: event.AttackFired, Data: event.AttackData{
		FromX: cx, FromY: cy, ToX: targetX, ToY: targetY, Bullets: count,
	}})
	return true
}

// BulletCount: число снарядов в залпе
func (c *Character) BulletCount() int {
	return config.DefaultBulletCount + int(c.SkillValue(defs.SkillMultiShot))
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
func (c *Character) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// Heal восстанавливает здоровье не выше максимума и возвращает фактически
// восстановленное количество. О ненулевом лечении сообщается событием.
func (c *Character) Heal(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := c.Health
	c.Health = math.Min(c.MaxHealth, c.Health+amount)
	healed := c.Health - before
	if healed > 0 {
		cx, _ := c.Center()
		c.dispatcher.Dispatch(event.Event{Type: event.CharacterHealed, Data: event.HealData{
			Amount: healed, X: cx, Y: c.Y - 10,
		}})
	}
	return healed
}

// AddExperience начисляет опыт и повышает уровень столько раз, сколько
// нужно, чтобы опыт стал меньше порога. Возвращает число новых уровней.
func (c *Character) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.Experience += amount
	levels := 0
	for c.Experience >= c.ExperienceToNextLevel && c.ExperienceToNextLevel > 0 {
		c.LevelUp()
		levels++
	}
	return levels
}

// LevelUp повышает уровень: растут порог опыта, здоровье, урон и скорость.
func (c *Character) LevelUp() {
	c.Level++
	c.Experience -= c.ExperienceToNextLevel
	if c.Experience < 0 {
		c.Experience = 0
	}
	c.ExperienceToNextLevel = int(math.Floor(float64(c.ExperienceToNextLevel) * config.LevelUpThresholdFactor))

	healthGain := config.LevelUpMaxHealth
	if c.SkillValue(defs.SkillWhirlwind) > 0 {
		healthGain = config.LevelUpMaxHealthWhirlwind
	}
	c.MaxHealth += healthGain
	c.Health = c.MaxHealth
	c.Damage += config.LevelUpDamage
	c.Speed += config.LevelUpSpeed

	cx, cy := c.Center()
	c.dispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: c.Level, X: cx, Y: cy}})
}

// AddEquipment кладёт предмет в инвентарь и сразу применяет его бонус.
// Второй предмет того же типа не добавляется.
func (c *Character) AddEquipment(item *Equipment) bool {
	if item == nil || c.Equipment(item.Type) != nil {
		return false
	}
	c.Inventory = append(c.Inventory, item)
	c.ApplyEquipmentBonus(item)
	return true
}

// ApplyEquipmentBonus добавляет полный бонус предмета к характеристикам.
func (c *Character) ApplyEquipmentBonus(item *Equipment) {
	c.applyStat(item.Stat, item.Bonus)
}

func (c *Character) applyStat(stat defs.StatKind, amount float64) {
	switch stat {
	case defs.StatDamage:
		c.Damage += amount
	case defs.StatSpeed:
		c.Speed += amount
	case defs.StatHealth:
		c.MaxHealth += amount
		c.Health += amount
	case defs.StatDefense:
		c.Defense += amount
	}
}

// UpgradeEquipment повышает уровень предмета и добавляет только прирост бонуса.
func (c *Character) UpgradeEquipment(t defs.EquipmentType) bool {
	item := c.Equipment(t)
	if item == nil {
		return false
	}
	c.applyStat(item.Stat, item.Upgrade())
	return true
}

// Equipment возвращает предмет заданного типа или nil.
func (c *Character) Equipment(t defs.EquipmentType) *Equipment {
	for _, item := range c.Inventory {
		if item.Type == t {
			return item
		}
	}
	return nil
}

// EquipmentBonus суммирует бонусы предметов, усиливающих указанную характеристику.
func (c *Character) EquipmentBonus(stat defs.StatKind) float64 {
	total := 0.0
	for _, item := range c.Inventory {
		if item.Stat == stat {
			total += item.Bonus
		}
	}
	return total
}

// Skill ищет навык по имени.
func (c *Character) Skill(name string) *Skill {
	for _, s := range c.Skills {
		if s.Def.Name == name {
			return s
		}
	}
	return nil
}

// SkillValue: текущее значение эффекта навыка (0, если не куплен)
func (c *Character) SkillValue(name string) float64 {
	if s := c.Skill(name); s != nil {
		return s.EffectValue()
	}
	return 0
}

// ActivateSkill активирует навык по имени и применяет его мгновенный эффект.
// Возвращает nil, если навык не найден или не готов.
func (c *Character) ActivateSkill(name string) *Skill {
	skill := c.Skill(name)
	if skill == nil || !skill.Activate() {
		return nil
	}

	switch name {
	case defs.SkillSecondWind:
		c.Heal(c.MaxHealth * skill.EffectValue() / 100)
	case defs.SkillDash:
		c.dash.Set(skill.Def.Duration)
	case defs.SkillPowerAttack:
		c.powerArmed = true
	}

	log.Printf("Skill activated: %s (level %d)", name, skill.Level)
	cx, cy := c.Center()
	c.dispatcher.Dispatch(event.Event{Type: event.SkillActivated, Data: event.SkillData{Name: name, X: cx, Y: cy}})
	return skill
}

// PowerArmed: следующая атака получит бонус мощной атаки
func (c *Character) PowerArmed() bool {
	return c.powerArmed
}

// AvailableSkills: навыки, которые уже можно купить по уровню персонажа
func (c *Character) AvailableSkills() []*Skill {
	var out []*Skill
	for _, s := range c.Skills {
		if s.Unlocked(c.Level) {
			out = append(out, s)
		}
	}
	return out
}

// UnlockedSkills: купленные навыки
func (c *Character) UnlockedSkills() []*Skill {
	var out []*Skill
	for _, s := range c.Skills {
		if s.Owned() {
			out = append(out, s)
		}
	}
	return out
}

// OrbitRadius: радиус вращения сфер вихря
func (c *Character) OrbitRadius() float64 {
	ww := c.Skill(defs.SkillWhirlwind)
	if ww == nil || !ww.Owned() {
		return 0
	}
	return config.OrbitBaseRadius + float64(ww.Level)*config.OrbitRadiusPerLevel
}

// OrbitBalls возвращает мировые координаты сфер вихря.
func (c *Character) OrbitBalls() []component.Position {
	radius := c.OrbitRadius()
	if radius == 0 {
		return nil
	}
	cx, cy := c.Center()
	balls := make([]component.Position, config.OrbitBallCount)
	for i := range balls {
		angle := c.OrbitAngle + float64(i)*2*math.Pi/config.OrbitBallCount
		balls[i] = component.Position{X: cx + math.Cos(angle)*radius, Y: cy + math.Sin(angle)*radius}
	}
	return balls
}

// DodgeChance: вероятность уклониться от снаряда монстра
func (c *Character) DodgeChance() float64 {
	return c.SkillValue(defs.SkillEvasion) / 100
}

// GoldMultiplier: множитель золота от навыка
func (c *Character) GoldMultiplier() float64 {
	return 1 + c.SkillValue(defs.SkillGoldFinder)/100
}

// ExperienceMultiplier: множитель опыта от навыка
func (c *Character) ExperienceMultiplier() float64 {
	return 1 + c.SkillValue(defs.SkillExpBoost)/100
}

// PickupRect: хитбокс подбора с учётом магнита
func (c *Character) PickupRect() component.Rect {
	return c.Rect().Expand(c.SkillValue(defs.SkillMagnet))
}

// ResetRun восстанавливает здоровье и сбрасывает состояние забега,
// сохраняя прогресс (уровень, снаряжение, навыки).
func (c *Character) ResetRun(x, y float64) {
	c.X, c.Y = x, y
	c.Health = c.MaxHealth
	c.Bullets = nil
	c.AttackCooldown = component.Countdown{}
	c.dash = component.Countdown{}
	c.powerArmed = false
	c.OrbitAngle = 0
	for _, s := range c.Skills {
		s.Cooldown = component.Countdown{}
		s.Ticker.Reset()
	}
}
