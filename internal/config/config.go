// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MapWidth     = 5000.0
	MapHeight    = 5000.0

	// Время симуляции в миллисекундах
	MaxDeltaTime = 100.0
	FrameUnit    = 16.0 // скорости задаются в пикселях за кадр 16 мс

	CharacterSize           = 40.0
	CharacterHealth         = 500.0
	CharacterDamage         = 50.0
	CharacterSpeed          = 6.0
	CharacterAttackCooldown = 250.0
	InitialExpThreshold     = 100
	AttackRange             = 400.0
	DefaultBulletCount      = 3
	BulletSpread            = 0.15 // радиан между соседними пулями
	MultiTargetCount        = 3

	LevelUpThresholdFactor    = 1.5
	LevelUpMaxHealth          = 20.0
	LevelUpMaxHealthWhirlwind = 30.0
	LevelUpDamage             = 5.0
	LevelUpSpeed              = 0.125

	SecondWindThreshold = 0.2 // доля здоровья для автоактивации
	DiagonalFactor      = 0.7071

	BulletSpeed      = 10.0
	BulletSize       = 6.0
	BulletLifeTime   = 1000.0
	ProjectileMargin = 100.0 // насколько снаряд может вылететь за карту

	OrbitBallCount      = 6
	OrbitBallRadius     = 5.0
	OrbitBaseRadius     = 40.0
	OrbitRadiusPerLevel = 5.0
	OrbitBaseSpeed      = 0.05
	OrbitSpeedPerLevel  = 0.01

	ContactDamageFactor = 0.1

	MonsterSize       = 30.0
	MonsterBulletSize = 6.0

	ResourceSize = 20.0

	InitialSpawnInterval   = 1000.0
	MinSpawnInterval       = 100.0
	SpawnRampFactor        = 10.0
	SpawnBufferMin         = 50.0
	SpawnBufferRange       = 200.0
	DifficultyScoreDivisor = 1000.0

	ScorePerKill      = 10
	ExperiencePerKill = 10

	MaxEquipmentLevel = 10
	CombatLogSize     = 5

	RewardChestCount = 3
	ChestGoldMin     = 10
	ChestGoldMax     = 50
	ChestExpMin      = 20
	ChestExpMax      = 100

	UsernameMinLength = 3
)

// Лимиты коллекций, при превышении удаляются самые старые записи
const (
	MaxMonsters          = 75
	MaxResources         = 50
	MaxAttackEffects     = 30
	MaxDeathEffects      = 20
	MaxCollectionEffects = 20
	MaxLevelUpEffects    = 10
	MaxHealingEffects    = 10
	MaxHitEffects        = 30
)

// Параметры эффектов: время жизни в мс, начальный размер, расширение за кадр
const (
	AttackEffectLife = 100.0

	HitEffectSize      = 5.0
	HitEffectLife      = 200.0
	HitEffectExpansion = 0.5

	DeathEffectSize      = 5.0
	DeathEffectLife      = 300.0
	DeathEffectExpansion = 0.2

	CollectionEffectSize      = 5.0
	CollectionEffectLife      = 500.0
	CollectionEffectExpansion = 0.1

	LevelUpEffectSize      = 10.0
	LevelUpEffectLife      = 1000.0
	LevelUpEffectExpansion = 0.2

	HealingEffectLife = 1000.0
	HealingEffectRise = 0.5

	SkillEffectExpansion = 0.3
)

const (
	TextCharWidth = 7
	TextOffsetY   = 4
	HUDPadding    = 10
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	GridColor          = color.RGBA{35, 35, 50, 255}
	MapBorderColor     = color.RGBA{150, 70, 70, 220}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	CharacterColor     = color.RGBA{52, 152, 219, 255}
	OrbitColor         = color.RGBA{52, 152, 219, 255}
	PlayerBulletColor  = color.RGBA{255, 255, 255, 255}
	MonsterBulletColor = color.RGBA{155, 89, 182, 255}
	AttackLineColor    = color.RGBA{255, 255, 0, 128}
	HitEffectColor     = color.RGBA{255, 255, 255, 255}
	HealingTextColor   = color.RGBA{46, 204, 113, 255}
	LevelUpColor       = color.RGBA{241, 196, 15, 255}
	HealthBarColor     = color.RGBA{231, 76, 60, 255}
	HealthBarBack      = color.RGBA{60, 20, 20, 255}
	ExpBarColor        = color.RGBA{155, 89, 182, 255}
	PanelColor         = color.RGBA{30, 30, 45, 230}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 230}
	DisabledColor      = color.RGBA{90, 90, 90, 200}
	OverlayColor       = color.RGBA{0, 0, 0, 160}
	StrokeWidth        = float32(2.0)

	MinimapBackColor     = color.RGBA{0, 0, 0, 178}
	MinimapBorderColor   = color.RGBA{85, 85, 85, 255}
	MinimapViewportColor = color.RGBA{46, 204, 113, 255}
	MinimapMonsterColor  = color.RGBA{231, 76, 60, 255}
	MinimapResourceColor = color.RGBA{241, 196, 15, 255}
)
