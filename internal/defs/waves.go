// internal/defs/waves.go
package defs

// SpawnTier описывает, когда становится доступен тип монстра и с каким весом.
// Вероятность выбора равна Weight * difficulty.
type SpawnTier struct {
	Type         MonsterType `yaml:"type"`
	AfterSeconds float64     `yaml:"after_seconds"`
	Weight       float64     `yaml:"weight"`
}

// SpawnTiers проверяются по порядку, каждый своим броском. Первый сработавший
// определяет тип. Если ни один не сработал, появляется обычный монстр.
var SpawnTiers = []SpawnTier{
	{Type: MonsterBoss, AfterSeconds: 60, Weight: 0.05},
	{Type: MonsterElite, AfterSeconds: 30, Weight: 0.1},
	{Type: MonsterRanged, AfterSeconds: 20, Weight: 0.2},
	{Type: MonsterFast, AfterSeconds: 10, Weight: 0.3},
	{Type: MonsterTanker, AfterSeconds: 5, Weight: 0.2},
}
