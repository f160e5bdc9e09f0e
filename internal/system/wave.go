// internal/system/wave.go
package system

import (
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/utils"
)

// SpawnSystem создаёт монстров за краем экрана. Интервал сокращается
// с ростом времени и сложности.
type SpawnSystem struct {
	store         *entity.Store
	rng           utils.Random
	SpawnTimer    float64
	SpawnInterval float64
}

func NewSpawnSystem(store *entity.Store, rng utils.Random) *SpawnSystem {
	return &SpawnSystem{
		store:         store,
		rng:           rng,
		SpawnInterval: config.InitialSpawnInterval,
	}
}

// Reset возвращает таймер и интервал к начальным значениям.
func (s *SpawnSystem) Reset() {
	s.SpawnTimer = 0
	s.SpawnInterval = config.InitialSpawnInterval
}

// Update копит время и при достижении интервала создаёт монстра.
// Возвращает созданного монстра или nil.
func (s *SpawnSystem) Update(deltaTime float64, run *RunState, viewport component.Rect) *entity.Monster {
	s.SpawnTimer += deltaTime
	if s.SpawnTimer < s.SpawnInterval {
		return nil
	}
	s.SpawnTimer = 0

	difficulty := run.Difficulty()
	seconds := run.Seconds()
	monsterType := PickMonsterType(s.rng, seconds, difficulty)
	x, y := SpawnPosition(s.rng, viewport)

	m := entity.NewMonster(s.store.NewEntity(), x, y, monsterType, difficulty, s.rng)
	s.store.AddMonster(m)
	s.SpawnInterval = SpawnInterval(seconds, difficulty)
	return m
}

// PickMonsterType выбирает тип по таблице уровней. Для каждого доступного
// по времени типа делается свой бросок против веса * сложность.
func PickMonsterType(rng utils.Random, seconds, difficulty float64) defs.MonsterType {
	for _, tier := range defs.SpawnTiers {
		if seconds <= tier.AfterSeconds {
			continue
		}
		if rng.Float64() < tier.Weight*difficulty {
			return tier.Type
		}
	}
	return defs.MonsterNormal
}

// SpawnInterval: max(100, 1000 - floor(seconds*10*difficulty))
func SpawnInterval(seconds, difficulty float64) float64 {
	interval := config.InitialSpawnInterval - math.Floor(seconds*config.SpawnRampFactor*difficulty)
	return math.Max(config.MinSpawnInterval, interval)
}

// SpawnPosition выбирает точку за одной из четырёх сторон экрана
// и ограничивает её границами карты.
func SpawnPosition(rng utils.Random, viewport component.Rect) (float64, float64) {
	buffer := config.SpawnBufferMin + rng.Float64()*config.SpawnBufferRange
	var x, y float64
	switch rng.Intn(4) {
	case 0: // сверху
		x = viewport.X + rng.Float64()*viewport.W
		y = viewport.Y - buffer
	case 1: // справа
		x = viewport.X + viewport.W + buffer
		y = viewport.Y + rng.Float64()*viewport.H
	case 2: // снизу
		x = viewport.X + rng.Float64()*viewport.W
		y = viewport.Y + viewport.H + buffer
	default: // слева
		x = viewport.X - buffer
		y = viewport.Y + rng.Float64()*viewport.H
	}
	x = utils.Clamp(x, 0, config.MapWidth-config.MonsterSize)
	y = utils.Clamp(y, 0, config.MapHeight-config.MonsterSize)
	return x, y
}
