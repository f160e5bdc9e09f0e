// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random: источник случайности, который используют сущности и системы.
// В тестах подменяется заранее заданной последовательностью.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService: это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance возвращает true с вероятностью p.
func Chance(r Random, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// IntRange возвращает целое в диапазоне [min, max] включительно.
func IntRange(r Random, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// SequenceRandom отдаёт значения из заранее заданного списка по кругу.
// Нужен для детерминированных сценариев.
type SequenceRandom struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

// Float64 возвращает следующее число из Floats (0, если список пуст).
func (s *SequenceRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// Intn возвращает следующее число из Ints, приведённое к диапазону [0, n).
func (s *SequenceRandom) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)] % n
	s.ii++
	if v < 0 {
		v += n
	}
	return v
}
