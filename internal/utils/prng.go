// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
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
	return s.rng.Intn(n)
}

// IntRange возвращает равномерное целое в [min, max], оба конца включены.
func (s *PRNGService) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Range возвращает равномерное число в [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + s.rng.Float64()*(max-min)
	// округление может дать ровно max
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// FloorRange — Range, округлённый вниз до целого.
func (s *PRNGService) FloorRange(min, max float64) float64 {
	return math.Floor(s.Range(min, max))
}
