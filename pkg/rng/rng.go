package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source - источник равномерной случайности для игровых движков.
// Все движки семплируют исходы только через этот интерфейс,
// чтобы в тестах можно было подставить детерминированную последовательность.
type Source interface {
	// Float64 возвращает число из [0, 1)
	Float64() float64
	// IntN возвращает целое из [0, n), n должно быть > 0
	IntN(n int) int
}

// Один источник делится между всеми игровыми движками,
// а запросы обслуживаются параллельно - *rand.Rand сам по себе
// не потокобезопасен, поэтому выборка идет под блокировкой
type defaultSource struct {
	mtx sync.Mutex
	r   *rand.Rand
}

// NewDefault - стандартный источник на math/rand с текущим временем в качестве seed
func NewDefault() Source {
	return &defaultSource{
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeeded - детерминированный источник для тестов и воспроизводимых прогонов
func NewSeeded(seed int64) Source {
	return &defaultSource{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (s *defaultSource) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Float64()
}

func (s *defaultSource) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Intn(n)
}
