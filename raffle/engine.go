// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	crand "crypto/rand"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/danielhkuo/quickly-draw/models"
)

// Source is the read view of the registry the engine draws from.
type Source interface {
	ListAll() ([]models.Registration, error)
}

// Engine draws winning numbers from the registered number pool.
type Engine struct {
	src Source

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

type Option func(*Engine)

// WithRand sets the random source; tests use it for reproducible draws
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds a PCG generator with seed
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{src: src}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewChaCha8(randomSeed()))
	}
	return e
}

func randomSeed() [32]byte {
	var seed [32]byte
	crand.Read(seed[:]) // never returns an error since Go 1.24
	return seed
}

// Draw picks n distinct registered numbers uniformly at random and
// attributes each to its registrant. Numbers whose registrant has no name
// are labelled models.Unassigned.
func (e *Engine) Draw(n int) (models.DrawResult, error) {
	if n <= 0 {
		return models.DrawResult{}, ErrInvalidQuantity
	}

	registrations, err := e.src.ListAll()
	if err != nil {
		return models.DrawResult{}, err
	}

	pool, owners := buildPool(registrations)
	if len(pool) == 0 {
		return models.DrawResult{}, ErrEmptyPool
	}
	if n > len(pool) {
		return models.DrawResult{}, &InsufficientPoolError{Requested: n, PoolSize: len(pool)}
	}

	drawn := e.sample(pool, n)
	slices.Sort(drawn)

	result := models.DrawResult{
		Numbers: drawn,
		Winners: make(map[int]string, n),
		Entries: make([]models.DrawEntry, 0, n),
	}
	for _, num := range drawn {
		winner, ok := owners[num]
		if !ok || strings.TrimSpace(winner) == "" {
			winner = models.Unassigned
		}
		result.Winners[num] = winner
		result.Entries = append(result.Entries, models.DrawEntry{Number: num, Winner: winner})
	}

	slog.Info("draw completed", "requested", n, "pool_size", len(pool), "numbers", drawn)

	return result, nil
}

// buildPool returns the distinct numbers in ascending order and the first
// registrant, by insertion order, that listed each of them.
func buildPool(registrations []models.Registration) ([]int, map[int]string) {
	owners := make(map[int]string)
	var pool []int
	for _, reg := range registrations {
		for _, num := range reg.Numbers {
			if _, seen := owners[num]; seen {
				continue
			}
			owners[num] = reg.Name
			pool = append(pool, num)
		}
	}
	slices.Sort(pool)
	return pool, owners
}

// sample runs a partial Fisher-Yates shuffle over a copy of pool.
// pool must be in a stable order for seeded draws to repeat.
func (e *Engine) sample(pool []int, n int) []int {
	picked := slices.Clone(pool)

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < n; i++ {
		j := i + e.rng.IntN(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:n]
}
