// Package check hammers hamt sets with random integers and compares every result with a
// reference set built on github.com/benbjohnson/immutable.
package check

import (
	"github.com/benbjohnson/immutable"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/aglyzov/go-hamt/hamt"
)

// Config controls a checking run.
type Config struct {
	Seed   int64 // seed of the value generator
	Rounds int   // number of randomized rounds
	Size   int   // max length of a generated sequence
	Span   int   // small values are drawn from [-Span, Span] to force overlaps
}

// boundarySize is the number of distinct values in the boundary round (one more than a
// full internal node).
const boundarySize = 33

func (cfg Config) validate() error {
	switch {
	case cfg.Rounds <= 0:
		return errors.Errorf("rounds must be positive, got %d", cfg.Rounds)
	case cfg.Size <= 0:
		return errors.Errorf("size must be positive, got %d", cfg.Size)
	case cfg.Span <= 0:
		return errors.Errorf("span must be positive, got %d", cfg.Span)
	}

	return nil
}

// Run executes the fixed scenarios followed by cfg.Rounds randomized rounds. It stops at the
// first mismatch.
func Run(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	faker := gofakeit.New(cfg.Seed)

	if err := checkBoundary(faker); err != nil {
		return errors.Wrap(err, "boundary scenario")
	}

	if err := checkCollisions(); err != nil {
		return errors.Wrap(err, "collision scenario")
	}

	for round := 0; round < cfg.Rounds; round++ {
		var (
			hasher = hasherFor(round)
			a      = genValues(faker, cfg, round)
			b      = genValues(faker, cfg, round)
		)

		if err := checkPair(hasher, a, b); err != nil {
			return errors.Wrapf(err, "round %d (a=%v, b=%v)", round, a, b)
		}

		log.Debug().Int("round", round).Int("a", len(a)).Int("b", len(b)).Msg("round passed")
	}

	log.Info().Int64("seed", cfg.Seed).Int("rounds", cfg.Rounds).Msg("all checks passed")

	return nil
}

// Folded hashes an int64 by xoring its halves, so 1 and 1<<32 collide.
var Folded = hamt.Func(
	func(v int64) uint32 {
		u := uint64(v)
		return uint32(u ^ u>>32)
	},
	func(a, b int64) bool { return a == b },
)

// Narrow squeezes every int64 into 64 hashes so most values share a bucket.
var Narrow = hamt.Func(
	func(v int64) uint32 { return uint32(uint64(v) % 64) },
	func(a, b int64) bool { return a == b },
)

func hasherFor(round int) hamt.Hasher[int64] {
	switch round % 3 {
	case 1:
		return Folded
	case 2:
		return Narrow
	}

	return hamt.Default(int64(0))
}

func genValues(faker *gofakeit.Faker, cfg Config, round int) []int64 {
	values := make([]int64, faker.Number(0, cfg.Size))

	for i := range values {
		if round%2 == 0 {
			values[i] = int64(faker.Number(-cfg.Span, cfg.Span))
		} else {
			values[i] = faker.Int64()
		}
	}

	return values
}

func checkBoundary(faker *gofakeit.Faker) error {
	values := make([]int64, 0, boundarySize+1)

	for ref := newReference(); ref.Len() < boundarySize; {
		v := faker.Int64()

		if _, ok := ref.Get(v); ok {
			continue
		}

		ref = ref.Set(v, struct{}{})
		values = append(values, v)
	}

	values = append(values, values[0])

	set := hamt.New(hamt.Default(int64(0)), values...)

	if n := set.Len(); n != boundarySize {
		return errors.Errorf("expected %d elements, got %d", boundarySize, n)
	}

	return compare("create", set, referenceOf(values))
}

func checkCollisions() error {
	var (
		a = []int64{1, 1 << 32}
		b = []int64{2, 2 << 32}
	)

	if Folded.Hash(a[0]) != Folded.Hash(a[1]) {
		return errors.New("folded hash does not collide")
	}

	return checkPair(Folded, a, b)
}

// checkPair compares create, union, intersect and remove results of both sequences.
func checkPair(hasher hamt.Hasher[int64], a, b []int64) error {
	var (
		setA = hamt.New(hasher, a...)
		setB = hamt.New(hasher, b...)
		refA = referenceOf(a)
		refB = referenceOf(b)
	)

	if err := compare("create", setA, refA); err != nil {
		return err
	}

	if err := compare("union", setA.Union(setB), union(refA, refB)); err != nil {
		return err
	}

	if err := compare("union (swapped)", setB.Union(setA), union(refA, refB)); err != nil {
		return err
	}

	if err := compare("intersect", setA.Intersect(setB), intersect(refA, refB)); err != nil {
		return err
	}

	if err := compare("intersect (swapped)", setB.Intersect(setA), intersect(refA, refB)); err != nil {
		return err
	}

	for _, v := range a {
		setA, refA = setA.Remove(v), refA.Delete(v)

		if err := compare("remove", setA, refA); err != nil {
			return errors.Wrapf(err, "after removing %d", v)
		}
	}

	return nil
}

func compare(op string, set hamt.Set[int64], ref *immutable.Map[int64, struct{}]) error {
	if n, m := set.Len(), ref.Len(); n != m {
		return errors.Errorf("%s: expected %d elements, got %d: %v", op, m, n, set)
	}

	for v := range set.All() {
		if _, ok := ref.Get(v); !ok {
			return errors.Errorf("%s: unexpected element %d in %v", op, v, set)
		}
	}

	for itr := ref.Iterator(); !itr.Done(); {
		v, _, _ := itr.Next()

		if !set.Contains(v) {
			return errors.Errorf("%s: missing element %d in %v", op, v, set)
		}
	}

	return nil
}

func newReference() *immutable.Map[int64, struct{}] {
	return immutable.NewMap[int64, struct{}](immutable.NewHasher(int64(0)))
}

func referenceOf(values []int64) *immutable.Map[int64, struct{}] {
	ref := newReference()

	for _, v := range values {
		ref = ref.Set(v, struct{}{})
	}

	return ref
}

func union(a, b *immutable.Map[int64, struct{}]) *immutable.Map[int64, struct{}] {
	for itr := b.Iterator(); !itr.Done(); {
		v, _, _ := itr.Next()
		a = a.Set(v, struct{}{})
	}

	return a
}

func intersect(a, b *immutable.Map[int64, struct{}]) *immutable.Map[int64, struct{}] {
	ref := newReference()

	for itr := a.Iterator(); !itr.Done(); {
		v, _, _ := itr.Next()

		if _, ok := b.Get(v); ok {
			ref = ref.Set(v, struct{}{})
		}
	}

	return ref
}
