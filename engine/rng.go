package engine

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// rand64 adapts gonum's MT19937 generator to math/rand's Source64 so it
// can back a *rand.Rand, the same adaptation
// luxfi-consensus/engine/chain/mt19937_wrapper.go performs to plug
// MT19937 into a sampler.Source. Reproducibility of world init is
// explicitly not required by §4.F; MT19937 is used here because it is
// the generator already present in the reference corpus, not because
// determinism is load-bearing.
type rand64 struct {
	*rand.Rand
}

type mt19937Source struct {
	mt *prng.MT19937
}

func newRand64(seed int64) *rand64 {
	src := &mt19937Source{mt: prng.NewMT19937()}
	src.Seed(seed)
	return &rand64{Rand: rand.New(src)}
}

func (s *mt19937Source) Seed(seed int64) { s.mt.Seed(uint64(seed)) }
func (s *mt19937Source) Uint64() uint64  { return s.mt.Uint64() }
func (s *mt19937Source) Int63() int64    { return int64(s.mt.Uint64() >> 1) }

// defaultSeed produces an implementation-defined, non-reproduced seed
// from the wall clock, matching §4.F's "random seed is
// implementation-defined" clause.
func defaultSeed() int64 { return time.Now().UnixNano() }
