package loop

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source supplies the randomness the engine consumes: a uniform draw in
// [0,n) and an in-place permutation. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewLockedSource wraps src so it can be shared by Cycles running on
// different goroutines. The wrapped source must not be used directly while
// the locked one is in use.
func NewLockedSource(src Source) Source {
	if src == nil {
		panic("loop: NewLockedSource(nil)")
	}

	return &lockedSource{src: src}
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.Intn(n)
}

func (l *lockedSource) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Shuffle(n, swap)
}

// newClockSource is the default Source when none is configured.
func newClockSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// forkSource returns a new generator seeded from one draw of src. The child
// shares no state with src, so each can be used on its own goroutine.
func forkSource(src Source) Source {
	return rand.New(rand.NewSource(int64(src.Intn(math.MaxInt))))
}

// pickOne draws an index uniformly from [0,n). n must be positive.
func pickOne(src Source, n int) int {
	if n == 1 {
		return 0
	}

	return src.Intn(n)
}

// shuffleEdges permutes es in place.
func shuffleEdges(src Source, es []Edge) {
	src.Shuffle(len(es), func(i, j int) { es[i], es[j] = es[j], es[i] })
}
