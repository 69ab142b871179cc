package randutil

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestSeed(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Unix(100, 5))

	assert.Equal(t, int64(7), Seed(7, clock))
	assert.Equal(t, time.Unix(100, 5).UnixNano(), Seed(0, clock))
}

func TestDeriveSpreadsStreams(t *testing.T) {
	seen := map[int64]bool{}
	for n := range 16 {
		s := Derive(1, n)
		assert.False(t, seen[s], "stream %d collides", n)
		seen[s] = true
	}
}
