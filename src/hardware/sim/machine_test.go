package sim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortexa/src/hardware/arm-cortex-a53/barrier"
)

// messagePassing runs the MP litmus test: core 0 writes data then a flag,
// core 1 waits for the flag then reads data.
func messagePassing(seed int64, fenced bool) uint64 {
	m := NewMachine(2, seed)
	writer, reader := m.Core(0), m.Core(1)

	writer.Store("data", 42)
	if fenced {
		writer.DMB(barrier.ISHST{})
	}
	writer.Store("flag", 1)

	for reader.Load("flag") == 0 {
	}
	if fenced {
		reader.DMB(barrier.ISH{})
	}
	return reader.Load("data")
}

func TestMessagePassingReordersWithoutBarrier(t *testing.T) {
	stale := 0
	for seed := int64(0); seed < 500; seed++ {
		if messagePassing(seed, false) != 42 {
			stale++
		}
	}
	assert.NotZero(t, stale, "the model should expose store reordering")
}

func TestMessagePassingWithBarrier(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		require.Equal(t, uint64(42), messagePassing(seed, true), "seed %d", seed)
	}
}

func TestMessagePassingConcurrent(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m := NewMachine(2, seed)
		var wg sync.WaitGroup
		var got uint64
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := m.Core(0)
			c.Store("data", 7)
			c.DSB(barrier.SY{})
			c.Store("flag", 1)
		}()
		go func() {
			defer wg.Done()
			c := m.Core(1)
			for c.Load("flag") == 0 {
			}
			c.DMB(barrier.SY{})
			got = c.Load("data")
		}()
		wg.Wait()
		assert.Equal(t, uint64(7), got)
	}
}

func TestLoadForwardsOwnStores(t *testing.T) {
	m := NewMachine(2, 1)
	m.drainOdds = 0
	c := m.Core(0)
	c.Store("x", 1)
	c.Store("x", 2)
	assert.Equal(t, uint64(2), c.Load("x"))
	assert.Zero(t, m.Core(1).Load("x"), "not visible to other cores yet")
	assert.Equal(t, 2, c.Pending())

	m.Quiesce()
	assert.Equal(t, uint64(2), m.Core(1).Load("x"))
	assert.Zero(t, c.Pending())
}

func TestSameAddressStoresStayOrdered(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m := NewMachine(2, seed)
		w, r := m.Core(0), m.Core(1)
		for v := uint64(1); v <= 5; v++ {
			w.Store("x", v)
		}
		last := uint64(0)
		for r.Load("x") != 5 {
			got := m.Memory("x")
			require.GreaterOrEqual(t, got, last, "seed %d", seed)
			last = got
		}
	}
}

func TestBarriersDoNotChangeValues(t *testing.T) {
	m := NewMachine(1, 3)
	c := m.Core(0)
	c.Store("a", 1)
	c.Store("b", 2)
	c.DMB(barrier.ISH{})
	c.DSB(barrier.SY{})
	c.ISB(barrier.SY{})
	assert.Equal(t, uint64(1), c.Load("a"))
	assert.Equal(t, uint64(2), c.Load("b"))
	assert.Equal(t, uint64(1), m.Memory("a"))
	assert.Equal(t, uint64(2), m.Memory("b"))
	assert.Equal(t, 2, c.DataBarriers)
	assert.Equal(t, 1, c.InstructionBarriers)
	assert.Equal(t, "core0", c.String())
	assert.Equal(t, 1, m.Cores())
}
