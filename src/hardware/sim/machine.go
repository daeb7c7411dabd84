// Package sim is a software model of a weakly ordered multi-core machine,
// for testing code that relies on memory barriers without hardware.
//
// Each core buffers its stores and the machine drains buffered stores to
// shared memory in random order, one at a time, as cores execute. Without
// a barrier a second core can therefore see a core's stores out of program
// order. DMB and DSB drain the issuing core's buffer. Loads are performed
// in order and see the core's own buffered stores.
package sim

import (
	"fmt"
	"math/rand"
	"sync"

	"cortexa/src/hardware/arm-cortex-a53/barrier"
)

// Machine holds the shared memory and the cores. It is safe to drive
// different cores from different goroutines.
type Machine struct {
	mu     sync.Mutex
	memory map[string]uint64
	cores  []*Core
	rand   *rand.Rand
	// drainOdds is the chance in 100 that a step drains a store.
	drainOdds int
}

// NewMachine builds a machine with n cores. The same seed replays the same
// drain order for the same sequence of operations.
func NewMachine(n int, seed int64) *Machine {
	m := &Machine{
		memory:    map[string]uint64{},
		rand:      rand.New(rand.NewSource(seed)),
		drainOdds: 50,
	}
	for i := 0; i < n; i++ {
		m.cores = append(m.cores, &Core{id: i, m: m})
	}
	return m
}

func (m *Machine) Core(i int) *Core { return m.cores[i] }

func (m *Machine) Cores() int { return len(m.cores) }

// Memory returns what shared memory holds at addr, ignoring store buffers.
func (m *Machine) Memory(addr string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.memory[addr]
}

// Quiesce drains every store buffer.
func (m *Machine) Quiesce() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cores {
		c.drainAll()
	}
}

// step lets time pass: maybe one buffered store, of any core, reaches
// memory. Called with mu held.
func (m *Machine) step() {
	if m.rand.Intn(100) >= m.drainOdds {
		return
	}
	var candidates []*Core
	for _, c := range m.cores {
		if len(c.buffer) > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return
	}
	candidates[m.rand.Intn(len(candidates))].drainOne(m.rand)
}

type store struct {
	addr  string
	value uint64
}

// Core is one processing element.
type Core struct {
	id     int
	m      *Machine
	buffer []store

	DataBarriers        int
	InstructionBarriers int
}

func (c *Core) ID() int { return c.id }

func (c *Core) String() string { return fmt.Sprintf("core%d", c.id) }

// Store buffers a write to addr.
func (c *Core) Store(addr string, v uint64) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.buffer = append(c.buffer, store{addr: addr, value: v})
	c.m.step()
}

// Load reads addr, forwarding from the core's own newest buffered store.
func (c *Core) Load(addr string) uint64 {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	v, ok := c.forward(addr)
	if !ok {
		v = c.m.memory[addr]
	}
	c.m.step()
	return v
}

// Pending is the number of stores not yet visible to other cores.
func (c *Core) Pending() int {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return len(c.buffer)
}

// DMB makes every store issued before it visible to the cores of d before
// any store issued after it. The model has one domain, so all domains
// behave alike, and every buffered access is a store, so ISHST is as
// strong as the others.
func (c *Core) DMB(d barrier.Domain) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.drainAll()
	c.DataBarriers++
}

// DSB is DMB; the model has no instructions that could overtake it.
func (c *Core) DSB(d barrier.Domain) { c.DMB(d) }

// ISB has no effect on data.
func (c *Core) ISB(barrier.SY) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.InstructionBarriers++
}

func (c *Core) forward(addr string) (uint64, bool) {
	for i := len(c.buffer) - 1; i >= 0; i-- {
		if c.buffer[i].addr == addr {
			return c.buffer[i].value, true
		}
	}
	return 0, false
}

// drainOne retires a random buffered store. Stores to the same address
// stay in order.
func (c *Core) drainOne(r *rand.Rand) {
	var eligible []int
	seen := map[string]bool{}
	for i, s := range c.buffer {
		if !seen[s.addr] {
			eligible = append(eligible, i)
			seen[s.addr] = true
		}
	}
	i := eligible[r.Intn(len(eligible))]
	c.m.memory[c.buffer[i].addr] = c.buffer[i].value
	c.buffer = append(c.buffer[:i], c.buffer[i+1:]...)
}

func (c *Core) drainAll() {
	for _, s := range c.buffer {
		c.m.memory[s.addr] = s.value
	}
	c.buffer = c.buffer[:0]
}
