package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cortexa/src/hardware/arm-cortex-a53/barrier"
	"cortexa/src/lib/bitfield"
)

type ctl struct{}

var (
	ctlLayout = bitfield.NewLayout[uint32, ctl]("CTL")
	ctlA      = ctlLayout.Field("A", 0, 1)
	ctlB      = ctlLayout.Field("B", 1, 1)
	ctlCount  = ctlLayout.Field("COUNT", 8, 8)
)

func TestRegisterViewRunsBitfieldHelpers(t *testing.T) {
	m := NewMachine(2, 9)
	r0 := NewRegister[uint32, ctl](m.Core(0), "ctl")
	r1 := NewRegister[uint32, ctl](m.Core(1), "ctl")

	bitfield.Write[uint32, ctl](r0, ctlA.MustVal(1), ctlCount.MustVal(3))
	m.Core(0).DMB(barrier.ISH{})
	assert.True(t, bitfield.IsSet[uint32, ctl](r1, ctlA))
	assert.Equal(t, uint32(3), bitfield.Read[uint32, ctl](r1, ctlCount))
}

func TestConcurrentModifyLosesUpdates(t *testing.T) {
	m := NewMachine(2, 5)
	r0 := NewRegister[uint32, ctl](m.Core(0), "ctl")
	r1 := NewRegister[uint32, ctl](m.Core(1), "ctl")

	// Both cores read before either writes back.
	v0 := r0.Get()
	v1 := r1.Get()
	r0.Set(v0.Modify(ctlA.MustVal(1)))
	m.Quiesce()
	r1.Set(v1.Modify(ctlB.MustVal(1)))
	m.Quiesce()
	final := bitfield.ValueOf[uint32, ctl](uint32(m.Memory("ctl")))
	assert.False(t, final.IsSet(ctlA), "core 0's update was overwritten")
	assert.True(t, final.IsSet(ctlB))

	// Serialized read-modify-writes keep both.
	bitfield.ModifyFields[uint32, ctl](r0, ctlA.MustVal(1))
	m.Quiesce()
	bitfield.ModifyFields[uint32, ctl](r1, ctlCount.MustVal(9))
	m.Quiesce()
	final = bitfield.ValueOf[uint32, ctl](uint32(m.Memory("ctl")))
	assert.True(t, final.MatchesAll(ctlA.MustVal(1), ctlB.MustVal(1), ctlCount.MustVal(9)))
}
