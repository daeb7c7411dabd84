// Package barrier issues the AArch64 memory and instruction barriers.
//
// The shareability domain is a type, not a value: SY, ISH and ISHST are
// zero-size markers and each one's methods run an assembly routine with the
// domain encoded in the instruction, so picking a domain costs no branch.
// ISB only accepts SY, the one domain the architecture defines for it.
// DMB, DSB and ISB are legal at every exception level.
package barrier

// SY is the full system.
type SY struct{}

// ISH is the inner shareable domain: the cores of a cluster.
type ISH struct{}

// ISHST is ISH, waiting only for stores.
type ISHST struct{}

// Option returns the CRm value encoding the domain.
func (SY) Option() uint8    { return 0xf }
func (ISH) Option() uint8   { return 0xb }
func (ISHST) Option() uint8 { return 0xa }

func (SY) String() string    { return "SY" }
func (ISH) String() string   { return "ISH" }
func (ISHST) String() string { return "ISHST" }

func (SY) DMB()    { dmbSY() }
func (ISH) DMB()   { dmbISH() }
func (ISHST) DMB() { dmbISHST() }

func (SY) DSB()    { dsbSY() }
func (ISH) DSB()   { dsbISH() }
func (ISHST) DSB() { dsbISHST() }

func (SY) ISB() { isbSY() }

// Domain is any shareability marker.
type Domain interface {
	Option() uint8
	String() string
}

// DataDomain is the set of domains DMB and DSB accept.
type DataDomain interface {
	SY | ISH | ISHST
	Domain
	DMB()
	DSB()
}

// InstructionDomain is the set of domains ISB accepts.
type InstructionDomain interface {
	SY
	Domain
	ISB()
}

// DMB orders memory accesses before the barrier against those after it,
// as observed by the agents of d.
func DMB[D DataDomain](d D) { d.DMB() }

// DSB is DMB that also waits for the accesses to complete before any
// later instruction executes.
func DSB[D DataDomain](d D) { d.DSB() }

// ISB flushes the pipeline so later instructions see the effects of
// earlier system register writes.
func ISB[D InstructionDomain](d D) { d.ISB() }
