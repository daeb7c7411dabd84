package sysreg

const (
	mrsBase uint32 = 0xd5300000
	msrBase uint32 = 0xd5100000
)

// MRS returns the instruction word of MRS X<rt>, <e>.
func MRS(e EncodingDef, rt uint32) uint32 {
	return mrsBase | e.operand() | rt&0x1f
}

// MSR returns the instruction word of MSR <e>, X<rt>.
func MSR(e EncodingDef, rt uint32) uint32 {
	return msrBase | e.operand() | rt&0x1f
}

func (e EncodingDef) operand() uint32 {
	return (e.Op0-2)<<19 | e.Op1<<16 | e.CRn<<12 | e.CRm<<8 | e.Op2<<5
}
