package arm_cortex_a53

import (
	"github.com/pkg/errors"

	"cortexa/src/lib/bitfield"
)

// TranslationTableAlignment is the smallest alignment of a translation
// table base: one 4KB granule table.
const TranslationTableAlignment = 1 << 12

// BaseAddress returns the physical address held in the BADDR field of a
// TTBRn value.
func BaseAddress[L any](v bitfield.Value[uint64, L], baddr bitfield.Field[uint64, L]) uint64 {
	return v.Read(baddr) << baddr.Offset()
}

// WithBaseAddress returns the BADDR setting for a table at addr. The
// address must be granule aligned and fit the field.
func WithBaseAddress[L any](baddr bitfield.Field[uint64, L], addr uint64) (bitfield.FieldValue[uint64, L], error) {
	if addr%TranslationTableAlignment != 0 {
		return bitfield.FieldValue[uint64, L]{}, errors.Errorf("translation table at %#x is not %d byte aligned",
			addr, TranslationTableAlignment)
	}
	return baddr.Val(addr >> baddr.Offset())
}

// SetUserTable points TTBR0_EL1 at the table at addr for address space
// asid. CnP is left clear.
func SetUserTable(r bitfield.Writeable[uint64, TTBR0_EL1_Register], addr uint64, asid uint16) error {
	base, err := WithBaseAddress(TTBR0_EL1_BADDR, addr)
	if err != nil {
		return err
	}
	bitfield.Write[uint64, TTBR0_EL1_Register](r, base, TTBR0_EL1_ASID.MustVal(uint64(asid)))
	return nil
}

// SetKernelTable points TTBR1_EL1 at the table at addr.
func SetKernelTable(r bitfield.Writeable[uint64, TTBR1_EL1_Register], addr uint64) error {
	base, err := WithBaseAddress(TTBR1_EL1_BADDR, addr)
	if err != nil {
		return err
	}
	bitfield.Write[uint64, TTBR1_EL1_Register](r, base)
	return nil
}
