package sysreg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type AccessDef struct {
	read  bool
	write bool
	isSet bool //did they explictly set the field
}

func (a AccessDef) CanRead() bool {
	return a.read
}
func (a AccessDef) CanWrite() bool {
	return a.write
}
func (a AccessDef) IsSet() bool {
	return a.isSet
}

// ParseAccess understands "r", "w" and "rw".
func ParseAccess(s string) (AccessDef, error) {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	var a AccessDef
	switch s {
	case "": //do nothing
	case "r":
		a.read = true
		a.isSet = true
	case "w":
		a.write = true
		a.isSet = true
	case "rw":
		a.write = true
		a.read = true
		a.isSet = true
	default:
		return a, errors.Errorf("unable to understand access value %q", s)
	}
	return a, nil
}

func (a *AccessDef) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseAccess(node.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	*a = parsed
	return nil
}

func (a AccessDef) String() string {
	switch {
	case a.read && a.write:
		return "read-write"
	case a.write:
		return "write-only"
	case a.read:
		return "read-only"
	}
	return "unset"
}

type BitRangeDef struct {
	Lsb int
	Msb int
	set bool
}

func (b BitRangeDef) String() string {
	if b.Msb == b.Lsb {
		return fmt.Sprintf("[%d]", b.Lsb)
	}
	return fmt.Sprintf("[%d:%d]", b.Msb, b.Lsb)
}
func (b BitRangeDef) Width() int {
	return (b.Msb - b.Lsb) + 1
}
func (b BitRangeDef) IsSet() bool {
	return b.set
}

// BitRange builds a range from msb down to lsb.
func BitRange(Msb int, Lsb int) (BitRangeDef, error) {
	if Msb > 63 || Lsb > 63 || Msb < 0 || Lsb < 0 {
		return BitRangeDef{}, errors.Errorf("bit range [%d:%d] out of range", Msb, Lsb)
	}
	if Msb < Lsb {
		return BitRangeDef{}, errors.Errorf("bit range [%d:%d] has msb < lsb", Msb, Lsb)
	}
	return BitRangeDef{Msb: Msb, Lsb: Lsb, set: true}, nil
}

// ParseBitRange understands "msb:lsb" and a single bit number.
func ParseBitRange(s string) (BitRangeDef, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 2 {
		return BitRangeDef{}, errors.Errorf("bad bit range %q", s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return BitRangeDef{}, errors.Wrapf(err, "bad bit range %q", s)
		}
		nums[i] = n
	}
	if len(nums) == 1 {
		return BitRange(nums[0], nums[0])
	}
	return BitRange(nums[0], nums[1])
}

func (b *BitRangeDef) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseBitRange(node.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	*b = parsed
	return nil
}

// EncodingDef is the op0, op1, CRn, CRm, op2 tuple that names a system
// register in MRS and MSR.
type EncodingDef struct {
	Op0, Op1, CRn, CRm, Op2 uint32
}

var encodingRE = regexp.MustCompile(`^[Ss]([0-9]+)_([0-9]+)_[Cc]([0-9]+)_[Cc]([0-9]+)_([0-9]+)$`)

// ParseEncoding understands the assembler's generic S<op0>_<op1>_C<n>_C<m>_<op2>
// spelling.
func ParseEncoding(s string) (EncodingDef, error) {
	m := encodingRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return EncodingDef{}, errors.Errorf("bad encoding %q, want S<op0>_<op1>_C<n>_C<m>_<op2>", s)
	}
	var v [5]uint32
	for i := range v {
		n, err := strconv.ParseUint(m[i+1], 10, 32)
		if err != nil {
			return EncodingDef{}, errors.Wrapf(err, "bad encoding %q", s)
		}
		v[i] = uint32(n)
	}
	e := EncodingDef{Op0: v[0], Op1: v[1], CRn: v[2], CRm: v[3], Op2: v[4]}
	if e.Op0 < 2 || e.Op0 > 3 || e.Op1 > 7 || e.CRn > 15 || e.CRm > 15 || e.Op2 > 7 {
		return EncodingDef{}, errors.Errorf("encoding %q out of range", s)
	}
	return e, nil
}

func (e EncodingDef) String() string {
	return fmt.Sprintf("S%d_%d_C%d_C%d_%d", e.Op0, e.Op1, e.CRn, e.CRm, e.Op2)
}

func (e EncodingDef) IsSet() bool {
	return e != EncodingDef{}
}

func (e *EncodingDef) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseEncoding(node.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	*e = parsed
	return nil
}

// Uint64 accepts any Go integer literal spelling, 0b and 0x included.
type Uint64 uint64

func (u *Uint64) UnmarshalYAML(node *yaml.Node) error {
	s := strings.ReplaceAll(strings.TrimSpace(node.Value), "_", "")
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return errors.Wrapf(err, "line %d: bad value %q", node.Line, node.Value)
	}
	*u = Uint64(n)
	return nil
}
