package sysreg

import (
	"go/token"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate checks everything the generated code would otherwise reject at
// package initialization, and reports every problem found rather than the
// first.
func Validate(dev *DeviceDef) error {
	var err error
	if !token.IsIdentifier(dev.Package) {
		err = multierr.Append(err, errors.Errorf("package %q is not an identifier", dev.Package))
	}
	seen := map[string]bool{}
	for i, r := range dev.Register {
		if r.Name == "" {
			err = multierr.Append(err, errors.Errorf("register #%d has no name", i))
			continue
		}
		if seen[r.Name] {
			err = multierr.Append(err, errors.Errorf("%s: declared twice", r.Name))
		}
		seen[r.Name] = true
		err = multierr.Append(err, validateRegister(r))
	}
	return err
}

func validateRegister(r *RegisterDef) error {
	var err error
	fail := func(format string, args ...any) {
		err = multierr.Append(err, errors.Errorf(r.Name+": "+format, args...))
	}
	if !token.IsIdentifier(r.Name) {
		fail("name is not an identifier")
	}
	if !r.Encoding.IsSet() {
		fail("missing encoding")
	}
	if r.Size != 32 && r.Size != 64 {
		fail("size %d, want 32 or 64", r.Size)
	}
	if !r.Access.IsSet() {
		fail("missing access (r, w or rw)")
	}
	var used uint64
	owner := map[int]string{}
	names := map[string]bool{}
	for _, f := range r.Field {
		if !token.IsIdentifier(r.Name + "_" + f.Name) {
			fail("field %q does not form an identifier", f.Name)
		}
		if names[f.Name] {
			fail("field %s declared twice", f.Name)
		}
		names[f.Name] = true
		if !f.BitRange.IsSet() {
			fail("field %s has no bits", f.Name)
			continue
		}
		if f.BitRange.Msb >= r.Size {
			fail("field %s%s exceeds %d bits", f.Name, f.BitRange, r.Size)
			continue
		}
		mask := fieldMask(f.BitRange)
		if used&mask != 0 {
			for bit := f.BitRange.Lsb; bit <= f.BitRange.Msb; bit++ {
				if other, ok := owner[bit]; ok {
					fail("field %s%s overlaps %s", f.Name, f.BitRange, other)
					break
				}
			}
		}
		used |= mask
		for bit := f.BitRange.Lsb; bit <= f.BitRange.Msb; bit++ {
			owner[bit] = f.Name
		}
		err = multierr.Append(err, validateValues(r, f))
	}
	return err
}

func validateValues(r *RegisterDef, f *FieldDef) error {
	var err error
	limit := fieldMask(BitRangeDef{Msb: f.BitRange.Width() - 1})
	byValue := map[Uint64]string{}
	byName := map[string]bool{}
	for _, e := range f.EnumeratedValue {
		where := r.Name + "." + f.Name
		if !token.IsIdentifier(r.Name + "_" + f.Name + "_" + e.Name) {
			err = multierr.Append(err, errors.Errorf("%s: value %q does not form an identifier", where, e.Name))
		}
		if uint64(e.Value)&^limit != 0 {
			err = multierr.Append(err, errors.Errorf("%s: value %s=%#x does not fit in %d bits",
				where, e.Name, uint64(e.Value), f.BitRange.Width()))
		}
		if prev, dup := byValue[e.Value]; dup {
			err = multierr.Append(err, errors.Errorf("%s: values %s and %s are both %#x",
				where, prev, e.Name, uint64(e.Value)))
		}
		if byName[e.Name] {
			err = multierr.Append(err, errors.Errorf("%s: value %s declared twice", where, e.Name))
		}
		byValue[e.Value] = e.Name
		byName[e.Name] = true
	}
	return err
}

// fieldMask returns the register-position mask of b.
func fieldMask(b BitRangeDef) uint64 {
	width := b.Width()
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1)<<width - 1) << b.Lsb
}
