//go:build !arm64

package barrier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cortexa/src/lib/bitfield"
)

func TestBarriersPanicOffTarget(t *testing.T) {
	for name, fn := range map[string]func(){
		"DMB SY":    func() { DMB(SY{}) },
		"DMB ISH":   func() { DMB(ISH{}) },
		"DSB ISHST": func() { DSB(ISHST{}) },
		"ISB SY":    func() { ISB(SY{}) },
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				assert.True(t, ok, name)
				assert.True(t, errors.Is(err, bitfield.ErrUnsupportedTarget), name)
				assert.Contains(t, err.Error(), name)
			}()
			fn()
		}()
	}
}
