package barrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainOptions(t *testing.T) {
	for _, c := range []struct {
		d    Domain
		want uint8
		name string
	}{
		{SY{}, 0xf, "SY"},
		{ISH{}, 0xb, "ISH"},
		{ISHST{}, 0xa, "ISHST"},
	} {
		assert.Equal(t, c.want, c.d.Option())
		assert.Equal(t, c.name, c.d.String())
	}
}

// Each generic barrier must instantiate for exactly the domains the
// architecture allows; ISB[ISH] does not compile.
var (
	_ = DMB[SY]
	_ = DMB[ISH]
	_ = DMB[ISHST]
	_ = DSB[SY]
	_ = DSB[ISH]
	_ = DSB[ISHST]
	_ = ISB[SY]
)
