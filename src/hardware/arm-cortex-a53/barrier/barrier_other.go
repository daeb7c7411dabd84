//go:build !arm64

package barrier

import "cortexa/src/lib/bitfield"

func dmbSY()    { panic(bitfield.Unsupported("DMB SY")) }
func dmbISH()   { panic(bitfield.Unsupported("DMB ISH")) }
func dmbISHST() { panic(bitfield.Unsupported("DMB ISHST")) }
func dsbSY()    { panic(bitfield.Unsupported("DSB SY")) }
func dsbISH()   { panic(bitfield.Unsupported("DSB ISH")) }
func dsbISHST() { panic(bitfield.Unsupported("DSB ISHST")) }
func isbSY()    { panic(bitfield.Unsupported("ISB SY")) }
