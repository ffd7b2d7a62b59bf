package render

import (
	"image/color"
	"iter"
)

// fillBinaryRGBA converts a stream of cell states into RGBA pixels in buf,
// four bytes per cell in yield order. Cells beyond the end of buf are
// dropped.
func fillBinaryRGBA(buf []byte, cells iter.Seq[bool], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	base := 0
	for alive := range cells {
		if base+4 > len(buf) {
			return
		}
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			base += 4
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
		base += 4
	}
}
