package render

import (
	"image/color"

	"life-trick/pkg/life"
)

// Frame is a colour-mapped generation indexed [row][column].
type Frame [][]color.RGBA

var (
	// LiveColor paints live cells.
	LiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DeadColor paints dead cells.
	DeadColor = color.RGBA{}
)

// ColorMap maps every cell of g to live or dead, preserving shape.
func ColorMap(g life.Grid, live, dead color.RGBA) Frame {
	out := make(Frame, len(g))
	for y, row := range g {
		px := make([]color.RGBA, len(row))
		for x, alive := range row {
			if alive {
				px[x] = live
			} else {
				px[x] = dead
			}
		}
		out[y] = px
	}
	return out
}

// Bytes flattens the frame into row-major RGBA bytes.
func (f Frame) Bytes() []byte {
	n := 0
	for _, row := range f {
		n += len(row)
	}
	buf := make([]byte, 0, 4*n)
	for _, row := range f {
		for _, c := range row {
			buf = append(buf, c.R, c.G, c.B, c.A)
		}
	}
	return buf
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
