package render

import (
	"bufio"
	"io"
)

// WriteText draws f as terminal text: cells painted LiveColor become a full
// block, everything else a space.
func WriteText(w io.Writer, f Frame) error {
	bw := bufio.NewWriter(w)
	for _, row := range f {
		for _, c := range row {
			if c == LiveColor {
				bw.WriteString("█")
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
