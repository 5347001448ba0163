// Package hexdump renders memory blocks labelled with their target-space
// addresses.
package hexdump

import (
	"fmt"
	"io"
	"strings"

	"memreach/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options controls the dump layout
type Options struct {
	// BytesPerLine defines the number of bytes to display per line
	BytesPerLine int

	// ShowASCII determines whether to show the ASCII pane
	ShowASCII bool

	// Color colorizes the address column
	Color bool
}

// DefaultOptions returns the usual 16-bytes-per-line layout with the ASCII
// pane enabled.
func DefaultOptions() Options {
	return Options{BytesPerLine: 16, ShowASCII: true}
}

// Fprint writes a hexdump of data to w. Each line is labelled with the
// target address of its first byte, starting at base.
func Fprint(w io.Writer, base process.Address, data []byte, opts Options) error {
	bpl := opts.BytesPerLine
	if bpl <= 0 {
		bpl = 16
	}

	for off := 0; off < len(data); off += bpl {
		end := off + bpl
		if end > len(data) {
			end = len(data)
		}
		line := data[off:end]

		addr := fmt.Sprintf("%016X", uint64(base)+uint64(off))
		if opts.Color {
			addr = coloransi.Color(coloransi.Cyan, coloransi.Black, addr)
		}

		var hexpane strings.Builder
		for i := 0; i < bpl; i++ {
			if i > 0 {
				hexpane.WriteByte(' ')
			}
			if i < len(line) {
				fmt.Fprintf(&hexpane, "%02X", line[i])
			} else {
				hexpane.WriteString("  ")
			}
		}

		if !opts.ShowASCII {
			if _, err := fmt.Fprintf(w, "%s  %s\n", addr, hexpane.String()); err != nil {
				return err
			}
			continue
		}

		var ascii strings.Builder
		for _, b := range line {
			if b >= 0x20 && b < 0x7F {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}

		if _, err := fmt.Fprintf(w, "%s  %s  |%s|\n", addr, hexpane.String(), ascii.String()); err != nil {
			return err
		}
	}

	return nil
}

// Dump returns the hexdump of data as a string with default options.
func Dump(base process.Address, data []byte) string {
	var sb strings.Builder
	Fprint(&sb, base, data, DefaultOptions())
	return sb.String()
}
