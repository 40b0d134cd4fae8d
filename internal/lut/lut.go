// Package lut reads ImageJ binary lookup-table (.lut) files: 768 bytes
// holding three contiguous 256-entry channels (red, green, blue), each
// entry an unsigned byte mapping a palette index to an output intensity.
package lut

import "fmt"

const (
	// ChannelSize is the number of entries in one channel.
	ChannelSize = 256
	// TableSize is the nominal file size: three full channels.
	TableSize = 3 * ChannelSize
)

// Channel is one named sub-table of a LUT.
type Channel struct {
	Name   string
	Values []byte
}

// Range returns the smallest and largest value in the channel,
// or 0, 0 for an empty channel.
func (c Channel) Range() (min, max byte) {
	if len(c.Values) == 0 {
		return 0, 0
	}
	min, max = c.Values[0], c.Values[0]
	for _, v := range c.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Table is a LUT file split into its channels. Files need not be exactly
// 768 bytes: a short file leaves later channels partial or empty, and
// bytes past 768 are kept in Tail.
type Table struct {
	Red   []byte
	Green []byte
	Blue  []byte
	Tail  []byte
}

// Split partitions raw LUT bytes into channels without copying.
func Split(data []byte) Table {
	return Table{
		Red:   clip(data, 0, ChannelSize),
		Green: clip(data, ChannelSize, 2*ChannelSize),
		Blue:  clip(data, 2*ChannelSize, TableSize),
		Tail:  clip(data, TableSize, len(data)),
	}
}

func clip(data []byte, lo, hi int) []byte {
	if lo > len(data) {
		lo = len(data)
	}
	if hi > len(data) {
		hi = len(data)
	}
	return data[lo:hi]
}

// Size returns the total number of bytes the table was split from.
func (t Table) Size() int {
	return len(t.Red) + len(t.Green) + len(t.Blue) + len(t.Tail)
}

// Nominal reports whether the table matches the standard 768-byte layout.
func (t Table) Nominal() bool {
	return t.Size() == TableSize
}

// Channels returns the three channels in red, green, blue order.
func (t Table) Channels() []Channel {
	return []Channel{
		{Name: "Red", Values: t.Red},
		{Name: "Green", Values: t.Green},
		{Name: "Blue", Values: t.Blue},
	}
}

// LayoutName returns a human-readable description of the file layout.
func (t Table) LayoutName() string {
	switch {
	case t.Nominal():
		return "3 channels x 256 entries"
	case t.Size() < TableSize:
		return fmt.Sprintf("partial (%d of %d bytes)", t.Size(), TableSize)
	default:
		return fmt.Sprintf("3 channels x 256 entries + %d trailing bytes", len(t.Tail))
	}
}

// Grayscale reports whether the three channels are identical, i.e. the
// LUT maps every palette index to a gray level. Only a full table
// qualifies.
func (t Table) Grayscale() bool {
	if !t.Nominal() {
		return false
	}
	for i := 0; i < ChannelSize; i++ {
		if t.Red[i] != t.Green[i] || t.Red[i] != t.Blue[i] {
			return false
		}
	}
	return true
}
