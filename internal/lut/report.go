package lut

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	headerRed   = "# RED"
	headerGreen = "# GREEN"
	headerBlue  = "# BLUE"
)

// WriteReport renders raw LUT bytes as a textual report: a `# RED` header
// line followed by the red channel's decimal values separated by ", ",
// then `# GREEN` and `# BLUE` sections the same way. A section header is
// only emitted once the input actually reaches that channel's offset, so
// a short file simply ends mid-section. Bytes past the nominal 768 run
// straight on from the blue section with no further headers — and, as in
// the original dumper, with no separator between the 768th and 769th
// values.
func WriteReport(w io.Writer, data []byte) error {
	t := Split(data)
	bw := bufio.NewWriter(w)

	bw.WriteString(headerRed + "\n")
	writeValues(bw, t.Red)
	if len(data) >= ChannelSize {
		bw.WriteString("\n" + headerGreen + "\n")
		writeValues(bw, t.Green)
	}
	if len(data) >= 2*ChannelSize {
		bw.WriteString("\n" + headerBlue + "\n")
		writeValues(bw, t.Blue)
		writeValues(bw, t.Tail)
	}
	return bw.Flush()
}

// writeValues emits decimal byte values separated by ", ", with no
// leading or trailing separator. Write errors stick to the bufio.Writer
// and surface at Flush.
func writeValues(bw *bufio.Writer, values []byte) {
	for i, v := range values {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(strconv.Itoa(int(v)))
	}
}

// Format renders the report for raw LUT bytes as a string.
func Format(data []byte) string {
	var sb strings.Builder
	WriteReport(&sb, data)
	return sb.String()
}
