package lut

import "testing"

func TestSplitPartitioning(t *testing.T) {
	data := ramp(800)
	tb := Split(data)

	if len(tb.Red) != 256 || len(tb.Green) != 256 || len(tb.Blue) != 256 {
		t.Fatalf("channel lengths: red=%d green=%d blue=%d, want 256 each",
			len(tb.Red), len(tb.Green), len(tb.Blue))
	}
	if len(tb.Tail) != 32 {
		t.Fatalf("tail length: got %d, want 32", len(tb.Tail))
	}
	if tb.Green[0] != data[256] || tb.Blue[0] != data[512] || tb.Tail[0] != data[768] {
		t.Error("channel boundaries do not line up with input offsets")
	}
	if tb.Size() != 800 {
		t.Errorf("Size: got %d, want 800", tb.Size())
	}
}

func TestSplitShortFile(t *testing.T) {
	tb := Split(ramp(300))
	if len(tb.Red) != 256 {
		t.Errorf("red length: got %d, want 256", len(tb.Red))
	}
	if len(tb.Green) != 44 {
		t.Errorf("green length: got %d, want 44", len(tb.Green))
	}
	if len(tb.Blue) != 0 || len(tb.Tail) != 0 {
		t.Errorf("blue/tail should be empty, got %d/%d", len(tb.Blue), len(tb.Tail))
	}
	if tb.Nominal() {
		t.Error("300-byte table reported as nominal")
	}
}

func TestLayoutName(t *testing.T) {
	cases := []struct {
		size int
		want string
	}{
		{0, "partial (0 of 768 bytes)"},
		{300, "partial (300 of 768 bytes)"},
		{768, "3 channels x 256 entries"},
		{800, "3 channels x 256 entries + 32 trailing bytes"},
	}
	for _, tc := range cases {
		if got := Split(ramp(tc.size)).LayoutName(); got != tc.want {
			t.Errorf("size %d: got %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestGrayscale(t *testing.T) {
	// Three identical ascending channels: the stock grays LUT.
	gray := ramp(TableSize)
	if tb := Split(gray); !tb.Grayscale() {
		t.Error("identical channels not reported as grayscale")
	}

	colored := ramp(TableSize)
	colored[300] = 99 // green channel diverges
	if tb := Split(colored); tb.Grayscale() {
		t.Error("diverging channels reported as grayscale")
	}

	if tb := Split(ramp(300)); tb.Grayscale() {
		t.Error("partial table reported as grayscale")
	}
}

func TestChannelRange(t *testing.T) {
	min, max := (Channel{Name: "Red", Values: []byte{5, 3, 9}}).Range()
	if min != 3 || max != 9 {
		t.Errorf("Range: got %d/%d, want 3/9", min, max)
	}
	min, max = (Channel{Name: "Green"}).Range()
	if min != 0 || max != 0 {
		t.Errorf("empty channel Range: got %d/%d, want 0/0", min, max)
	}
}
