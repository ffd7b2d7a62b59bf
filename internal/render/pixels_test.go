package render

import (
	"bytes"
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 12)
	cells := slices.Values([]bool{true, false, true})
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	want := []byte{
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0xff,
		0xff, 0xff, 0xff, 0xff,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBADropsOverflow(t *testing.T) {
	buf := make([]byte, 8)
	cells := slices.Values([]bool{true, true, true})
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	want := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBAShortStream(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, slices.Values([]bool{true}), color.White, color.Black)

	rest := buf[4:]
	if !bytes.Equal(rest, make([]byte, 4)) {
		t.Fatalf("unyielded cells were written: %v", rest)
	}
}
