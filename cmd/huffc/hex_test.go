package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"plain", "600100", []byte{0x60, 0x01, 0x00}},
		{"prefixed", "0x600100", []byte{0x60, 0x01, 0x00}},
		{"whitespace", " 60 01\n00\t", []byte{0x60, 0x01, 0x00}},
		{"empty", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeHex(tt.input, "test")
			if err != nil {
				t.Fatalf("decodeHex(%q) error: %v", tt.input, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decodeHex(%q) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeHexRejectsGarbage(t *testing.T) {
	for _, input := range []string{"6", "zz", "0x601"} {
		if _, err := decodeHex(input, "test"); err == nil {
			t.Errorf("decodeHex(%q) succeeded, want error", input)
		}
	}
}

func TestReadHexFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.hex")
	if err := os.WriteFile(path, []byte("0x6001600201\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	got, err := readHexFile(path)
	if err != nil {
		t.Fatalf("readHexFile() error: %v", err)
	}
	want := []byte{0x60, 0x01, 0x60, 0x02, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("readHexFile() = %x, want %x", got, want)
	}
}

func TestReadHexFileMissing(t *testing.T) {
	if _, err := readHexFile(filepath.Join(t.TempDir(), "nope.hex")); err == nil {
		t.Error("readHexFile() succeeded on missing file")
	}
}
