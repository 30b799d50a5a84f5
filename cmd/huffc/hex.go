package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// readHexFile reads a hex-encoded payload file, tolerating a 0x prefix
// and any whitespace.
func readHexFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return decodeHex(string(raw), path)
}

func decodeHex(s, source string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimPrefix(cleaned, "0x")

	payload, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex: %w", source, err)
	}
	return payload, nil
}
