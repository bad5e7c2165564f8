package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
)

// input is a geometry file as given on the command line.
type input struct {
	path string
	data []byte
	hex  bool
}

// readInput loads path and decodes it when it holds hex text.
//
// A binary WKB buffer always starts with the order byte 0x00 or 0x01, so a
// file made only of hex digits (optionally prefixed by 0x or \x, as printed
// by PostGIS) is taken as hex.
func readInput(path string) (*input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	in := &input{path: path, data: data}

	text, ok := hexText(data)
	if !ok {
		return in, nil
	}

	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return nil, fmt.Errorf("decode hex %s: %w", path, err)
	}
	in.data = decoded
	in.hex = true

	return in, nil
}

func hexText(data []byte) ([]byte, bool) {
	text := bytes.TrimSpace(data)
	if len(text) >= 2 && (text[0] == '0' && (text[1] == 'x' || text[1] == 'X') || text[0] == '\\' && text[1] == 'x') {
		text = text[2:]
	}

	if len(text) == 0 || len(text)%2 != 0 {
		return nil, false
	}

	for _, c := range text {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return nil, false
		}
	}

	return text, true
}

// writeOutput stores data at path, as upper case hex when asHex is set.
func writeOutput(path string, data []byte, asHex bool) error {
	if asHex {
		data = []byte(fmt.Sprintf("%X\n", data))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
