package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Parse reads a theme definition from an io.Reader. The format is one
// key-value pair per line: `Key: #RRGGBB`, `Key: #RRGGBBAA`, or a bare
// integer for the stroke metrics.
func Parse(r io.Reader) (*Theme, error) {
	t := Default() // missing keys keep their defaults
	scanner := bufio.NewScanner(r)

	val := reflect.ValueOf(t).Elem()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if key == "Name" {
			t.Name = value
			continue
		}

		field := val.FieldByName(key)
		if !field.IsValid() {
			continue // unknown field, ignore for forward compatibility
		}

		switch {
		case field.Type() == reflect.TypeOf(color.RGBA{}):
			col, err := ParseColor(value)
			if err != nil {
				return nil, fmt.Errorf("invalid color for key %s: %w", key, err)
			}
			field.Set(reflect.ValueOf(col))
		case field.Kind() == reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid size for key %s: %q", key, value)
			}
			field.SetInt(int64(n))
		}
	}

	return t, scanner.Err()
}

// ParseColor parses a #RRGGBB or #RRGGBBAA hex color string.
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color must start with #")
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}

// FormatColor renders a color the way ParseColor reads it.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
