package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/quadframe/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	var themeBody strings.Builder
	var themeName string

	flushTheme := func() error {
		if currentTheme == nil {
			return nil
		}
		parsed, err := theme.Parse(strings.NewReader(themeBody.String()))
		if err != nil {
			return fmt.Errorf("error in section [theme.%s]: %w", themeName, err)
		}
		if parsed.Name == "Default" {
			parsed.Name = themeName
		}
		cfg.Themes[themeName] = parsed
		currentTheme = nil
		themeBody.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if err := flushTheme(); err != nil {
				return nil, err
			}
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")

			if strings.HasPrefix(currentSection, "theme.") {
				themeName = strings.TrimPrefix(currentSection, "theme.")
				currentTheme = theme.Default()
			}
			continue
		}

		if currentTheme != nil {
			// Theme bodies use the theme package's own line format.
			themeBody.WriteString(line)
			themeBody.WriteString("\n")
			continue
		}

		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}
	if err := flushTheme(); err != nil {
		return nil, err
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "output":
		cfg.Output = value
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid dimension for key %s: %q", key, value)
	}
	switch strings.ToLower(key) {
	case "width":
		c.Width = n
	case "height":
		c.Height = n
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
