package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// parseColorMode normalizes a --color value. "on" and "off" are accepted as aliases.
func parseColorMode(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", colorAuto:
		return colorAuto, nil
	case colorAlways, "on":
		return colorAlways, nil
	case colorNever, "off":
		return colorNever, nil
	default:
		return "", fmt.Errorf("unsupported color mode %q (must be auto, always or never)", mode)
	}
}

// applyColorMode forces colors on or off per instance. Auto leaves fatih/color's
// terminal detection in charge.
func applyColorMode(mode string, colors ...*color.Color) {
	for _, c := range colors {
		switch mode {
		case colorAlways:
			c.EnableColor()
		case colorNever:
			c.DisableColor()
		}
	}
}
