package domain

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeDefault          Theme = "default"
	ThemeDyslexiaFriendly Theme = "dyslexia_friendly"
	ThemeOcean            Theme = "ocean"
	ThemeEarth            Theme = "earth"
	ThemeHighContrast     Theme = "high_contrast"
	ThemeMonochrome       Theme = "monochrome"
)

// Themes lists the supported presentation themes in menu order.
var Themes = []Theme{
	ThemeDefault,
	ThemeDyslexiaFriendly,
	ThemeOcean,
	ThemeEarth,
	ThemeHighContrast,
	ThemeMonochrome,
}

func ParseTheme(raw string) (Theme, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for _, theme := range Themes {
		if string(theme) == normalized {
			return theme, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrUnknownTheme, raw)
}

func (t Theme) Label() string {
	words := strings.Split(string(t), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
