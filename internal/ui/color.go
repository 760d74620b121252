// Package ui holds the terminal colours and tables shared by mushaf commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

func pick(light, dark pterm.Color) pterm.Color {
	if DarkTheme {
		return dark
	}

	return light
}

func Green(a any) string {
	return pick(pterm.FgGreen, pterm.FgLightGreen).Sprint(a)
}

func Blue(a any) string {
	return pick(pterm.FgBlue, pterm.FgLightBlue).Sprint(a)
}

func Red(a any) string {
	return pick(pterm.FgRed, pterm.FgLightRed).Sprint(a)
}

func Highlight(a any) string {
	return pick(pterm.FgBlack, pterm.FgLightWhite).Sprint(a)
}

// YesNo renders b as a green yes or a red no.
func YesNo(b bool) string {
	if b {
		return Green("yes")
	}

	return Red("no")
}
