package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()

	var buf bytes.Buffer

	PrintTable([][]string{{"NAME", "PAGE"}, {"Kahf", "294"}}, &buf)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Kahf")
	assert.Contains(t, out, "294")
}

func TestPrintEmptyTable(t *testing.T) {
	var buf bytes.Buffer

	PrintTable(nil, &buf)

	assert.Empty(t, buf.String())
}

func TestYesNo(t *testing.T) {
	pterm.DisableColor()

	assert.Equal(t, "yes", YesNo(true))
	assert.Equal(t, "no", YesNo(false))
}
