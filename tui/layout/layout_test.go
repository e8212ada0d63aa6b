package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPadToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadToWidth("ab", 5))
	assert.Equal(t, "abc", PadToWidth("abcdef", 3))
	assert.Equal(t, "", PadToWidth("abc", 0))

	styled := lipgloss.NewStyle().Bold(true).Render("abcdef")
	assert.Equal(t, 4, lipgloss.Width(PadToWidth(styled, 4)))
}

func TestNormalizeLines(t *testing.T) {
	assert.Equal(t, []string{"a", ""}, NormalizeLines([]string{"a"}, 2))
	assert.Equal(t, []string{"a"}, NormalizeLines([]string{"a", "b"}, 1))
}

func TestContainer(t *testing.T) {
	out := Container{Width: 6, Height: 3}.Render("one\ntwo")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 6, lipgloss.Width(l))
	}

	out = Container{Width: 8, Height: 2}.Render("1\n2\n3")
	lines = strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "more")

	assert.Empty(t, Container{Width: 5}.Render("x"))
}
