package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Plain(t *testing.T) {
	r, err := newReport([]string{"s32", "f64", "s8"})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, r.writePlain(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, strings.Fields("0 s32 0 4 4 0"), strings.Fields(lines[1]))
	assert.Equal(t, strings.Fields("1 f64 8 8 8 4"), strings.Fields(lines[2]))
	assert.Equal(t, strings.Fields("2 s8 16 1 1 0"), strings.Fields(lines[3]))
	assert.Equal(t, "size=24 align=8 end=17 tail=7", lines[4])
	assert.Equal(t, "0000.... 11111111 2.......", lines[5])
}

func TestReport_Errors(t *testing.T) {
	_, err := newReport(nil)
	assert.Error(t, err)

	_, err = newReport([]string{"u8", "string"})
	assert.ErrorContains(t, err, "string")
}

func TestReport_ByteMap(t *testing.T) {
	r, err := newReport([]string{"s8", "s8"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, r.byteMap())

	r, err = newReport([]string{"u8", "u16", "u8"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, -1, 1, 1, 2, -1}, r.byteMap())
}

func TestModel(t *testing.T) {
	m := newModel([]string{"u8", "u64"})
	require.NotNil(t, m.report)
	assert.Len(t, m.table.Rows(), 2)
	assert.Contains(t, m.View(), "size=16 align=8 end=16 tail=0")

	m.input.SetValue("u8 bogus")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "bogus")

	m.input.SetValue("u16")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, m.err)
	assert.Len(t, m.table.Rows(), 1)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
