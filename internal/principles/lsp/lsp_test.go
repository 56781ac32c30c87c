package lsp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintName(t *testing.T) {
	tests := []struct {
		name string
		n    Namer
		want string
	}{
		{name: "base", n: Base{}, want: "Class A\n"},
		{name: "derived", n: Derived{}, want: "Class B\n"},
		{name: "embedded base still reachable", n: Derived{}.Base, want: "Class A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintName(&buf, tt.n))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestMute_BreaksTheContract(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintName(&buf, Mute{}))
	assert.Equal(t, "\n", buf.String())
	assert.Empty(t, Mute{}.Name())
}

func TestDemonstrate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demonstrate(&buf))
	assert.Equal(t, "Class A\nClass B\n", buf.String())
}
