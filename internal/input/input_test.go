package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"A1", Command{Kind: Select, Position: 0}},
		{"a7", Command{Kind: Select, Position: 6}},
		{"7a", Command{Kind: Select, Position: 6}},
		{" c2 ", Command{Kind: Select, Position: 27}},
		{"D13", Command{Kind: Select, Position: 51}},
		{"13d", Command{Kind: Select, Position: 51}},
		{"0", Command{Kind: Select, Position: 0}},
		{"51", Command{Kind: Select, Position: 51}},
		{"q", Command{Kind: Quit}},
		{"Quit", Command{Kind: Quit}},
		{"exit", Command{Kind: Quit}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"52", ErrOutOfRange},
		{"-1", ErrOutOfRange},
		{"E1", ErrOutOfRange},
		{"A0", ErrOutOfRange},
		{"A14", ErrOutOfRange},
		{"A", ErrSyntax},
		{"AB", ErrSyntax},
		{"?", ErrSyntax},
		{"1.5", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "A1", Format(0))
	assert.Equal(t, "C2", Format(27))
	assert.Equal(t, "D13", Format(51))
	assert.Equal(t, "52", Format(52))

	for pos := 0; pos < 52; pos++ {
		cmd, err := Parse(Format(pos))
		require.NoError(t, err)
		assert.Equal(t, pos, cmd.Position)
	}
}
