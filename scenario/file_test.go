package scenario_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/scenario"
)

func TestEncodeDecode_PreservesCostsAndRemovals(t *testing.T) {
	s, err := scenario.Generate(8, scenario.Hard, 42)
	require.NoError(t, err)
	require.Positive(t, s.RemovedEdges())

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	assert.Contains(t, buf.String(), `difficulty = "hard"`)

	got, err := scenario.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), got.Len())
	assert.Equal(t, s.Seed(), got.Seed())
	assert.Equal(t, scenario.Hard, got.Difficulty())
	assert.Equal(t, s.RemovedEdges(), got.RemovedEdges())
	for i := 0; i < s.Len(); i++ {
		for j := 0; j < s.Len(); j++ {
			assert.Equal(t, s.Cost(i, j), got.Cost(i, j), "edge %d→%d", i, j)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown difficulty",
			doc:  "difficulty = \"brutal\"\n",
			want: scenario.ErrDifficulty,
		},
		{
			name: "unknown key",
			doc:  "difficulty = \"easy\"\nwind = 3\n",
			want: scenario.ErrFile,
		},
		{
			name: "removed edge out of range",
			doc:  "difficulty = \"easy\"\nremoved = [[0, 2]]\n[[city]]\nx = 0.0\ny = 0.0\n[[city]]\nx = 1.0\ny = 1.0\n",
			want: scenario.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
