package dirman_test

import (
	"testing"

	"github.com/AntoineGaton/dirman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionFlow drives a whole session through the public surface only.
func TestSessionFlow(t *testing.T) {
	var tree dirman.TreeOperator = dirman.New()

	results := tree.Create("fruits/citrus/lemon,lime")
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, dirman.OutcomeCreated, res.Outcome)
	}

	res := tree.Move("fruits/citrus", "plants")
	assert.Equal(t, dirman.OutcomeMoved, res.Outcome)

	entries, err := tree.List("")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"fruits", "plants", "citrus", "lemon", "lime"}, names)

	del := tree.Delete("plants", func(string) bool { return true })
	assert.Equal(t, dirman.OutcomeDeletedSubtree, del.Outcome)

	entries, err = tree.List("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fruits", entries[0].Name)
}
