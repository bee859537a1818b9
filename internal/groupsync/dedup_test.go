package groupsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNearDuplicate(t *testing.T) {
	existing := []string{"SubsPlease", "SPARKS"}

	assert.True(t, IsNearDuplicate("SubsPlease", existing, 1))
	assert.True(t, IsNearDuplicate("SPARK5", existing, 1))
	assert.False(t, IsNearDuplicate("CompletelyDifferent", existing, 1))
}

func TestFilterNearDuplicates(t *testing.T) {
	existing := []string{"SubsPlease"}
	candidates := []string{"SubsPleasee", "ErsatzGroup", "ErsatzGroup2"}

	accepted := FilterNearDuplicates(candidates, existing, 1)

	assert.Equal(t, []string{"ErsatzGroup"}, accepted)
}
