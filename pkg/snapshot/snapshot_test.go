package snapshot

import (
	"testing"
)

func TestValidateSnapshot(t *testing.T) {
	ValidateSnapshot(t, map[string]interface{}{
		"players": 2,
		"top":     "J",
	}, 0)

	ValidateSnapshot(t, []int{3, 3, 6}, 0)
}
