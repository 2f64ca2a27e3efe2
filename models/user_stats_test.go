package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantStageJSON(t *testing.T) {
	b, err := json.Marshal(StageSmallPlant)
	require.NoError(t, err)
	assert.Equal(t, `"small_plant"`, string(b))

	var s PlantStage
	require.NoError(t, json.Unmarshal([]byte(`"flowering"`), &s))
	assert.Equal(t, StageFlowering, s)

	assert.Error(t, json.Unmarshal([]byte(`"bonsai"`), &s))
}

func TestStatsKey(t *testing.T) {
	guest := &User{Guest: true, GuestKey: "abc"}
	assert.Equal(t, "guest:abc", guest.StatsKey())

	user := &User{}
	user.ID = 42
	assert.Equal(t, "user:42", user.StatsKey())

	// A guest row that lost its key still gets a usable id-based key.
	broken := &User{Guest: true}
	broken.ID = 7
	assert.Equal(t, "user:7", broken.StatsKey())
}
