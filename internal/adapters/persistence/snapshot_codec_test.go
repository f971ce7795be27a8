package persistence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

func TestSnapshotCodec_Compresses(t *testing.T) {
	state := galaxy.NewGameState("g", strings.Repeat("long name ", 200), galaxy.Player{
		ID:   shared.MustNewPlayerID("p1"),
		Name: "Player",
	})

	encoded, err := encodeSnapshot(state)

	require.NoError(t, err)
	assert.Less(t, len(encoded.Payload), encoded.RawSize)
	assert.Len(t, encoded.Checksum, 64)

	decoded, err := decodeSnapshot(encoded.Payload, encoded.Checksum)
	require.NoError(t, err)
	assert.Equal(t, state.Name, decoded.Name)
	assert.True(t, decoded.HumanPlayer.ID.Equals(state.HumanPlayer.ID))
}

func TestSnapshotCodec_RejectsGarbage(t *testing.T) {
	_, err := decodeSnapshot([]byte("definitely not lz4"), "00")

	assert.Error(t, err)
}
