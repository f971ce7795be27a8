package persistence

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// ErrSnapshotCorrupted is returned when a stored snapshot fails its checksum
var ErrSnapshotCorrupted = errors.New("snapshot checksum mismatch")

// encodedSnapshot is a game state ready for storage
type encodedSnapshot struct {
	Payload  []byte
	RawSize  int
	Checksum string
}

func encodeSnapshot(state *galaxy.GameState) (*encodedSnapshot, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %w", err)
	}

	return &encodedSnapshot{
		Payload:  buf.Bytes(),
		RawSize:  len(raw),
		Checksum: checksum(raw),
	}, nil
}

func decodeSnapshot(payload []byte, expectedChecksum string) (*galaxy.GameState, error) {
	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot: %w", err)
	}
	if got := checksum(raw); got != expectedChecksum {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrSnapshotCorrupted, expectedChecksum, got)
	}

	var state galaxy.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	return &state, nil
}

func checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
