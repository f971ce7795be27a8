package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

func TestFuel_AddClampsToCapacity(t *testing.T) {
	tank := shared.Fuel{Current: 900, Capacity: 1000}

	assert.Equal(t, 1000.0, tank.Add(250).Current)
	assert.Equal(t, 950.0, tank.Add(50).Current)
	assert.Equal(t, 900.0, tank.Add(-10).Current)
	assert.Equal(t, 900.0, tank.Current, "receiver is untouched")
}

func TestFuel_ConsumeFloorsAtZero(t *testing.T) {
	tank := shared.Fuel{Current: 40, Capacity: 1000}

	assert.Equal(t, 0.0, tank.Consume(41).Current)
	assert.Equal(t, 15.0, tank.Consume(25).Current)
	assert.Equal(t, 1000.0, tank.Consume(25).Capacity)
}

func TestFuel_RoomAndCanTravel(t *testing.T) {
	tank := shared.Fuel{Current: 300, Capacity: 1000}

	assert.Equal(t, 700.0, tank.Room())
	assert.Zero(t, shared.Fuel{Current: 1200, Capacity: 1000}.Room())
	assert.True(t, tank.CanTravel(300))
	assert.False(t, tank.CanTravel(300.5))
}
