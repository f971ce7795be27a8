package galaxy

import (
	"fmt"
	"math/rand/v2"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

var starNamePrefixes = []string{
	"Al", "Bel", "Cor", "Dra", "Eri", "Fen", "Gal", "Hel", "Ix", "Jor",
	"Kel", "Lyr", "Mir", "Nor", "Ori", "Pol", "Qua", "Rig", "Sol", "Tau",
	"Ul", "Veg", "Wez", "Xan", "Yed", "Zan",
}

var starNameSuffixes = []string{
	"aris", "eon", "ion", "ora", "ux", "ara", "eth", "ino", "os", "ane",
}

// GeneratorParams shapes a generated galaxy
type GeneratorParams struct {
	Seed      uint64
	StarCount int
	Width     float64
	Height    float64
	// Minimum spacing between stars, larger than the arrival snap radius
	MinSpacing float64
}

// DefaultGeneratorParams returns a small galaxy
func DefaultGeneratorParams(seed uint64) GeneratorParams {
	return GeneratorParams{Seed: seed, StarCount: 32, Width: 400, Height: 400, MinSpacing: 15}
}

// HomeworldSetup describes what each player starts with
type HomeworldSetup struct {
	Population int
	Resources  float64
	Minerals   shared.Minerals
}

// DefaultHomeworldSetup is the starting colony of every player
func DefaultHomeworldSetup() HomeworldSetup {
	return HomeworldSetup{
		Population: 25000,
		Resources:  100,
		Minerals:   shared.Minerals{Ironium: 200, Boranium: 150, Germanium: 150},
	}
}

// GenerateStars scatters stars deterministically for a seed. Placement retries a
// bounded number of times to honour MinSpacing, then accepts the last candidate.
func GenerateStars(params GeneratorParams) []*Star {
	rng := rand.New(rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15))
	stars := make([]*Star, 0, params.StarCount)
	usedNames := map[string]int{}

	for i := 0; i < params.StarCount; i++ {
		var pos shared.Coordinate
		for attempt := 0; attempt < 50; attempt++ {
			pos = shared.NewCoordinate(rng.Float64()*params.Width, rng.Float64()*params.Height)
			if !tooClose(stars, pos, params.MinSpacing) {
				break
			}
		}

		name := starNamePrefixes[rng.IntN(len(starNamePrefixes))] + starNameSuffixes[rng.IntN(len(starNameSuffixes))]
		usedNames[name]++
		if n := usedNames[name]; n > 1 {
			name = fmt.Sprintf("%s %d", name, n)
		}

		stars = append(stars, &Star{
			ID:       fmt.Sprintf("star-%d", i+1),
			Name:     name,
			Position: pos,
			Environment: Environment{
				Temperature: float64(rng.IntN(401) - 200),
				Atmosphere:  float64(rng.IntN(101)),
			},
			MineralConcentrations: shared.Minerals{
				Ironium:   float64(1 + rng.IntN(100)),
				Boranium:  float64(1 + rng.IntN(100)),
				Germanium: float64(1 + rng.IntN(100)),
			},
			BuildQueue: []BuildItem{},
		})
	}
	return stars
}

func tooClose(stars []*Star, pos shared.Coordinate, spacing float64) bool {
	for _, s := range stars {
		if s.Position.DistanceTo(pos) < spacing {
			return true
		}
	}
	return false
}

// SettleHomeworld hands star to player as a developed colony matching the
// player's species, so the homeworld is always fully habitable.
func SettleHomeworld(star *Star, player Player, setup HomeworldSetup, governor GovernorType) {
	star.OwnerID = player.ID
	star.Environment = Environment{
		Temperature: player.Species.IdealTemperature,
		Atmosphere:  player.Species.IdealAtmosphere,
	}
	star.Population = setup.Population
	star.MaxPopulation = 1_000_000
	star.Resources = setup.Resources
	star.SurfaceMinerals = setup.Minerals
	star.Mines = 10
	star.Factories = 10
	star.Governor = &governor
	star.BuildQueue = []BuildItem{}
}
