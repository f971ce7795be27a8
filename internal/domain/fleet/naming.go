package fleet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// NextFleetName returns "<baseName>-<n>" where n is one past the highest numeric
// suffix among fleets already named after baseName.
func NextFleetName(owned []*galaxy.Fleet, baseName string) string {
	highest := 0
	prefix := baseName + "-"
	for _, f := range owned {
		if !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(f.Name, prefix))
		if err != nil || n < 0 {
			continue
		}
		highest = max(highest, n)
	}
	return fmt.Sprintf("%s-%d", baseName, highest+1)
}

// baseNameOf picks the name new fleets split off f are called after
func baseNameOf(state *galaxy.GameState, designID string) string {
	if spec, ok := state.DesignRegistry().Resolve(designID); ok && spec.Name != "" {
		return spec.Name
	}
	return "Fleet"
}
