package galaxy

import "fmt"

// GovernorType is the automation policy a colony is placed under
type GovernorType string

const (
	GovernorManual        GovernorType = "manual"
	GovernorBalanced      GovernorType = "balanced"
	GovernorMining        GovernorType = "mining"
	GovernorManufacturing GovernorType = "manufacturing"
	GovernorResearch      GovernorType = "research"
	GovernorDefense       GovernorType = "defense"
)

var validGovernors = map[GovernorType]bool{
	GovernorManual:        true,
	GovernorBalanced:      true,
	GovernorMining:        true,
	GovernorManufacturing: true,
	GovernorResearch:      true,
	GovernorDefense:       true,
}

// ParseGovernorType validates a governor name
func ParseGovernorType(s string) (GovernorType, error) {
	g := GovernorType(s)
	if !validGovernors[g] {
		return "", fmt.Errorf("unknown governor %q", s)
	}
	return g, nil
}

// DefaultGovernorProvider supplies the policy assigned to newly colonized stars.
// It is consulted only at colonization time.
type DefaultGovernorProvider interface {
	Current() GovernorType
}

// StaticGovernor always returns the same policy
type StaticGovernor GovernorType

// Current implements DefaultGovernorProvider
func (g StaticGovernor) Current() GovernorType {
	return GovernorType(g)
}
