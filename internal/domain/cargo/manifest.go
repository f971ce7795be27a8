package cargo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrescamacho/starlanes-go/internal/domain/shared"
)

// AmountKind says how a manifest entry is measured
type AmountKind string

const (
	AmountQuantity AmountKind = "quantity"
	AmountAll      AmountKind = "all"
	AmountFill     AmountKind = "fill"
)

// Amount is one manifest entry: a literal quantity, everything the source holds,
// or (loading only) as much as the hold can take.
type Amount struct {
	Kind     AmountKind
	Quantity float64
}

// Quantity is a literal amount
func Quantity(n float64) Amount { return Amount{Kind: AmountQuantity, Quantity: n} }

// All takes everything available at the source
func All() Amount { return Amount{Kind: AmountAll} }

// Fill tops the hold up
func Fill() Amount { return Amount{Kind: AmountFill} }

// ParseAmount reads "all", "fill" or a non-negative number
func ParseAmount(s string) (Amount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All(), nil
	case "fill":
		return Fill(), nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return Amount{}, shared.NewValidationError("amount", fmt.Sprintf("expected a non-negative number, all or fill, got %q", s))
	}
	return Quantity(n), nil
}

// Manifest maps cargo items to amounts
type Manifest map[shared.CargoItem]Amount

// ParseManifest reads entries of the form item=amount, e.g. ironium=fill
func ParseManifest(entries []string) (Manifest, error) {
	m := make(Manifest, len(entries))
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, shared.NewValidationError("manifest", fmt.Sprintf("expected item=amount, got %q", entry))
		}
		item, err := shared.ParseCargoItem(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		amount, err := ParseAmount(value)
		if err != nil {
			return nil, err
		}
		m[item] = amount
	}
	return m, nil
}
