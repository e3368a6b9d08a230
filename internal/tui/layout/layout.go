// Package layout holds the shared width tiers so rendering behavior stays
// predictable from narrow splits up to wide monitors.
package layout

// Thresholds are in terminal columns. Views consult the tier rather than raw
// width so the breakpoints stay consistent across surfaces:
//   - TierNarrow: single-column fallbacks, aggressive cell truncation
//   - TierNormal: full table layout, default column caps
//   - TierWide: wider column caps and roomier gutters
const (
	NormalViewThreshold = 80
	WideViewThreshold   = 160
)

// Tier describes the current width bucket.
type Tier int

const (
	TierNarrow Tier = iota
	TierNormal
	TierWide
)

// TierForWidth maps a terminal width to a tier.
func TierForWidth(width int) Tier {
	switch {
	case width >= WideViewThreshold:
		return TierWide
	case width >= NormalViewThreshold:
		return TierNormal
	default:
		return TierNarrow
	}
}

// MaxCellWidth returns the column width cap for a tier.
func (t Tier) MaxCellWidth() int {
	switch t {
	case TierWide:
		return 60
	case TierNormal:
		return 30
	default:
		return 16
	}
}
