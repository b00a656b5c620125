package goldledger

import (
	"fmt"
	"strconv"
	"strings"
)

// CopperPerGold and CopperPerSilver define the fixed currency lattice:
// 1 gold = 100 silver = 10,000 copper.
const (
	CopperPerGold   = 10000
	CopperPerSilver = 100
)

// FormatCopper renders an integer copper amount as space-joined nonzero
// metals, e.g. 123456 -> "12g 34s 56c"; zero -> "0c".
func FormatCopper(copper int64) string {
	neg := copper < 0
	if neg {
		copper = -copper
	}
	gold := copper / CopperPerGold
	rem := copper % CopperPerGold
	silver := rem / CopperPerSilver
	cop := rem % CopperPerSilver

	var parts []string
	if gold > 0 {
		parts = append(parts, fmt.Sprintf("%dg", gold))
	}
	if silver > 0 {
		parts = append(parts, fmt.Sprintf("%ds", silver))
	}
	if cop > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dc", cop))
	}
	out := strings.Join(parts, " ")
	if neg {
		return "-" + out
	}
	return out
}

// GoldToCopper converts a decimal gold amount (e.g. 1.2345) to integer
// copper: copper = floor(gold * 10000).
func GoldToCopper(gold float64) int64 {
	return int64(gold * CopperPerGold)
}

// CopperToGold converts integer copper to a decimal gold amount.
func CopperToGold(copper int64) float64 {
	return float64(copper) / CopperPerGold
}

// FormatGoldString formats a decimal gold amount the way the HTTP surface
// displays currency, e.g. FormatGoldString(10.0525) == "10g 5s 25c".
func FormatGoldString(gold float64) string {
	return FormatCopper(GoldToCopper(gold))
}

// ParseGoldString parses a FormatGoldString-style string back to a decimal
// gold amount, e.g. ParseGoldString("10g 25c") == 10.0025.
func ParseGoldString(s string) (float64, error) {
	copper, err := ParseCopper(s)
	if err != nil {
		return 0, err
	}
	return CopperToGold(copper), nil
}

// ParseCopper parses a FormatCopper-style string ("12g 34s 56c", "0c", "5s")
// back into integer copper. A token with no recognized suffix, or with a
// malformed number, returns an error.
func ParseCopper(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = strings.TrimPrefix(s, "-")
	}

	var total int64
	for _, tok := range strings.Fields(s) {
		if tok == "" {
			continue
		}
		suffix := tok[len(tok)-1]
		numStr := tok[:len(tok)-1]
		n, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("goldledger: malformed currency token %q: %w", tok, err)
		}
		switch suffix {
		case 'g':
			total += n * CopperPerGold
		case 's':
			total += n * CopperPerSilver
		case 'c':
			total += n
		default:
			return 0, fmt.Errorf("goldledger: unknown currency suffix in %q", tok)
		}
	}
	if neg {
		total = -total
	}
	return total, nil
}
