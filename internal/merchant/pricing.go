package merchant

// dynamicPrice implements the merchant's dynamic pricing formula. Scarcity (stock below
// target) pushes price up at full weight: factor = 1 + (1 - stock/target).
// Abundance (stock above target) pushes price down at half weight:
// factor = 1 - (stock/target - 1) * 0.5. Both sides clamp to [0.5, 2.0]x
// base.
func dynamicPrice(base, stock, target int64) int64 {
	if target <= 0 {
		return base
	}
	ratio := float64(stock) / float64(target)

	var factor float64
	if ratio <= 1 {
		factor = 1 + (1 - ratio)
	} else {
		factor = 1 - (ratio-1)*0.5
	}
	if factor < 0.5 {
		factor = 0.5
	}
	if factor > 2.0 {
		factor = 2.0
	}
	return int64(float64(base) * factor)
}

// buyPrice is what the merchant pays a player selling tokenID to it:
// floor(min(current, base) * 0.5).
func buyPrice(current, base int64) int64 {
	min := current
	if base < min {
		min = base
	}
	return int64(float64(min) * 0.5)
}

// restockAmount is how many units a restock phase mints when stock has
// fallen below 30% of target, capped at 5 per phase.
func restockAmount(stock, target int64) int64 {
	if target <= 0 || stock >= (target*3)/10 {
		return 0
	}
	need := target - stock
	if need > 5 {
		need = 5
	}
	return need
}
