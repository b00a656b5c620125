package merchant

import "testing"

func TestDynamicPriceScarcity(t *testing.T) {
	if got := dynamicPrice(20, 4, 10); got != 32 {
		t.Fatalf("expected 32, got %d", got)
	}
}

func TestDynamicPriceAbundance(t *testing.T) {
	if got := dynamicPrice(20, 18, 10); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestDynamicPriceClampsToFloor(t *testing.T) {
	if got := dynamicPrice(20, 30, 10); got != 10 {
		t.Fatalf("expected floor of 10, got %d", got)
	}
}

func TestDynamicPriceClampsToCeiling(t *testing.T) {
	if got := dynamicPrice(20, 0, 10); got != 40 {
		t.Fatalf("expected ceiling of 40, got %d", got)
	}
}

func TestBuyPrice(t *testing.T) {
	if got := buyPrice(12, 20); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestRestockAmountBelowThreshold(t *testing.T) {
	if got := restockAmount(2, 10); got != 5 {
		t.Fatalf("expected capped restock of 5, got %d", got)
	}
}

func TestRestockAmountAboveThreshold(t *testing.T) {
	if got := restockAmount(5, 10); got != 0 {
		t.Fatalf("expected no restock above 30%% threshold, got %d", got)
	}
}
