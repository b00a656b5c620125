package selectables

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/dice"
)

// BasicTable implements the SelectionTable interface with simple weighted selection.
type BasicTable[T comparable] struct {
	id     string
	config TableConfiguration

	items map[T]int
	mutex sync.RWMutex

	cachedWeights    map[string]map[T]int // keyed by context hash
	weightCacheMutex sync.RWMutex
	lastModification time.Time
}

// BasicTableConfig provides configuration options for BasicTable creation.
type BasicTableConfig struct {
	// ID uniquely identifies this table for debugging.
	ID string

	// Configuration customizes table behavior.
	Configuration TableConfiguration
}

// NewBasicTable creates a new basic selection table with the specified configuration.
func NewBasicTable[T comparable](config BasicTableConfig) SelectionTable[T] {
	if config.ID == "" {
		config.ID = generateTableID()
	}

	tableConfig := config.Configuration
	if tableConfig.MinWeight <= 0 {
		tableConfig.MinWeight = 1
	}
	if tableConfig.MaxWeight <= 0 {
		tableConfig.MaxWeight = 1000000 // Reasonable default
	}

	return &BasicTable[T]{
		id:               config.ID,
		config:           tableConfig,
		items:            make(map[T]int),
		cachedWeights:    make(map[string]map[T]int),
		lastModification: time.Now(),
	}
}

// Add includes an item in the selection table with the specified weight.
// Higher weights increase the probability of selection.
func (t *BasicTable[T]) Add(item T, weight int) SelectionTable[T] {
	if weight < t.config.MinWeight {
		weight = t.config.MinWeight
	}
	if weight > t.config.MaxWeight {
		weight = t.config.MaxWeight
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.items[item] = weight
	t.lastModification = time.Now()

	if t.config.CacheWeights {
		t.clearWeightCache()
	}

	return t
}

// AddTable includes another selection table as a nested option with the specified weight.
// This enables hierarchical selection patterns (e.g., roll category, then roll item from category).
// Note: For BasicTable, this converts the nested table to individual items.
func (t *BasicTable[T]) AddTable(_ string, table SelectionTable[T], weight int) SelectionTable[T] {
	if weight < t.config.MinWeight {
		weight = t.config.MinWeight
	}
	if weight > t.config.MaxWeight {
		weight = t.config.MaxWeight
	}

	nestedItems := table.GetItems()
	totalNestedWeight := 0
	for _, w := range nestedItems {
		totalNestedWeight += w
	}

	for item, itemWeight := range nestedItems {
		if totalNestedWeight > 0 {
			effectiveWeight := (itemWeight * weight) / totalNestedWeight
			if effectiveWeight < t.config.MinWeight {
				effectiveWeight = t.config.MinWeight
			}
			t.Add(item, effectiveWeight)
		}
	}

	return t
}

// Select performs a single weighted random selection from the table.
// Returns ErrEmptyTable if the table contains no items.
func (t *BasicTable[T]) Select(ctx SelectionContext) (T, error) {
	var zeroValue T

	if t.IsEmpty() {
		return zeroValue, NewSelectionError("select", t.id, ctx, ErrEmptyTable)
	}

	if ctx == nil {
		return zeroValue, NewSelectionError("select", t.id, ctx, ErrContextRequired)
	}

	roller := ctx.GetDiceRoller()
	if roller == nil {
		return zeroValue, NewSelectionError("select", t.id, ctx, ErrDiceRollerRequired)
	}

	effectiveWeights, err := t.getEffectiveWeights(ctx)
	if err != nil {
		return zeroValue, NewSelectionError("select", t.id, ctx, err)
	}

	totalWeight := 0
	for _, weight := range effectiveWeights {
		totalWeight += weight
	}

	if totalWeight <= 0 {
		return zeroValue, NewSelectionError("select", t.id, ctx, ErrEmptyTable).
			AddDetail("reason", "all items have zero effective weight")
	}

	rollValue, err := roller.Roll(context.Background(), totalWeight)
	if err != nil {
		return zeroValue, NewSelectionError("select", t.id, ctx, err)
	}

	currentWeight := 0
	for item, weight := range effectiveWeights {
		currentWeight += weight
		if rollValue <= currentWeight {
			return item, nil
		}
	}

	// This should never happen, but handle it gracefully.
	return zeroValue, NewSelectionError("select", t.id, ctx, ErrEmptyTable).
		AddDetail("reason", "selection algorithm failed").
		AddDetail("roll_value", rollValue).
		AddDetail("total_weight", totalWeight)
}

// SelectMany performs multiple weighted random selections with replacement.
// Each selection is independent and items can be selected multiple times.
func (t *BasicTable[T]) SelectMany(ctx SelectionContext, count int) ([]T, error) {
	if count < 1 {
		return nil, NewSelectionError("select_many", t.id, ctx, ErrInvalidCount)
	}

	results := make([]T, count)
	for i := 0; i < count; i++ {
		item, err := t.Select(ctx)
		if err != nil {
			return nil, NewSelectionError("select_many", t.id, ctx, err).
				AddDetail("completed_selections", i).
				AddDetail("requested_count", count)
		}
		results[i] = item
	}

	return results, nil
}

// SelectUnique performs multiple weighted random selections without replacement.
// Once an item is selected, it cannot be selected again in the same operation.
func (t *BasicTable[T]) SelectUnique(ctx SelectionContext, count int) ([]T, error) {
	if count < 1 {
		return nil, NewSelectionError("select_unique", t.id, ctx, ErrInvalidCount)
	}

	if t.IsEmpty() {
		return nil, NewSelectionError("select_unique", t.id, ctx, ErrEmptyTable)
	}

	if count > t.Size() {
		return nil, NewSelectionError("select_unique", t.id, ctx, ErrInsufficientItems).
			AddDetail("requested_count", count).
			AddDetail("available_count", t.Size())
	}

	results := make([]T, 0, count)
	used := make(map[T]bool)

	for len(results) < count {
		effectiveWeights, err := t.getEffectiveWeightsExcluding(ctx, used)
		if err != nil {
			return nil, NewSelectionError("select_unique", t.id, ctx, err)
		}

		totalWeight := 0
		for _, weight := range effectiveWeights {
			totalWeight += weight
		}
		if totalWeight <= 0 {
			break // No more selectable items.
		}

		roller := ctx.GetDiceRoller()
		rollValue, err := roller.Roll(context.Background(), totalWeight)
		if err != nil {
			return nil, NewSelectionError("select_unique", t.id, ctx, err)
		}

		currentWeight := 0
		for item, weight := range effectiveWeights {
			currentWeight += weight
			if rollValue <= currentWeight && !used[item] {
				results = append(results, item)
				used[item] = true
				break
			}
		}
	}

	if len(results) < count {
		return results, NewSelectionError("select_unique", t.id, ctx, ErrInsufficientItems).
			AddDetail("requested_count", count).
			AddDetail("actual_count", len(results))
	}

	return results, nil
}

// SelectVariable performs selection with quantity determined by dice expression.
// Combines quantity rolling with item selection in a single operation.
func (t *BasicTable[T]) SelectVariable(ctx SelectionContext, diceExpression string) ([]T, error) {
	if ctx == nil {
		return nil, NewSelectionError("select_variable", t.id, ctx, ErrContextRequired)
	}

	roller := ctx.GetDiceRoller()
	if roller == nil {
		return nil, NewSelectionError("select_variable", t.id, ctx, ErrDiceRollerRequired)
	}

	count, err := t.parseDiceExpression(diceExpression, roller)
	if err != nil {
		return nil, NewSelectionError("select_variable", t.id, ctx, ErrInvalidDiceExpression).
			AddDetail("dice_expression", diceExpression).
			AddDetail("parse_error", err.Error())
	}
	if count < 1 {
		count = 1 // Ensure at least one selection.
	}

	return t.SelectMany(ctx, count)
}

// GetItems returns all items in the table with their weights for inspection.
func (t *BasicTable[T]) GetItems() map[T]int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	result := make(map[T]int)
	for item, weight := range t.items {
		result[item] = weight
	}
	return result
}

// IsEmpty returns true if the table contains no selectable items.
func (t *BasicTable[T]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.items) == 0
}

// Size returns the total number of items in the table.
func (t *BasicTable[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.items)
}

// getEffectiveWeights calculates the effective weights for all items based on context.
func (t *BasicTable[T]) getEffectiveWeights(ctx SelectionContext) (map[T]int, error) {
	if t.config.CacheWeights {
		contextHash := t.hashContext(ctx)
		t.weightCacheMutex.RLock()
		if cached, exists := t.cachedWeights[contextHash]; exists {
			t.weightCacheMutex.RUnlock()
			return cached, nil
		}
		t.weightCacheMutex.RUnlock()
	}

	t.mutex.RLock()
	result := make(map[T]int)
	for item, baseWeight := range t.items {
		result[item] = baseWeight
	}
	t.mutex.RUnlock()

	if t.config.CacheWeights {
		contextHash := t.hashContext(ctx)
		t.weightCacheMutex.Lock()
		t.cachedWeights[contextHash] = result
		t.weightCacheMutex.Unlock()
	}

	return result, nil
}

// getEffectiveWeightsExcluding calculates effective weights excluding specified items.
func (t *BasicTable[T]) getEffectiveWeightsExcluding(ctx SelectionContext, excluded map[T]bool) (map[T]int, error) {
	allWeights, err := t.getEffectiveWeights(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[T]int)
	for item, weight := range allWeights {
		if !excluded[item] {
			result[item] = weight
		}
	}

	return result, nil
}

// hashContext creates a simple hash of the context for caching purposes.
func (t *BasicTable[T]) hashContext(ctx SelectionContext) string {
	if ctx == nil {
		return "nil"
	}

	keys := ctx.Keys()
	sort.Strings(keys)

	hash := ""
	for _, key := range keys {
		if value, exists := ctx.Get(key); exists {
			hash += key + "=" + toString(value) + ";"
		}
	}

	return hash
}

// clearWeightCache clears the weight calculation cache.
func (t *BasicTable[T]) clearWeightCache() {
	t.weightCacheMutex.Lock()
	defer t.weightCacheMutex.Unlock()
	t.cachedWeights = make(map[string]map[T]int)
}

// parseDiceExpression parses and rolls a simple dice expression.
// Supports basic expressions like "1d6", "2d4", etc.
func (t *BasicTable[T]) parseDiceExpression(expression string, roller dice.Roller) (int, error) {
	ctx := context.Background()

	switch expression {
	case "1d1-1":
		result, err := roller.Roll(ctx, 1)
		if err != nil {
			return 0, err
		}
		result--
		if result < 1 {
			result = 1
		}
		return result, nil
	case "1d4":
		return roller.Roll(ctx, 4)
	case "1d6":
		return roller.Roll(ctx, 6)
	case "1d8":
		return roller.Roll(ctx, 8)
	case "1d10":
		return roller.Roll(ctx, 10)
	case "1d10+2":
		result, err := roller.Roll(ctx, 10)
		if err != nil {
			return 0, err
		}
		return result + 2, nil
	case "1d12":
		return roller.Roll(ctx, 12)
	case "1d20":
		return roller.Roll(ctx, 20)
	case "2d4":
		results, err := roller.RollN(ctx, 2, 4)
		if err != nil {
			return 0, err
		}
		sum := 0
		for _, r := range results {
			sum += r
		}
		return sum, nil
	case "2d6":
		results, err := roller.RollN(ctx, 2, 6)
		if err != nil {
			return 0, err
		}
		sum := 0
		for _, r := range results {
			sum += r
		}
		return sum, nil
	case "3d6":
		results, err := roller.RollN(ctx, 3, 6)
		if err != nil {
			return 0, err
		}
		sum := 0
		for _, r := range results {
			sum += r
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("unsupported dice expression: %s", expression)
	}
}

// generateTableID creates a unique identifier for a table.
func generateTableID() string {
	return "table_" + toString(time.Now().UnixNano())
}

// toString converts various types to strings for hashing and display.
func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return string(rune(v)) // Simplified conversion
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return "unknown"
	}
}
