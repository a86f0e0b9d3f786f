package catalog

import (
	"context"
	"database/sql"
	"errors"
)

var (
	defaultStudentPrices = map[string]float64{
		"simple":  40,
		"medium":  90,
		"complex": 165,
	}
	defaultBasePrices = map[string]float64{
		"simple":  85,
		"medium":  190,
		"complex": 380,
	}
)

// DefaultPrice returns the fixed fallback price for a complexity level when
// no catalog entry matches. Unrecognized levels fall through to a flat rate.
func DefaultPrice(level string, isStudent bool) float64 {
	prices := defaultBasePrices
	if isStudent {
		prices = defaultStudentPrices
	}

	if price, ok := prices[level]; ok {
		return price
	}

	if isStudent {
		return 70
	}
	return 150
}

// errorPrice is the flat rate applied when the catalog lookup itself fails.
func errorPrice(isStudent bool) float64 {
	if isStudent {
		return 75
	}
	return 150
}

// Resolve determines the price for a module at a complexity level. Lookup
// order: case-insensitive exact name match, substring match in either
// direction, then DefaultPrice. Query errors are logged and mapped to a flat
// fallback so that pricing never blocks an analysis.
func (r *repo) Resolve(ctx context.Context, moduleName, level string, isStudent bool) float64 {
	price, found, err := r.lookup(ctx, moduleName, level, isStudent)
	if err != nil {
		r.logger.Error("pricing lookup failed",
			"module", moduleName,
			"level", level,
			"error", err,
		)
		return errorPrice(isStudent)
	}

	if found {
		return price
	}

	return DefaultPrice(level, isStudent)
}

func (r *repo) lookup(ctx context.Context, moduleName, level string, isStudent bool) (float64, bool, error) {
	column := "base_price"
	if isStudent {
		column = "student_price"
	}

	exact := `
		SELECT ` + column + ` FROM pricing_entries
		WHERE LOWER(module_name) = LOWER($1) AND complexity_level = $2
		LIMIT 1`

	var price float64
	err := r.db.QueryRowContext(ctx, exact, moduleName, level).Scan(&price)
	if err == nil {
		return price, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	partial := `
		SELECT ` + column + ` FROM pricing_entries
		WHERE (module_name ILIKE '%' || $1 || '%' OR $1 ILIKE '%' || module_name || '%')
			AND complexity_level = $2
		LIMIT 1`

	err = r.db.QueryRowContext(ctx, partial, moduleName, level).Scan(&price)
	if err == nil {
		return price, true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	return 0, false, err
}
