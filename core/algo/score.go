package algo

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/huangsam/yomu/schema"
)

// WeightedScore combines factors with the weights of table.
//
// The factor keys must equal the table keys exactly; anything else is a
// programming error and is reported as schema.ErrFactorCardinality. The sum is
// taken in table enumeration order so repeated calls give identical scores.
func WeightedScore(factors schema.Factors, table *schema.WeightTable) (schema.FormulaResult, error) {
	if table == nil {
		return schema.FormulaResult{}, fmt.Errorf("no weight table: %w", schema.ErrFactorCardinality)
	}
	if len(factors) != table.Len() {
		return schema.FormulaResult{}, fmt.Errorf("%s expects %d factors, got %d: %w",
			table.Formula, table.Len(), len(factors), schema.ErrFactorCardinality)
	}

	result := schema.FormulaResult{
		Formula:         table.Formula,
		Factors:         make([]schema.Factor, 0, table.Len()),
		RawFactors:      make(schema.Factors, table.Len()),
		WeightedFactors: make(schema.Factors, table.Len()),
	}
	for _, key := range table.Keys {
		value, ok := factors[key]
		if !ok {
			return schema.FormulaResult{}, fmt.Errorf("%s factor %s missing: %w",
				table.Formula, key, schema.ErrFactorCardinality)
		}
		weight, _ := table.Weight(key)
		weighted := value * weight
		result.Score += weighted
		result.Factors = append(result.Factors, schema.Factor{
			Key:      key,
			Value:    value,
			Weight:   weight,
			Weighted: weighted,
		})
		result.RawFactors[key] = value
		result.WeightedFactors[key] = weighted
	}
	return result, nil
}

// TopContributors returns up to n factors of r ordered by absolute weighted
// value, largest first. The constant is left out.
func TopContributors(r *schema.FormulaResult, n int) []schema.Factor {
	if r == nil || n <= 0 {
		return nil
	}
	out := make([]schema.Factor, 0, len(r.Factors))
	for _, f := range r.Factors {
		if f.Key == schema.Constant {
			continue
		}
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b schema.Factor) int {
		return cmp.Compare(math.Abs(b.Weighted), math.Abs(a.Weighted))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
