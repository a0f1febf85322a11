package strategy

import "math"

// solveEquilibrium returns the attacker's mixed strategy for the zero-sum
// game with attacker payoff matrix payoff (K x M, attacker maximizes,
// defender minimizes), per spec.md §4.5.2: "enumerate support equilibria
// and take the attacker's mixed strategy from the first."
//
// Two cases short-circuit the search and report a discriminated outcome
// (spec.md §9's {Unique, Degenerate, UniformFallback} replacement for the
// original's exception-driven equilibrium search):
//   - K == 1: the only strategy is to always play the sole route.
//   - the matrix is constant (every entry equal): every mixed strategy is
//     an equilibrium, so enumeration order is meaningless; the uniform
//     distribution is returned directly rather than accidentally favoring
//     whichever pure strategy a fixed enumeration order happens to visit
//     first.
//
// Otherwise, support enumeration walks equal-size row/column support pairs
// (R, C), |R| = |C| = s, s = 1..min(K, M), solving the two indifference
// linear systems with Gauss-Jordan elimination (generalized from
// matrix/impl_linear_algebra.go's elimination kernel from distance
// matrices to payoff matrices) and verifying the probability-simplex and
// best-response conditions on the result. The first verified support wins.
// If none verifies, the uniform distribution is returned as the safe
// default (spec.md §4.5.2).
func solveEquilibrium(payoff [][]float64) ([]float64, EquilibriumKind) {
	k := len(payoff)
	if k == 0 {
		return nil, EquilibriumUniformFallback
	}
	if k == 1 {
		return []float64{1.0}, EquilibriumDegenerate
	}

	m := len(payoff[0])
	if m == 0 || isConstantMatrix(payoff) {
		return uniform(k), EquilibriumUniformFallback
	}

	maxSupport := k
	if m < maxSupport {
		maxSupport = m
	}

	for s := 1; s <= maxSupport; s++ {
		for _, rowSet := range combinations(k, s) {
			for _, colSet := range combinations(m, s) {
				if x, ok := trySupport(payoff, rowSet, colSet); ok {
					return x, EquilibriumUnique
				}
			}
		}
	}

	return uniform(k), EquilibriumUniformFallback
}

func uniform(n int) []float64 {
	out := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range out {
		out[i] = p
	}

	return out
}

func isConstantMatrix(payoff [][]float64) bool {
	first := payoff[0][0]
	for _, row := range payoff {
		for _, v := range row {
			if math.Abs(v-first) > equilibriumTolerance {
				return false
			}
		}
	}

	return true
}

// trySupport attempts to build a valid equilibrium from the row support
// rowSet (candidate attacker strategy) and column support colSet
// (candidate defender strategy), returning the attacker's full-length
// mixed strategy (zero outside rowSet) on success.
func trySupport(payoff [][]float64, rowSet, colSet []int) ([]float64, bool) {
	k, m := len(payoff), len(payoff[0])
	s := len(rowSet)

	// x (over rowSet) makes the defender indifferent among colSet:
	// for each j in colSet: sum_i x_i * payoff[rowSet[i]][j] = v
	// plus sum_i x_i = 1.
	x, v, ok := solveIndifference(payoff, rowSet, colSet, false)
	if !ok || !isProbabilityVector(x) {
		return nil, false
	}

	// y (over colSet) makes the attacker indifferent among rowSet:
	// for each i in rowSet: sum_j y_j * payoff[i][colSet[j]] = w
	// plus sum_j y_j = 1.
	y, w, ok := solveIndifference(payoff, colSet, rowSet, true)
	if !ok || !isProbabilityVector(y) {
		return nil, false
	}
	_ = w

	// Best response: no row outside rowSet should strictly beat v against y.
	for i := 0; i < k; i++ {
		if containsInt(rowSet, i) {
			continue
		}
		if payoffAgainst(payoff[i], colSet, y) > v+equilibriumTolerance {
			return nil, false
		}
	}

	// Best response: no column outside colSet should strictly beat v
	// (lower, since the defender minimizes the attacker's payoff) against x.
	for j := 0; j < m; j++ {
		if containsInt(colSet, j) {
			continue
		}
		if columnPayoffAgainst(payoff, j, rowSet, x) < v-equilibriumTolerance {
			return nil, false
		}
	}

	full := make([]float64, k)
	for i, row := range rowSet {
		full[row] = x[i]
	}

	return full, true
}

// solveIndifference solves for a mixed strategy over support (length s)
// that makes the opponent indifferent across opponentSupport (also length
// s), returning the strategy, the common value, and whether the (s+1)x(s+1)
// system was non-singular. When transposed is true, payoff is read as
// payoff[opponentSupport[row]][support[col]] (used for the attacker-
// indifference system, which walks payoff by column-support rows).
func solveIndifference(payoff [][]float64, support, opponentSupport []int, transposed bool) ([]float64, float64, bool) {
	s := len(support)
	n := s + 1 // unknowns: s strategy weights + the common value v

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n+1)
	}

	// One row per opponentSupport entry: sum_i w_i * payoff(support[i], opp) - v = 0.
	for row, opp := range opponentSupport {
		for col, sup := range support {
			if transposed {
				a[row][col] = payoff[opp][sup]
			} else {
				a[row][col] = payoff[sup][opp]
			}
		}
		a[row][s] = -1 // coefficient of v
		a[row][n] = 0
	}

	// Final row: weights sum to 1.
	for col := 0; col < s; col++ {
		a[s][col] = 1
	}
	a[s][s] = 0
	a[s][n] = 1

	solution, ok := gaussJordan(a)
	if !ok {
		return nil, 0, false
	}

	return solution[:s], solution[s], true
}

// gaussJordan solves the augmented system a (n rows, n+1 cols, last column
// is the right-hand side) via Gauss-Jordan elimination with partial
// pivoting. Returns ok=false for a singular or near-singular system.
func gaussJordan(a [][]float64) ([]float64, bool) {
	n := len(a)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		pivotVal := a[col][col]
		for c := col; c <= n; c++ {
			a[col][c] /= pivotVal
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = a[i][n]
	}

	return out, true
}

func isProbabilityVector(x []float64) bool {
	sum := 0.0
	for _, v := range x {
		if v < -equilibriumTolerance {
			return false
		}
		sum += v
	}

	return math.Abs(sum-1) < 1e-6
}

func payoffAgainst(row []float64, colSet []int, y []float64) float64 {
	total := 0.0
	for idx, j := range colSet {
		total += y[idx] * row[j]
	}

	return total
}

func columnPayoffAgainst(payoff [][]float64, col int, rowSet []int, x []float64) float64 {
	total := 0.0
	for idx, i := range rowSet {
		total += x[idx] * payoff[i][col]
	}

	return total
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}

// combinations returns every s-element subset of {0, ..., n-1} in
// lexicographic order.
func combinations(n, s int) [][]int {
	if s > n {
		return nil
	}

	var out [][]int
	idx := make([]int, s)
	for i := range idx {
		idx[i] = i
	}

	for {
		out = append(out, append([]int(nil), idx...))

		i := s - 1
		for i >= 0 && idx[i] == n-s+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < s; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return out
}
