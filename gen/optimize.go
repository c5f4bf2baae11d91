package gen

import "github.com/crclogic/go-crchdl/logic"

// varPair is an unordered pair of variables in canonical order (a < b).
type varPair struct {
	a, b logic.Var
}

func comparePairs(x, y varPair) int {
	if c := logic.Compare(x.a, y.a); c != 0 {
		return c
	}
	return logic.Compare(x.b, y.b)
}

// optimize reduces equation size by hoisting variable pairs shared by two
// or more output equations into auxiliary signals, repeating until no
// pair is shared. Replacing a ^ b with aux, where aux is defined as
// a ^ b, keeps every assignment's result bit-identical, so the transform
// never changes the computed function.
//
// The pair with the highest occurrence count is extracted first; ties
// break on the canonical pair order, so identical input always yields an
// identical signal list. Each extraction strictly shrinks the output
// equations, which bounds the loop. Signals may reference earlier
// signals, forming a DAG ordered by signal index.
func optimize(set *logic.EquationSet) *logic.EquationSet {
	outputs := make([]logic.Equation, len(set.Outputs))
	copy(outputs, set.Outputs)
	var aux []logic.AuxSignal

	for {
		best, count := bestSharedPair(outputs)
		if count < 2 {
			break
		}

		sig := logic.AuxSignal{
			Index: len(aux),
			Eq:    logic.NewEquation(best.a, best.b),
		}
		aux = append(aux, sig)

		sub := logic.Var{Kind: logic.Aux, Index: sig.Index}
		for i, eq := range outputs {
			if !eq.Contains(best.a) || !eq.Contains(best.b) {
				continue
			}
			vars := make([]logic.Var, 0, len(eq.Terms)-1)
			for _, v := range eq.Terms {
				if v != best.a && v != best.b {
					vars = append(vars, v)
				}
			}
			vars = append(vars, sub)
			outputs[i] = logic.NewEquation(vars...)
		}
	}

	return &logic.EquationSet{
		Params:  set.Params,
		Outputs: outputs,
		Aux:     aux,
	}
}

// bestSharedPair counts every variable pair co-occurring inside an output
// equation and returns the most frequent one. Enumeration order is fixed
// and ties prefer the canonically smaller pair.
func bestSharedPair(outputs []logic.Equation) (varPair, int) {
	counts := make(map[varPair]int)
	for _, eq := range outputs {
		for i := 0; i < len(eq.Terms); i++ {
			for j := i + 1; j < len(eq.Terms); j++ {
				counts[varPair{a: eq.Terms[i], b: eq.Terms[j]}]++
			}
		}
	}

	var best varPair
	bestCount := 0
	for _, eq := range outputs {
		for i := 0; i < len(eq.Terms); i++ {
			for j := i + 1; j < len(eq.Terms); j++ {
				p := varPair{a: eq.Terms[i], b: eq.Terms[j]}
				n := counts[p]
				if n > bestCount || (n == bestCount && bestCount > 0 && comparePairs(p, best) < 0) {
					best, bestCount = p, n
				}
			}
		}
	}
	return best, bestCount
}
