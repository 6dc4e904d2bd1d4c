// Package grammar enumerates every scale pattern of a given octave size that
// a small structural grammar admits.
//
// 🚀 The grammar
//
//	Three mutually recursive nonterminals consume a remaining length L:
//
//	  A(L), L > 1 :  1 · B(L-1)   |  1 1 · B(L-2)
//	  B(L), L > 0 :  3 · A(L-3)   |  2 · C(L-2)    |  2 3 · C(L-5)
//	  C(L), L ≥ 0 :  ε if L == 0  |  A(L)          |  B(L)
//
//	A full pattern is any derivation of C(N). Half steps therefore come in
//	runs of at most two and are always followed by a larger step, an
//	augmented step is always followed by a half step unless it closes a
//	"2 3" pair, and every pattern ends on a whole or augmented step.
//
// ✨ Properties
//   - Memoised on (nonterminal, remaining length): O(N) distinct subproblems.
//   - Deterministic: the same N yields the same patterns in the same order.
//   - Immutable result: a Set never changes after Generate returns it.
//
// ⚙️ Usage:
//
//	set, err := grammar.Generate(12)   // 136 patterns
//	for i := 0; i < set.Len(); i++ {
//		fmt.Println(set.At(i))
//	}
//
//	shared, _ := grammar.Shared(12)    // built once per process
//
// Complexity:
//
//	Time:   O(N + total output size)
//	Memory: O(total output size)
package grammar
