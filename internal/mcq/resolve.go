package mcq

// ResolveCorrect derives the definitive set of correct option keys for a
// question at presentation time. Normalized questions resolve to their
// Correct field unchanged, but the derivation is repeated defensively so
// legacy or hand-built questions with raw shapes (option text, mixed
// case) still resolve. Pure and idempotent: resolving twice yields the
// same keys.
//
// A question with no options resolves to the empty set; there is no key
// to fall back to.
func ResolveCorrect(q Question) []string {
	keys, _ := resolveEntries(q.Options, q.Correct)
	return keys
}
