package mcq

import "strings"

// NormalizeQuestions converts raw parsed questions into the canonical
// shape: every Correct entry is an option key that exists in Options.
// Raw entries are matched case-insensitively against both option keys
// and option texts; entries that arrived as a single string are first
// split on commas. When nothing resolves the first option key is
// substituted and the question's Fallback flag is set. Questions are
// re-keyed sequentially in their original order.
func NormalizeQuestions(raw map[string]RawQuestion) QuestionSet {
	set := make(QuestionSet, 0, len(raw))

	for _, id := range sortedQuestionIDs(raw) {
		rq := raw[id]

		q := Question{
			Prompt:      rq.Prompt,
			Options:     rq.Options,
			Explanation: rq.Explanation,
		}
		q.Correct, q.Fallback = resolveEntries(rq.Options, rq.Correct.entries())

		set = append(set, q)
	}

	return set
}

// entries returns the raw correct values as individual strings. A bare
// string is split on commas ("a, c" and "b" are both common).
func (c RawCorrect) entries() []string {
	if !c.IsText {
		return c.Keys
	}

	parts := strings.Split(c.Text, ",")
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		entries = append(entries, strings.TrimSpace(p))
	}
	return entries
}

// resolveEntries maps raw correct entries to option keys. Returns the
// resolved keys and whether the first-option fallback was applied.
func resolveEntries(options map[string]string, entries []string) ([]string, bool) {
	var keys []string
	seen := make(map[string]bool)

	for _, entry := range entries {
		key, ok := matchOption(options, entry)
		if !ok || seen[key] {
			continue
		}
		keys = append(keys, key)
		seen[key] = true
	}

	if len(keys) == 0 {
		if first := sortedKeys(options); len(first) > 0 {
			return []string{first[0]}, true
		}
		// Empty options: nothing to fall back to. The question is
		// unanswerable but normalization stays lenient here.
		return nil, true
	}

	return keys, false
}

// matchOption finds the option key whose key or text matches the entry,
// case-insensitively.
func matchOption(options map[string]string, entry string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(entry))
	if needle == "" {
		return "", false
	}

	for _, k := range sortedKeys(options) {
		if needle == strings.ToLower(k) || needle == strings.ToLower(strings.TrimSpace(options[k])) {
			return k, true
		}
	}
	return "", false
}
