package input

import (
	"strings"

	"github.com/atomicstack/menukit/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the closest matching command token among the given
// children for an unresolved input, or "" when nothing is plausible.
func Suggest(children []*menu.Node, token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" || len(children) == 0 {
		return ""
	}
	candidates := make([]string, 0, len(children)*2)
	for _, child := range children {
		if child.Alias != "" {
			candidates = append(candidates, child.Alias)
		}
		if child.Binding != "" {
			candidates = append(candidates, child.Binding)
		}
	}
	lower := strings.ToLower(trimmed)
	for _, candidate := range candidates {
		cl := strings.ToLower(candidate)
		if strings.HasPrefix(cl, lower) || strings.HasPrefix(lower, cl) {
			return candidate
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return best.Target
}
