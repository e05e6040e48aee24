package imdb

import (
	"log/slog"
	"regexp"

	"studiocat/lib/textutil"

	"github.com/antzucaro/matchr"
)

// A studio may be registered under several company records upstream,
// in which case all of them are listed here in output order.
var knownStudios = map[string][]string{
	"sony":       {"columbia", "co0086397"},
	"columbia":   {"columbia", "co0086397"},
	"disney":     {"disney", "co0098836"},
	"warner":     {"warner"},
	"universal":  {"universal"},
	"paramount":  {"paramount"},
	"fox":        {"fox"},
	"mgm":        {"mgm"},
	"dreamworks": {"co0040938"},
	"lionsgate":  {"lionsgate"},
	"newline":    {"co0046718"},
}

var companyCodeRegex = regexp.MustCompile(`^co[0-9]+$`)

type Resolver struct {
	table map[string][]string
}

// NewResolver builds a resolver from the built-in studio table plus
// optional extra entries (from config). Extra entries win on conflict.
func NewResolver(extra map[string][]string) Resolver {
	table := make(map[string][]string, len(knownStudios)+len(extra))
	for name, ids := range knownStudios {
		table[name] = ids
	}
	for name, ids := range extra {
		if len(ids) == 0 {
			continue
		}
		table[textutil.NormalizeName(name)] = ids
	}
	return Resolver{table: table}
}

// Resolve maps a studio name to its ordered company identifier list.
// Unknown names degrade to literal pass-through: the upstream service
// accepts free-form company names, so validity is only decided by the
// fetch that follows. Never returns an empty list.
func (r Resolver) Resolve(name string) []string {
	normalized := textutil.NormalizeName(name)

	if ids, ok := r.table[normalized]; ok {
		return ids
	}
	if companyCodeRegex.MatchString(normalized) {
		return []string{normalized}
	}

	if nearest := r.nearestKnown(normalized); nearest != "" {
		slog.Info(
			"studio not in the known table, passing it through as-is",
			"studio", normalized,
			"closest_known", nearest,
		)
	}
	return []string{normalized}
}

// nearestKnown returns the best Jaro-Winkler match over the known
// table, or "" when nothing comes close enough to be a useful hint.
func (r Resolver) nearestKnown(name string) string {
	best := ""
	bestSim := 0.8
	for known := range r.table {
		sim := matchr.JaroWinkler(name, known, false)
		if sim > bestSim {
			bestSim = sim
			best = known
		}
	}
	return best
}
