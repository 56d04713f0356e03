// Package resolver partitions normalized records into duplicate groups.
package resolver

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/aswinr92/lead-generator/internal/model"
	"github.com/aswinr92/lead-generator/internal/similarity"
)

// cityFallbackThreshold is the fixed name similarity required by the
// name+city strategy. It is deliberately stricter than the configurable
// name threshold because city alone is weak evidence.
const cityFallbackThreshold = 90

// Options configures resolution.
type Options struct {
	// NameThreshold and AddressThreshold gate the name+address strategy.
	// Both are inclusive and must lie in [0,100].
	NameThreshold    int
	AddressThreshold int

	// Workers bounds the goroutines used for pairwise scoring. Zero means
	// one per CPU. Worker count never changes grouping results.
	Workers int
}

// Resolve partitions records into duplicate groups by applying the matching
// strategies in priority order against a shrinking ungrouped set:
//
//  1. identical non-empty phone (records with a phone never leave this pass)
//  2. fuzzy name + address similarity over the remainder
//  3. identical extracted city + near-exact name for what is left
//
// Every record index appears in exactly one returned group; untouched
// records become singleton groups. Output is deterministic and independent
// of worker scheduling.
func Resolve(records []model.NormalizedRecord, opts Options) []model.DuplicateGroup {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	grouped := make([]bool, len(records))
	var groups []model.DuplicateGroup

	groups = append(groups, phoneGroups(records, grouped)...)
	groups = append(groups, nameAddressGroups(records, grouped, opts)...)
	groups = append(groups, nameCityGroups(records, grouped)...)

	for i := range records {
		if !grouped[i] {
			groups = append(groups, model.DuplicateGroup{
				Indices:  []int{i},
				Strategy: model.StrategyNone,
			})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Indices[0] < groups[j].Indices[0]
	})
	return groups
}

// phoneGroups partitions records with a non-empty phone by exact phone
// value. Every partition becomes a priority-1 group, singletons included,
// so a phone-bearing record is never re-matched by a weaker strategy.
func phoneGroups(records []model.NormalizedRecord, grouped []bool) []model.DuplicateGroup {
	byPhone := make(map[string][]int)
	for i, rec := range records {
		if rec.Phone != "" {
			byPhone[rec.Phone] = append(byPhone[rec.Phone], i)
		}
	}

	phones := make([]string, 0, len(byPhone))
	for phone := range byPhone {
		phones = append(phones, phone)
	}
	sort.Strings(phones)

	var groups []model.DuplicateGroup
	for _, phone := range phones {
		indices := byPhone[phone]
		for _, i := range indices {
			grouped[i] = true
		}
		groups = append(groups, model.DuplicateGroup{
			Indices:  indices,
			Strategy: model.StrategyPhone,
			Score:    100,
		})
	}
	return groups
}

// nameAddressGroups connects still-ungrouped records whose name and address
// similarities both clear their thresholds, then closes the groups
// transitively.
func nameAddressGroups(records []model.NormalizedRecord, grouped []bool, opts Options) []model.DuplicateGroup {
	var candidates []int
	for i, rec := range records {
		if !grouped[i] && rec.Name != "" && rec.Address != "" {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < 2 {
		return nil
	}

	edges := nameAddressEdges(records, candidates, opts)
	return closeGroups(records, grouped, model.StrategyNameAddress, edges)
}

// nameAddressEdges scores every candidate pair, sharded across workers by
// first index. Shard results are collected positionally, so the final edge
// order (ascending a, then b) never depends on scheduling.
func nameAddressEdges(records []model.NormalizedRecord, candidates []int, opts Options) []model.MatchEdge {
	shards := make([][]model.MatchEdge, len(candidates))

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for ci := range candidates {
		g.Go(func() error {
			a := candidates[ci]
			var edges []model.MatchEdge
			for _, b := range candidates[ci+1:] {
				nameScore := similarity.Score(records[a], records[b], similarity.Name)
				if nameScore < opts.NameThreshold {
					continue
				}
				addrScore := similarity.Score(records[a], records[b], similarity.Address)
				if addrScore < opts.AddressThreshold {
					continue
				}
				edges = append(edges, model.MatchEdge{
					A: a, B: b,
					NameScore:    nameScore,
					AddressScore: addrScore,
				})
			}
			shards[ci] = edges
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	var all []model.MatchEdge
	for _, shard := range shards {
		all = append(all, shard...)
	}
	return all
}

// nameCityGroups handles the phoneless remainder: records sharing an
// extracted city whose names are nearly identical.
func nameCityGroups(records []model.NormalizedRecord, grouped []bool) []model.DuplicateGroup {
	byCity := make(map[string][]int)
	for i, rec := range records {
		if !grouped[i] && rec.Phone == "" && rec.Name != "" && rec.City != "" {
			byCity[rec.City] = append(byCity[rec.City], i)
		}
	}

	cities := make([]string, 0, len(byCity))
	for city := range byCity {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	var all []model.MatchEdge
	for _, city := range cities {
		indices := byCity[city]
		for i, a := range indices {
			for _, b := range indices[i+1:] {
				nameScore := similarity.Score(records[a], records[b], similarity.Name)
				if nameScore >= cityFallbackThreshold {
					all = append(all, model.MatchEdge{A: a, B: b, NameScore: nameScore})
				}
			}
		}
	}
	return closeGroups(records, grouped, model.StrategyNameCity, all)
}

// closeGroups unions the edge endpoints and emits one group per connected
// component of size two or more, tagged with strategy. The group score is
// the weakest connecting edge's name similarity.
func closeGroups(records []model.NormalizedRecord, grouped []bool, strategy model.Strategy, edges []model.MatchEdge) []model.DuplicateGroup {
	if len(edges) == 0 {
		return nil
	}

	uf := newUnionFind(len(records))
	for _, e := range edges {
		uf.union(e.A, e.B)
	}

	members := make(map[int][]int)
	for _, e := range edges {
		for _, idx := range []int{e.A, e.B} {
			if !grouped[idx] {
				grouped[idx] = true
				root := uf.find(idx)
				members[root] = append(members[root], idx)
			}
		}
	}

	roots := make([]int, 0, len(members))
	for root := range members {
		roots = append(roots, root)
	}
	sort.Ints(roots)

	var groups []model.DuplicateGroup
	for _, root := range roots {
		indices := members[root]
		sort.Ints(indices)

		var groupEdges []model.MatchEdge
		score := 100
		for _, e := range edges {
			if uf.find(e.A) != root {
				continue
			}
			groupEdges = append(groupEdges, e)
			if e.NameScore < score {
				score = e.NameScore
			}
		}

		groups = append(groups, model.DuplicateGroup{
			Indices:  indices,
			Strategy: strategy,
			Score:    score,
			Edges:    groupEdges,
		})
	}
	return groups
}
