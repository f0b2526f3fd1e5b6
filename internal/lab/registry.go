package lab

import (
	"fmt"
	"sort"

	"github.com/san-kum/lifesim/internal/automaton"
	"github.com/san-kum/lifesim/internal/cells"
	"github.com/san-kum/lifesim/internal/sim"
)

// RuleInfo describes a registered rule for catalog listings.
type RuleInfo struct {
	Name string
	Desc string
}

type ruleEntry struct {
	desc  string
	build func(w, h int, b automaton.Boundary) (sim.Machine, error)
}

// Registry maps rule names to machine factories. Every rule keeps its
// own cell type; the registry erases the type parameter so callers
// stay monomorphic.
type Registry struct {
	rules map[string]ruleEntry
}

func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]ruleEntry)}

	r.rules["life"] = ruleEntry{
		desc: "Conway's Life, birth on 3 neighbors, survival on 2 or 3",
		build: func(w, h int, b automaton.Boundary) (sim.Machine, error) {
			return sim.NewMachine[cells.Binary]("life", w, h, b)
		},
	}
	r.rules["highlife"] = ruleEntry{
		desc: "Life plus birth on 6, spawns replicators",
		build: func(w, h int, b automaton.Boundary) (sim.Machine, error) {
			return sim.NewMachine[cells.HighLife]("highlife", w, h, b)
		},
	}
	r.rules["seeds"] = ruleEntry{
		desc: "birth on exactly 2, nothing survives",
		build: func(w, h int, b automaton.Boundary) (sim.Machine, error) {
			return sim.NewMachine[cells.Seeds]("seeds", w, h, b)
		},
	}
	r.rules["aged"] = ruleEntry{
		desc: "Life with cells tinted by how long they have been alive",
		build: func(w, h int, b automaton.Boundary) (sim.Machine, error) {
			return sim.NewMachine[cells.Aged]("aged", w, h, b)
		},
	}
	r.rules["brain"] = ruleEntry{
		desc: "Brian's Brain, firing cells leave a refractory trail",
		build: func(w, h int, b automaton.Boundary) (sim.Machine, error) {
			return sim.NewMachine[cells.Brain]("brain", w, h, b)
		},
	}

	return r
}

func (r *Registry) Build(rule string, w, h int, b automaton.Boundary) (sim.Machine, error) {
	entry, ok := r.rules[rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule: %s", rule)
	}
	return entry.build(w, h, b)
}

// ListRules returns the registered rule names sorted.
func (r *Registry) ListRules() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns name and description for every rule, sorted by name.
func (r *Registry) Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(r.rules))
	for name, entry := range r.rules {
		infos = append(infos, RuleInfo{Name: name, Desc: entry.desc})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
