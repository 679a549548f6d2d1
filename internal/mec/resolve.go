package mec

import (
	"sort"
	"strconv"

	"github.com/fea-tools/mecheck/internal/diag"
	"github.com/fea-tools/mecheck/internal/model"
)

// sortedKeys returns map keys in sorted order so warning output is
// deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolve walks every reference in the model and marks it resolved,
// external, or dangling. Dangling references are warnings: the owning
// record stays in the model with the reference flagged so the caller
// can surface it.
//
// Two id namespaces behave differently. Material ids, load/SPC set
// sids and NLPARM sids live in the deck itself, so a missing target is
// dangling. Node/element region names live in the companion mesh file;
// a named target with no in-file SET definition is marked external,
// not dangling.
func resolve(m *model.Model) {
	rep := m.Report

	loadSIDs := make(map[string]bool)
	for _, l := range m.Loads {
		loadSIDs[l.SID] = true
	}
	for _, c := range m.LoadCombos {
		loadSIDs[c.SID] = true
	}
	spcSIDs := make(map[string]bool)
	for _, c := range m.Constraints {
		spcSIDs[c.SID] = true
	}

	inFile := func(ref *model.Ref) bool {
		switch ref.Kind {
		case model.RefMaterial:
			return m.Materials[ref.ID] != nil
		case model.RefLoadSet:
			return loadSIDs[ref.ID]
		case model.RefSPCSet:
			return spcSIDs[ref.ID]
		case model.RefNLParm:
			return m.NLParams[ref.ID] != nil
		}
		return false
	}

	// markQuiet sets status without warning; used for fragment-level
	// copies of a selector whose effective value is warned once.
	markQuiet := func(ref *model.Ref) {
		if ref == nil {
			return
		}
		if inFile(ref) {
			ref.Status = model.RefResolved
		} else {
			ref.Status = model.RefDangling
		}
	}

	mark := func(owner string, ref *model.Ref) {
		if ref == nil {
			return
		}
		if inFile(ref) {
			ref.Status = model.RefResolved
			return
		}
		ref.Status = model.RefDangling
		rep.Warnf(diag.KindReference, "%s: %s %s is not defined", owner, ref.Kind, ref.ID)
	}

	// Mesh-region targets: inline numeric ids and deck-defined sets
	// resolve; other names belong to the mesh.
	markTarget := func(ref *model.Ref) {
		if _, err := strconv.Atoi(ref.ID); err == nil {
			ref.Status = model.RefResolved
			return
		}
		if m.Sets[ref.ID] != nil {
			ref.Status = model.RefResolved
			return
		}
		ref.Status = model.RefExternal
	}

	for _, id := range sortedKeys(m.Properties) {
		p := m.Properties[id]
		mark(string(p.Kind)+" property "+p.ID, &p.Material)
	}
	for _, st := range m.Steps {
		owner := "step " + st.ID
		if st.Subcase != nil {
			mark(owner, st.Subcase.Load)
			mark(owner, st.Subcase.SPC)
			markQuiet(st.Subcase.NLParm)
		}
		if st.Stage != nil {
			markQuiet(st.Stage.NLParm)
		}
		mark(owner, st.NLParm)
	}
	for _, c := range m.LoadCombos {
		for i := range c.Terms {
			mark("load combination "+c.SID, &c.Terms[i].Load)
		}
	}
	for _, l := range m.Loads {
		if l.Pressure != nil {
			markTarget(&l.Pressure.Target)
		}
	}
	for _, c := range m.Constraints {
		for i := range c.Targets {
			markTarget(&c.Targets[i])
		}
	}
}
