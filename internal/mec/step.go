package mec

import (
	"github.com/fea-tools/mecheck/internal/diag"
	"github.com/fea-tools/mecheck/internal/model"
)

// aggregateSteps merges decoded SUBCASE/STGCONF/GEOPARM fragments into
// unified steps, keyed by sid, in first-seen order. A second fragment
// of the same family for a sid overwrites the first (last-write-wins)
// with an aggregation warning. The effective nlparm selector follows
// file order too: when a later fragment carries one while an earlier
// fragment of another family already set it, the later value wins and
// the overwrite is warned with the field name.
func aggregateSteps(frags []stepFrag, rep *diag.Report) []*model.Step {
	byID := make(map[string]*model.Step)
	var order []string

	for _, f := range frags {
		st, ok := byID[f.sid]
		if !ok {
			st = &model.Step{ID: f.sid}
			byID[f.sid] = st
			order = append(order, f.sid)
		}

		switch f.family {
		case famSubcase:
			if st.Subcase != nil {
				rep.Warnf(diag.KindAggregation, "step %s: duplicate SUBCASE (%s); later record wins", f.sid, f.lines)
			}
			st.Subcase = f.sub
			setNLParm(st, f.sub.NLParm, f.sid, rep)
		case famStgconf:
			if st.Stage != nil {
				rep.Warnf(diag.KindAggregation, "step %s: duplicate STGCONF (%s); later record wins", f.sid, f.lines)
			}
			st.Stage = f.stg
			setNLParm(st, f.stg.NLParm, f.sid, rep)
		case famGeoparm:
			if st.Geo != nil {
				rep.Warnf(diag.KindAggregation, "step %s: duplicate GEOPARM (%s); later record wins", f.sid, f.lines)
			}
			st.Geo = f.geo
		}
	}

	steps := make([]*model.Step, 0, len(order))
	for _, sid := range order {
		steps = append(steps, byID[sid])
	}
	return steps
}

// setNLParm applies a fragment's nlparm selector to the step. A
// differing value already present means two families both defined the
// field; the later record wins.
func setNLParm(st *model.Step, ref *model.Ref, sid string, rep *diag.Report) {
	if ref == nil {
		return
	}
	if st.NLParm != nil && st.NLParm.ID != ref.ID {
		rep.Warnf(diag.KindAggregation, "step %s: field \"nlparm\" defined more than once; later record wins (%s over %s)", sid, ref.ID, st.NLParm.ID)
	}
	r := *ref
	st.NLParm = &r
}
