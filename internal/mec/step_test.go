package mec

import (
	"strings"
	"testing"

	"github.com/fea-tools/mecheck/internal/diag"
	"github.com/fea-tools/mecheck/internal/model"
)

func subFrag(sid string, line int, sub *model.SubcaseFrag) stepFrag {
	return stepFrag{sid: sid, family: famSubcase, lines: diag.LineRange{Start: line, End: line}, sub: sub}
}

func stgFrag(sid string, line int, stg *model.StageFrag) stepFrag {
	return stepFrag{sid: sid, family: famStgconf, lines: diag.LineRange{Start: line, End: line}, stg: stg}
}

func TestAggregate_MergesFamilies(t *testing.T) {
	rep := diag.NewReport()
	steps := aggregateSteps([]stepFrag{
		subFrag("S1", 1, &model.SubcaseFrag{Label: "Initial"}),
		stgFrag("S1", 2, &model.StageFrag{Stage: 1, LoadStep: 0.1, Active: true}),
	}, rep)
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	st := steps[0]
	if st.ID != "S1" || st.Subcase == nil || st.Stage == nil || st.Geo != nil {
		t.Fatalf("step = %+v", st)
	}
	if st.Stage.LoadStep != 0.1 {
		t.Fatalf("load step = %g", st.Stage.LoadStep)
	}
	if rep.WarningCount() != 0 {
		t.Fatalf("unexpected warnings: %+v", rep.Warnings)
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	rep := diag.NewReport()
	steps := aggregateSteps([]stepFrag{
		stgFrag("2", 1, &model.StageFrag{Stage: 2, LoadStep: 1, Active: true}),
		subFrag("1", 2, &model.SubcaseFrag{}),
		subFrag("2", 3, &model.SubcaseFrag{}),
	}, rep)
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].ID != "2" || steps[1].ID != "1" {
		t.Fatalf("order = %s, %s; want first-seen 2, 1", steps[0].ID, steps[1].ID)
	}
}

func TestAggregate_DuplicateFamilyLastWins(t *testing.T) {
	rep := diag.NewReport()
	steps := aggregateSteps([]stepFrag{
		stgFrag("S1", 1, &model.StageFrag{Stage: 1, LoadStep: 0.5, Active: true}),
		stgFrag("S1", 2, &model.StageFrag{Stage: 2, LoadStep: 0.25, Active: true}),
	}, rep)
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if steps[0].Stage.Stage != 2 || steps[0].Stage.LoadStep != 0.25 {
		t.Fatalf("later STGCONF should win: %+v", steps[0].Stage)
	}
	if rep.WarningCount() != 1 {
		t.Fatalf("expected 1 warning, got %+v", rep.Warnings)
	}
	w := rep.Warnings[0]
	if w.Kind != diag.KindAggregation || !strings.Contains(w.Message, "duplicate STGCONF") || !strings.Contains(w.Message, "S1") {
		t.Fatalf("unexpected warning: %+v", w)
	}
}

func TestAggregate_NLParmConflictLaterWins(t *testing.T) {
	subRef := model.NewRef(model.RefNLParm, "1")
	stgRef := model.NewRef(model.RefNLParm, "2")
	rep := diag.NewReport()
	steps := aggregateSteps([]stepFrag{
		subFrag("1", 1, &model.SubcaseFrag{NLParm: &subRef}),
		stgFrag("1", 2, &model.StageFrag{Stage: 0, LoadStep: 1, Active: true, NLParm: &stgRef}),
	}, rep)
	st := steps[0]
	if st.NLParm == nil || st.NLParm.ID != "2" {
		t.Fatalf("effective nlparm = %+v, want 2", st.NLParm)
	}
	if rep.WarningCount() != 1 || !strings.Contains(rep.Warnings[0].Message, "nlparm") {
		t.Fatalf("expected nlparm conflict warning, got %+v", rep.Warnings)
	}
}

func TestAggregate_SameNLParmNoWarning(t *testing.T) {
	a := model.NewRef(model.RefNLParm, "1")
	b := model.NewRef(model.RefNLParm, "1")
	rep := diag.NewReport()
	aggregateSteps([]stepFrag{
		subFrag("1", 1, &model.SubcaseFrag{NLParm: &a}),
		stgFrag("1", 2, &model.StageFrag{Stage: 0, LoadStep: 1, Active: true, NLParm: &b}),
	}, rep)
	if rep.WarningCount() != 0 {
		t.Fatalf("same selector should not warn: %+v", rep.Warnings)
	}
}
