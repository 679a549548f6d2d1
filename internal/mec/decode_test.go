package mec

import (
	"strings"
	"testing"

	"github.com/fea-tools/mecheck/internal/model"
)

func rec(keyword string, fields ...string) RawRecord {
	return RawRecord{Keyword: keyword, Fields: fields}
}

func TestDecodeModel_Full(t *testing.T) {
	info, err := decodeModel(rec("MODEL", "NODES=100", "ELEMENTS=40", "CONSTRAINTS=5", "SOLVER=FEANX"))
	if err != nil {
		t.Fatalf("decodeModel error: %v", err)
	}
	if info.Nodes != 100 || info.Elements != 40 || info.Constraints != 5 {
		t.Fatalf("counts = %d/%d/%d", info.Nodes, info.Elements, info.Constraints)
	}
	if info.Extra["SOLVER"] != "FEANX" {
		t.Fatalf("extra = %v", info.Extra)
	}
}

func TestDecodeModel_MissingRequired(t *testing.T) {
	_, err := decodeModel(rec("MODEL", "NODES=100", "ELEMENTS=40"))
	if err == nil || !strings.Contains(err.Error(), "CONSTRAINTS is required") {
		t.Fatalf("expected missing CONSTRAINTS error, got %v", err)
	}
}

func TestDecodeModel_BadCount(t *testing.T) {
	_, err := decodeModel(rec("MODEL", "NODES=many", "ELEMENTS=40", "CONSTRAINTS=5"))
	if err == nil || !strings.Contains(err.Error(), "nodes") {
		t.Fatalf("expected nodes error, got %v", err)
	}
}

func TestDecodeParam(t *testing.T) {
	p, err := decodeParam(rec("PARAM", "units", "M-N-J-SEC"))
	if err != nil {
		t.Fatalf("decodeParam error: %v", err)
	}
	if p.Name != "UNITS" || p.Value != "M-N-J-SEC" {
		t.Fatalf("param = %+v", p)
	}
}

func TestDecodeParam_MissingValue(t *testing.T) {
	_, err := decodeParam(rec("PARAM", "UNITS"))
	if err == nil || !strings.Contains(err.Error(), "field 2 (value)") {
		t.Fatalf("expected value error, got %v", err)
	}
}

func TestDecodeNLParm_Defaults(t *testing.T) {
	p, err := decodeNLParm(rec("NLPARM", "1", "10"))
	if err != nil {
		t.Fatalf("decodeNLParm error: %v", err)
	}
	if p.SID != "1" || p.NInc != 10 {
		t.Fatalf("nlparm = %+v", p)
	}
	if p.Method != "AUTO" || p.MaxIter != 25 || p.Conv != 2 {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.EpsU != 1e-2 || p.EpsP != 1e-3 {
		t.Fatalf("tolerance defaults not applied: %+v", p)
	}
}

func TestDecodeNLParm_BlankDTSkipped(t *testing.T) {
	p, err := decodeNLParm(rec("NLPARM", "1", "10", "", "SEMI", "20", "2"))
	if err != nil {
		t.Fatalf("decodeNLParm error: %v", err)
	}
	if p.Method != "SEMI" || p.MaxIter != 20 {
		t.Fatalf("nlparm = %+v", p)
	}
}

func TestDecodeNLParm_BadMethod(t *testing.T) {
	_, err := decodeNLParm(rec("NLPARM", "1", "10", "", "FAST"))
	if err == nil || !strings.Contains(err.Error(), "AUTO/SEMI/ITER") {
		t.Fatalf("expected method error, got %v", err)
	}
}

func TestDecodeNLParm_BadNInc(t *testing.T) {
	_, err := decodeNLParm(rec("NLPARM", "1", "x"))
	if err == nil || !strings.Contains(err.Error(), "field 2 (ninc)") {
		t.Fatalf("expected ninc error, got %v", err)
	}
}

func TestDecodeSubcase_Directives(t *testing.T) {
	f, err := decodeSubcase(rec("SUBCASE", "2", "SOL", "601", "LABEL", "Excavation", "LOAD", "5", "SPC", "1", "USE(STAGE)", "3"))
	if err != nil {
		t.Fatalf("decodeSubcase error: %v", err)
	}
	if f.sid != "2" || f.family != famSubcase {
		t.Fatalf("frag = %+v", f)
	}
	s := f.sub
	if s.Sol != 601 || s.Label != "Excavation" || s.UseStage != 3 {
		t.Fatalf("subcase = %+v", s)
	}
	if s.Load == nil || s.Load.ID != "5" || s.Load.Kind != model.RefLoadSet {
		t.Fatalf("load ref = %+v", s.Load)
	}
	if s.SPC == nil || s.SPC.ID != "1" {
		t.Fatalf("spc ref = %+v", s.SPC)
	}
}

func TestDecodeSubcase_AlphanumericID(t *testing.T) {
	f, err := decodeSubcase(rec("SUBCASE", "S1"))
	if err != nil {
		t.Fatalf("decodeSubcase error: %v", err)
	}
	if f.sid != "S1" {
		t.Fatalf("sid = %q, want S1", f.sid)
	}
}

func TestDecodeSubcase_UnknownDirective(t *testing.T) {
	_, err := decodeSubcase(rec("SUBCASE", "1", "DISP", "ALL"))
	if err == nil || !strings.Contains(err.Error(), "unknown directive") {
		t.Fatalf("expected directive error, got %v", err)
	}
}

func TestDecodeSubcase_MissingDirectiveValue(t *testing.T) {
	_, err := decodeSubcase(rec("SUBCASE", "1", "LOAD"))
	if err == nil || !strings.Contains(err.Error(), "missing value") {
		t.Fatalf("expected missing value error, got %v", err)
	}
}

func TestDecodeStgconf(t *testing.T) {
	f, err := decodeStgconf(rec("STGCONF", "1", "2", "0.1", "3", "NO"))
	if err != nil {
		t.Fatalf("decodeStgconf error: %v", err)
	}
	stg := f.stg
	if stg.Stage != 2 || stg.LoadStep != 0.1 || stg.Active {
		t.Fatalf("stgconf = %+v", stg)
	}
	if stg.NLParm == nil || stg.NLParm.ID != "3" {
		t.Fatalf("nlparm ref = %+v", stg.NLParm)
	}
}

func TestDecodeStgconf_Defaults(t *testing.T) {
	f, err := decodeStgconf(rec("STGCONF", "1", "0"))
	if err != nil {
		t.Fatalf("decodeStgconf error: %v", err)
	}
	if f.stg.LoadStep != 1.0 || !f.stg.Active || f.stg.NLParm != nil {
		t.Fatalf("stgconf = %+v", f.stg)
	}
}

func TestDecodeStgconf_BadLoadStep(t *testing.T) {
	_, err := decodeStgconf(rec("STGCONF", "1", "0", "-0.5"))
	if err == nil || !strings.Contains(err.Error(), "lodstep") {
		t.Fatalf("expected lodstep error, got %v", err)
	}
}

func TestDecodeGeoparm(t *testing.T) {
	f, err := decodeGeoparm(rec("GEOPARM", "1", "1", "K0", "0.5"))
	if err != nil {
		t.Fatalf("decodeGeoparm error: %v", err)
	}
	geo := f.geo
	if !geo.LargeDisp || geo.StressInit != "K0" || geo.K0 != 0.5 {
		t.Fatalf("geoparm = %+v", geo)
	}
}

func TestDecodeGeoparm_K0Required(t *testing.T) {
	_, err := decodeGeoparm(rec("GEOPARM", "1", "0", "K0"))
	if err == nil || !strings.Contains(err.Error(), "k0") {
		t.Fatalf("expected k0 error, got %v", err)
	}
}

func TestDecodeGrav(t *testing.T) {
	l, err := decodeGrav(rec("GRAV", "1", "0", "9.81", "0.", "0.", "-1."))
	if err != nil {
		t.Fatalf("decodeGrav error: %v", err)
	}
	if l.Kind != model.LoadGravity || l.SID != "1" || l.Owner != model.OwnerGlobal {
		t.Fatalf("load = %+v", l)
	}
	g := l.Gravity
	if g.Accel != 9.81 || g.N != (model.Vec{0, 0, -1}) {
		t.Fatalf("gravity = %+v", g)
	}
}

func TestDecodeGrav_ZeroDirection(t *testing.T) {
	_, err := decodeGrav(rec("GRAV", "1", "0", "9.81", "0", "0", "0"))
	if err == nil || !strings.Contains(err.Error(), "non-zero") {
		t.Fatalf("expected direction error, got %v", err)
	}
}

func TestDecodeGrav_BadNumber(t *testing.T) {
	_, err := decodeGrav(rec("GRAV", "1", "0", "heavy", "0", "0", "-1"))
	if err == nil || !strings.Contains(err.Error(), "field 3 (a)") {
		t.Fatalf("expected field 3 error, got %v", err)
	}
}

func TestDecodePload4(t *testing.T) {
	l, err := decodePload4(rec("PLOAD4", "2", "TUNNEL_WALL", "-50000"))
	if err != nil {
		t.Fatalf("decodePload4 error: %v", err)
	}
	p := l.Pressure
	if p.Value != -50000 || p.Target.ID != "TUNNEL_WALL" || p.Dir != nil {
		t.Fatalf("pressure = %+v", p)
	}
}

func TestDecodePload4_PartialDirection(t *testing.T) {
	_, err := decodePload4(rec("PLOAD4", "2", "10", "-50000", "1", "0"))
	if err == nil || !strings.Contains(err.Error(), "all of n1, n2, n3") {
		t.Fatalf("expected direction error, got %v", err)
	}
}

func TestDecodeLoadCombo(t *testing.T) {
	c, err := decodeLoadCombo(rec("LOAD", "10", "1.0", "1.0", "1", "1.5", "2"))
	if err != nil {
		t.Fatalf("decodeLoadCombo error: %v", err)
	}
	if c.SID != "10" || c.Scale != 1.0 || len(c.Terms) != 2 {
		t.Fatalf("combo = %+v", c)
	}
	if c.Terms[1].Factor != 1.5 || c.Terms[1].Load.ID != "2" {
		t.Fatalf("terms = %+v", c.Terms)
	}
}

func TestDecodeLoadCombo_OddPairs(t *testing.T) {
	_, err := decodeLoadCombo(rec("LOAD", "10", "1.0", "1.0"))
	if err == nil || !strings.Contains(err.Error(), "factor/set pairs") {
		t.Fatalf("expected pairs error, got %v", err)
	}
}

func TestDecodePshell(t *testing.T) {
	p, err := decodePshell(rec("PSHELL", "1", "2", "0.2"))
	if err != nil {
		t.Fatalf("decodePshell error: %v", err)
	}
	if p.Kind != model.PropShell || p.ID != "1" || p.Material.ID != "2" {
		t.Fatalf("property = %+v", p)
	}
	if p.Shell.Thickness != 0.2 {
		t.Fatalf("thickness = %g", p.Shell.Thickness)
	}
}

func TestDecodePshell_BadThickness(t *testing.T) {
	_, err := decodePshell(rec("PSHELL", "1", "2", "0"))
	if err == nil || !strings.Contains(err.Error(), "thickness must be positive") {
		t.Fatalf("expected thickness error, got %v", err)
	}
}

func TestDecodePsolid_Default(t *testing.T) {
	p, err := decodePsolid(rec("PSOLID", "3", "1"))
	if err != nil {
		t.Fatalf("decodePsolid error: %v", err)
	}
	if p.Solid.Integration != "FULL" {
		t.Fatalf("integration = %q", p.Solid.Integration)
	}
}

func TestDecodePbeam(t *testing.T) {
	p, err := decodePbeam(rec("PBEAM", "4", "1", "0.01", "1e-5", "2e-5"))
	if err != nil {
		t.Fatalf("decodePbeam error: %v", err)
	}
	b := p.Beam
	if b.Area != 0.01 || b.I1 != 1e-5 || b.I2 != 2e-5 || b.J != 0 {
		t.Fatalf("beam = %+v", b)
	}
}

func TestDecodePtruss(t *testing.T) {
	p, err := decodePtruss(rec("PTRUSS", "5", "2", "3e-4", "50000"))
	if err != nil {
		t.Fatalf("decodePtruss error: %v", err)
	}
	if p.Truss.Area != 3e-4 || p.Truss.Prestress != 50000 {
		t.Fatalf("truss = %+v", p.Truss)
	}
}

func TestDecodeMat1(t *testing.T) {
	m, err := decodeMat1(rec("MAT1", "1", "2.1e11", "", "0.3", "7850"))
	if err != nil {
		t.Fatalf("decodeMat1 error: %v", err)
	}
	e := m.Elastic
	if e.E != 2.1e11 || e.Nu != 0.3 || e.Rho != 7850 {
		t.Fatalf("elastic = %+v", e)
	}
}

func TestDecodeMat1_BadPoisson(t *testing.T) {
	_, err := decodeMat1(rec("MAT1", "1", "2.1e11", "", "0.5"))
	if err == nil || !strings.Contains(err.Error(), "Poisson") {
		t.Fatalf("expected Poisson error, got %v", err)
	}
}

func TestDecodeMatDmn(t *testing.T) {
	m, err := decodeMatDmn(rec("MATDMN", "2", "5e8", "1e8", "0.3", "0.45", "2e5", "1e4", "35"))
	if err != nil {
		t.Fatalf("decodeMatDmn error: %v", err)
	}
	d := m.Dmin
	if d.E0 != 5e8 || d.ECr != 1e8 || d.TauF != 2e5 || d.Phi != 35 {
		t.Fatalf("dmin = %+v", d)
	}
}

func TestDecodeMatMC(t *testing.T) {
	m, err := decodeMatMC(rec("MATMC", "3", "8e7", "0.33", "20000", "28", "2100"))
	if err != nil {
		t.Fatalf("decodeMatMC error: %v", err)
	}
	mc := m.MohrCoulomb
	if mc.Cohesion != 20000 || mc.Phi != 28 || mc.Rho != 2100 {
		t.Fatalf("mohr-coulomb = %+v", mc)
	}
}

func TestDecodeMatMC_BadPhi(t *testing.T) {
	_, err := decodeMatMC(rec("MATMC", "3", "8e7", "0.33", "20000", "95"))
	if err == nil || !strings.Contains(err.Error(), "friction angle") {
		t.Fatalf("expected phi error, got %v", err)
	}
}

func TestDecodeSPC1(t *testing.T) {
	c, err := decodeSPC1(rec("SPC1", "1", "123", "N1", "42"))
	if err != nil {
		t.Fatalf("decodeSPC1 error: %v", err)
	}
	if c.SID != "1" || c.DOFs != "123" || c.Value != 0 {
		t.Fatalf("constraint = %+v", c)
	}
	if len(c.Targets) != 2 || c.Targets[0].ID != "N1" || c.Targets[1].ID != "42" {
		t.Fatalf("targets = %+v", c.Targets)
	}
}

func TestDecodeSPC1_BadDOF(t *testing.T) {
	_, err := decodeSPC1(rec("SPC1", "1", "127", "N1"))
	if err == nil || !strings.Contains(err.Error(), "not a degree of freedom") {
		t.Fatalf("expected dof error, got %v", err)
	}
}

func TestDecodeSPC1_DuplicateDOF(t *testing.T) {
	_, err := decodeSPC1(rec("SPC1", "1", "112", "N1"))
	if err == nil || !strings.Contains(err.Error(), "duplicate degree of freedom") {
		t.Fatalf("expected duplicate dof error, got %v", err)
	}
}

func TestDecodeSPC1_NoTargets(t *testing.T) {
	_, err := decodeSPC1(rec("SPC1", "1", "123"))
	if err == nil || !strings.Contains(err.Error(), "at least one target") {
		t.Fatalf("expected target error, got %v", err)
	}
}

func TestDecodeSPC_PrescribedValue(t *testing.T) {
	c, err := decodeSPC(rec("SPC", "2", "TOP", "3", "-0.05"))
	if err != nil {
		t.Fatalf("decodeSPC error: %v", err)
	}
	if c.Value != -0.05 || c.DOFs != "3" || c.Targets[0].ID != "TOP" {
		t.Fatalf("constraint = %+v", c)
	}
}

func TestDecodeSet_Thru(t *testing.T) {
	s, err := decodeSet(rec("SET", "LINING", "1", "THRU", "5", "9"))
	if err != nil {
		t.Fatalf("decodeSet error: %v", err)
	}
	want := []int{1, 2, 3, 4, 5, 9}
	if len(s.Members) != len(want) {
		t.Fatalf("members = %v, want %v", s.Members, want)
	}
	for i := range want {
		if s.Members[i] != want[i] {
			t.Fatalf("members = %v, want %v", s.Members, want)
		}
	}
}

func TestDecodeSet_BadThru(t *testing.T) {
	_, err := decodeSet(rec("SET", "LINING", "5", "THRU", "2"))
	if err == nil || !strings.Contains(err.Error(), "THRU") {
		t.Fatalf("expected THRU error, got %v", err)
	}
}
