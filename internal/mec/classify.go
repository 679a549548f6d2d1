package mec

// target identifies which decoder (or tally bucket) a record keyword
// dispatches to. Dispatch is an exact match on the upper-cased
// keyword; anything else is unparsed.
type target int

const (
	targetUnknown target = iota
	targetModel
	targetTitle
	targetParam
	targetNLParm
	targetSubcase
	targetStgconf
	targetGeoparm
	targetGrav
	targetPload4
	targetLoadCombo
	targetPShell
	targetPSolid
	targetPBeam
	targetPTruss
	targetMat1
	targetMatDmn
	targetMatMC
	targetSPC1
	targetSPC
	targetSet
	targetTallyGrid
	targetTallyElement
)

var keywordTable = map[string]target{
	"MODEL":   targetModel,
	"TITLE":   targetTitle,
	"PARAM":   targetParam,
	"NLPARM":  targetNLParm,
	"SUBCASE": targetSubcase,
	"STGCONF": targetStgconf,
	"GEOPARM": targetGeoparm,
	"GRAV":    targetGrav,
	"PLOAD4":  targetPload4,
	"LOAD":    targetLoadCombo,
	"PSHELL":  targetPShell,
	"PSOLID":  targetPSolid,
	"PBEAM":   targetPBeam,
	"PTRUSS":  targetPTruss,
	"MAT1":    targetMat1,
	"MATDMN":  targetMatDmn,
	"MATMC":   targetMatMC,
	"SPC1":    targetSPC1,
	"SPC":     targetSPC,
	"SET":     targetSet,

	// Mesh bulk lines: counted, not decoded.
	"GRID":   targetTallyGrid,
	"CHEXA":  targetTallyElement,
	"CPENTA": targetTallyElement,
	"CPYRAM": targetTallyElement,
	"CTETRA": targetTallyElement,
	"CQUAD4": targetTallyElement,
	"CTRIA3": targetTallyElement,
}

// classify returns the decode target for a keyword, or targetUnknown.
func classify(keyword string) target {
	return keywordTable[keyword]
}
