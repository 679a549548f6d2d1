package docs

var topics = []Topic{
	{
		Name:    "format",
		Title:   "MEC File Format",
		Summary: "Lexical rules: comments, continuations, fields",
		Content: topicFormat,
	},
	{
		Name:    "records",
		Title:   "Record Reference",
		Summary: "Every record family and its fields",
		Content: topicRecords,
	},
	{
		Name:    "steps",
		Title:   "Analysis Steps",
		Summary: "How SUBCASE, STGCONF and GEOPARM merge into steps",
		Content: topicSteps,
	},
	{
		Name:    "refs",
		Title:   "Cross References",
		Summary: "Resolution rules and what a dangling reference means",
		Content: topicRefs,
	},
	{
		Name:    "report",
		Title:   "Parse Report",
		Summary: "Error taxonomy and how diagnostics are accumulated",
		Content: topicReport,
	},
}

const topicFormat = `MEC FILE FORMAT

A MEC file is line-oriented bulk data, one record per logical line.

Comments
  Lines whose first non-blank character is '$' are skipped. The FEANX
  exporter writes '$$ Name of Property [ID:n] <name>' and
  '$$ Name of Material [ID:n] <name>' annotation comments; mecheck
  harvests these so properties and materials keep their display names.

Continuations
  A line starting with ',', '+', or leading whitespace continues the
  record opened above it. Its fields are appended in order. A
  continuation with no open record is reported and skipped.

Fields
  Comma-delimited when the line contains a comma:

      MAT1, 1, 2.1e11, , 0.3

  A blank field in the middle means "use the default". A comma-free
  line containing '=' splits once into key and value (TITLE = ...,
  LOAD = 5); otherwise fields are whitespace-separated (SUBCASE 1).
  An indented directive continuation splits at '=' even when the
  value contains commas, so LABEL = Stage 1, excavation stays one
  label.

  Keywords are case-insensitive.
`

const topicRecords = `RECORD REFERENCE

Header
  MODEL    keyed fields: NODES=, ELEMENTS=, CONSTRAINTS= (required);
           other keys are kept as header metadata
  TITLE    analysis title text
  PARAM    name, value (kept verbatim, order preserved)

Solver control
  NLPARM   sid, ninc, dt(ignored), method(AUTO/SEMI/ITER), maxiter,
           conv, epsu, epsp. Duplicate sids are a decode error.

Steps (see 'mecheck docs steps')
  SUBCASE  sid, then directives: SOL n, LABEL = t, LOAD = s, SPC = s,
           NLPARM = s, USE(STAGE) = n
  STGCONF  sid, stage, lodstep, nlparm, active(YES/NO)
  GEOPARM  sid, lgdisp(0/1), stressinit(NONE/K0/FIELD), k0

Loads
  GRAV     sid, cid, a, n1, n2, n3
  PLOAD4   sid, target set, pressure, [n1, n2, n3]
  LOAD     sid, scale, factor, set, factor, set, ...

Properties
  PSHELL   pid, mid, thickness
  PSOLID   pid, mid, integration(FULL/REDUCED)
  PBEAM    pid, mid, area, i1, i2, j
  PTRUSS   pid, mid, area, prestress

Materials
  MAT1     mid, e, g(ignored), nu, rho
  MATDMN   mid, e0, ecr, nu0, nucr, tauf, sigt, phi
  MATMC    mid, e, nu, cohesion, phi, rho

Constraints and sets
  SPC1     sid, dofs, target...       (fixity, value 0)
  SPC      sid, target, dofs, value   (prescribed displacement)
  SET      name, member..., with THRU expanding ranges

Mesh lines (GRID, CHEXA, CPENTA, CPYRAM, CTETRA, CQUAD4, CTRIA3) are
counted but not decoded. Anything else is counted as unparsed and
never fails the file.
`

const topicSteps = `ANALYSIS STEPS

SUBCASE, STGCONF and GEOPARM records sharing a step id describe one
analysis step: its case control, its staged-construction slot and its
geometric settings. mecheck merges them into a single step per id,
listed in the order the id first appears in the file.

Duplicates are not an error: if two records of the same family share a
step id, the later one in the file wins and a warning records the
overwrite. The same applies when both SUBCASE and STGCONF name an
NLPARM selector: the later record decides the step's effective
nonlinear control set.
`

const topicRefs = `CROSS REFERENCES

Records point at each other by id, and forward references are legal,
so resolution runs after the whole file is decoded.

In-file namespaces — properties to materials, step LOAD/SPC/NLPARM
selectors, load-combination terms — must find their target in the
file. A miss marks the reference dangling and records a warning; the
owning record stays in the model so the viewer can flag it.

Mesh regions are different: SPC targets and PLOAD4 target sets may
name regions owned by the companion mesh file. Numeric targets and
names matching an in-file SET resolve normally; other names are marked
external, which is not a warning.
`

const topicReport = `PARSE REPORT

The parse never stops for a bad record. Every problem lands in the
report:

  structural errors   bad lines the tokenizer skipped
  decode errors       records whose fields failed checks; the record
                      is omitted, the rest of the file still loads
  warnings            duplicate-fragment overwrites, dangling
                      references, orphan annotations, count mismatches
  unparsed counts     per-keyword tally of unknown records

Only two inputs are fatal: an empty file, and a file that yields no
records at all. Everything else produces a model plus this report.

Each report carries a run id so an exported model can be matched to
the check output it came from.
`
