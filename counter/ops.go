package counter

// Operation names used as tally keys. The vocabulary is fixed and
// case-sensitive; binary operations come in forward, reflected (r-) and
// in-place (i-) variants counted under distinct keys.

// Comparisons.
const (
	OpLt = "lt"
	OpLe = "le"
	OpEq = "eq"
	OpNe = "ne"
	OpGt = "gt"
	OpGe = "ge"
)

// Unary operations.
const (
	OpPos    = "pos"
	OpNeg    = "neg"
	OpAbs    = "abs"
	OpInvert = "invert"
)

// Conversions.
const (
	OpBool    = "bool"
	OpInt     = "int"
	OpFloat   = "float"
	OpComplex = "complex"
)

// Arithmetic.
const (
	OpAdd  = "add"
	OpRAdd = "radd"
	OpIAdd = "iadd"

	OpSub  = "sub"
	OpRSub = "rsub"
	OpISub = "isub"

	OpMul  = "mul"
	OpRMul = "rmul"
	OpIMul = "imul"

	OpTrueDiv  = "truediv"
	OpRTrueDiv = "rtruediv"
	OpITrueDiv = "itruediv"

	OpFloorDiv  = "floordiv"
	OpRFloorDiv = "rfloordiv"
	OpIFloorDiv = "ifloordiv"

	OpMod  = "mod"
	OpRMod = "rmod"
	OpIMod = "imod"

	OpPow  = "pow"
	OpRPow = "rpow"
	OpIPow = "ipow"

	OpDivMod  = "divmod"
	OpRDivMod = "rdivmod"
)

// Bitwise.
const (
	OpAnd  = "and"
	OpRAnd = "rand"
	OpIAnd = "iand"

	OpOr  = "or"
	OpROr = "ror"
	OpIOr = "ior"

	OpXor  = "xor"
	OpRXor = "rxor"
	OpIXor = "ixor"

	OpLshift  = "lshift"
	OpRLshift = "rlshift"
	OpILshift = "ilshift"

	OpRshift  = "rshift"
	OpRRshift = "rrshift"
	OpIRshift = "irshift"
)

// OpCmp is the grouped category all six comparison keys collapse into.
const OpCmp = "cmp"
