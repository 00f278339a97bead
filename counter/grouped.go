package counter

import "github.com/samber/lo"

// families maps each grouped category to the tally keys it collapses.
// Unary keys form singleton families so they always appear in grouped
// output, even at zero.
var families = map[string][]string{
	OpCmp: {OpLt, OpLe, OpEq, OpNe, OpGt, OpGe},

	OpPos:    {OpPos},
	OpNeg:    {OpNeg},
	OpAbs:    {OpAbs},
	OpInvert: {OpInvert},

	OpAdd:      {OpAdd, OpIAdd, OpRAdd},
	OpSub:      {OpSub, OpISub, OpRSub},
	OpMul:      {OpMul, OpIMul, OpRMul},
	OpTrueDiv:  {OpTrueDiv, OpITrueDiv, OpRTrueDiv},
	OpFloorDiv: {OpFloorDiv, OpIFloorDiv, OpRFloorDiv},
	OpMod:      {OpMod, OpIMod, OpRMod},
	OpPow:      {OpPow, OpIPow, OpRPow},
	OpDivMod:   {OpDivMod, OpRDivMod},

	OpAnd:    {OpAnd, OpIAnd, OpRAnd},
	OpOr:     {OpOr, OpIOr, OpROr},
	OpXor:    {OpXor, OpIXor, OpRXor},
	OpLshift: {OpLshift, OpILshift, OpRLshift},
	OpRshift: {OpRshift, OpIRshift, OpRRshift},
}

// Grouped collapses a tally's related keys into per-family categories:
// the six comparisons sum into "cmp", and each arithmetic or bitwise
// family sums its forward, reflected and in-place keys under the forward
// name ("add" = "add"+"iadd"+"radd"). Every family key is present in the
// output, summed to zero if none of its members occurred. Keys that
// belong to no family are added into the output under their original
// name. The input is not modified.
func Grouped(t Tally) Tally {
	grouped := make(Tally, len(families))
	member := make(map[string]struct{})
	for name, keys := range families {
		grouped[name] = lo.SumBy(keys, func(k string) int { return t[k] })
		for _, k := range keys {
			member[k] = struct{}{}
		}
	}

	// Keep any keys we didn't map.
	for k, n := range t {
		if _, ok := member[k]; !ok {
			grouped[k] += n
		}
	}
	return grouped
}
