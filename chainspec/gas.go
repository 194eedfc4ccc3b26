package chainspec

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// scalarOpcodes are the instructions charged a fixed cost per invocation.
var scalarOpcodes = []string{
	"add", "addi", "aloc", "and", "andi", "bal", "bhei", "bhsh", "burn",
	"cb", "cfei", "cfsi", "croo", "div", "divi", "ecr", "eq", "exp", "expi",
	"flag", "gm", "gt", "gtf", "ji", "jmp", "jne", "jnei", "jnzi", "k256",
	"lb", "log", "lt", "lw", "mint", "mlog", "mod", "modi", "move", "movi",
	"mroo", "mul", "muli", "noop", "not", "or", "ori", "ret", "rvrt", "s256",
	"sb", "sll", "slli", "srl", "srli", "srw", "sub", "subi", "sw", "sww",
	"time", "tr", "tro",
}

// dependentOpcodes are the instructions whose cost scales with a size
// operand: memory copy/compare, contract loading, message output and the
// like. Their schedule entries carry a base cost plus a per-unit cost.
var dependentOpcodes = []string{
	"call", "ccp", "csiz", "ldc", "logd", "mcl", "mcli", "mcp", "mcpi",
	"meq", "retd", "scwq", "smo", "srwq", "swwq",
}

// opcodeSet indexes every opcode the virtual machine defines. The gas-cost
// schedule must cover this set exactly: entries outside it are rejected at
// decode, holes in it are rejected at validation.
var opcodeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(scalarOpcodes)+len(dependentOpcodes))
	for _, op := range scalarOpcodes {
		set[op] = struct{}{}
	}
	for _, op := range dependentOpcodes {
		set[op] = struct{}{}
	}
	return set
}()

// OpcodeCount is the size of the virtual machine's instruction set, and
// therefore the exact number of entries a complete gas-cost schedule has.
var OpcodeCount = len(opcodeSet)

// GasCostEntry prices one opcode. It is a closed two-variant union: either a
// scalar cost charged per invocation, or a dependent cost charged as
// base + dep_per_unit * operand size. The variant is fixed at construction
// (or decode) time.
type GasCostEntry struct {
	Base       uint64
	DepPerUnit uint64
	dependent  bool
}

// ScalarCost builds a fixed-cost entry.
func ScalarCost(cost uint64) GasCostEntry {
	return GasCostEntry{Base: cost}
}

// DependentCost builds a size-dependent entry.
func DependentCost(base, depPerUnit uint64) GasCostEntry {
	return GasCostEntry{Base: base, DepPerUnit: depPerUnit, dependent: true}
}

// Dependent reports whether the entry's cost scales with an operand size.
func (e GasCostEntry) Dependent() bool { return e.dependent }

// Cost returns the effective gas charge for an operand of size n (in the
// opcode's natural unit). Scalar entries ignore n. Overflow saturates at the
// numeric maximum instead of wrapping: an absurdly large charge must stay
// absurdly large.
func (e GasCostEntry) Cost(n uint64) uint64 {
	if !e.dependent {
		return e.Base
	}
	scaled := e.DepPerUnit * n
	if e.DepPerUnit != 0 && scaled/e.DepPerUnit != n {
		return math.MaxUint64
	}
	total := e.Base + scaled
	if total < e.Base {
		return math.MaxUint64
	}
	return total
}

// MarshalJSON writes a scalar entry as a bare integer and a dependent entry
// as a {base, dep_per_unit} object, matching the document format.
func (e GasCostEntry) MarshalJSON() ([]byte, error) {
	if !e.dependent {
		return json.Marshal(e.Base)
	}
	return json.Marshal(struct {
		Base       uint64 `json:"base"`
		DepPerUnit uint64 `json:"dep_per_unit"`
	}{e.Base, e.DepPerUnit})
}

// UnmarshalJSON discriminates the two entry shapes: a bare unsigned integer
// decodes as a scalar cost, an object decodes as a dependent cost and must
// carry exactly the base and dep_per_unit fields.
func (e *GasCostEntry) UnmarshalJSON(data []byte) error {
	var scalar uint64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*e = ScalarCost(scalar)
		return nil
	}

	var dep struct {
		Base       *uint64 `json:"base"`
		DepPerUnit *uint64 `json:"dep_per_unit"`
	}
	if err := strictUnmarshal(data, &dep); err != nil {
		return errors.Wrapf(ErrStructuralParse, "gas cost entry %s: %v", data, err)
	}
	if dep.Base == nil || dep.DepPerUnit == nil {
		return errors.Wrapf(ErrStructuralParse, "gas cost entry %s: dependent cost needs both base and dep_per_unit", data)
	}
	*e = DependentCost(*dep.Base, *dep.DepPerUnit)
	return nil
}

// GasCosts is the per-opcode execution pricing table. It is built once, at
// load time, and never mutated afterwards; a validated table covers the
// instruction set totally, so post-load lookups cannot miss.
type GasCosts struct {
	entries map[string]GasCostEntry
}

// NewGasCosts builds a schedule from an entry table. The table is copied, so
// later changes to the argument do not reach the schedule. Validate decides
// whether the result is usable.
func NewGasCosts(entries map[string]GasCostEntry) GasCosts {
	cp := make(map[string]GasCostEntry, len(entries))
	for op, e := range entries {
		cp[op] = e
	}
	return GasCosts{entries: cp}
}

// CostOf returns the effective gas charge for executing op with an operand of
// size n. Asking about an opcode absent from the schedule fails with
// ErrUnknownOpcode; for a validated schedule this indicates a version
// mismatch between specification and executor and is fatal.
func (g GasCosts) CostOf(op string, n uint64) (uint64, error) {
	e, ok := g.entries[op]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownOpcode, "%q", op)
	}
	return e.Cost(n), nil
}

// Entry returns the raw schedule entry for op.
func (g GasCosts) Entry(op string) (GasCostEntry, bool) {
	e, ok := g.entries[op]
	return e, ok
}

// Len returns the number of priced opcodes.
func (g GasCosts) Len() int { return len(g.entries) }

// Validate checks the total-coverage invariant: every opcode the virtual
// machine can execute has an entry, and no entry prices an opcode outside the
// instruction set. Missing opcodes are reported in instruction-set order so
// the failure is deterministic.
func (g GasCosts) Validate() error {
	for _, ops := range [][]string{scalarOpcodes, dependentOpcodes} {
		for _, op := range ops {
			if _, ok := g.entries[op]; !ok {
				return errors.Wrapf(ErrIncompleteGasSchedule, "missing opcode %q", op)
			}
		}
	}
	for op := range g.entries {
		if _, ok := opcodeSet[op]; !ok {
			return errors.Wrapf(ErrUnknownOpcode, "%q", op)
		}
	}
	return nil
}

// Copy returns a schedule backed by its own entry table.
func (g GasCosts) Copy() GasCosts {
	return NewGasCosts(g.entries)
}

// MarshalJSON writes the opcode-to-entry mapping.
func (g GasCosts) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.entries)
}

// UnmarshalJSON reads the opcode-to-entry mapping, rejecting opcodes the
// instruction set does not define. Completeness is checked by Validate, not
// here, so a partially decoded schedule never escapes the load path.
func (g *GasCosts) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(ErrStructuralParse, "gas_costs: %v", err)
	}
	entries := make(map[string]GasCostEntry, len(raw))
	for op, body := range raw {
		if _, ok := opcodeSet[op]; !ok {
			return errors.Wrapf(ErrUnknownOpcode, "gas_costs: %q", op)
		}
		var e GasCostEntry
		if err := e.UnmarshalJSON(body); err != nil {
			return errors.WithMessagef(err, "gas_costs[%q]", op)
		}
		entries[op] = e
	}
	g.entries = entries
	return nil
}
