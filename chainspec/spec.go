// Package chainspec defines the chain specification: the declarative
// description of a network's genesis state, transaction validity limits,
// per-opcode gas pricing and consensus configuration.
//
// The package provides:
//   - GasCosts: the per-opcode execution pricing table (scalar and
//     size-dependent entries)
//   - TxParameters: the numeric ceilings that define a well-formed transaction
//   - StateConfig: the genesis coin allocations that seed the ledger
//   - ConsensusConfig: the closed union of consensus mechanism variants
//   - ChainSpec: the aggregate composing the above, with load-time validation
//
// A specification is loaded exactly once, at process startup, from a single
// serialized JSON document. Load is all-or-nothing: either every structural
// and semantic check passes and an internally consistent ChainSpec is
// returned, or the whole load fails and nothing is surfaced. The returned
// value is treated as immutable and may be read concurrently without
// synchronization; downstream subsystems (VM executor, mempool validator,
// consensus engine) receive it by reference at their construction time and
// never re-validate. Reconfiguration means loading a fresh specification and
// swapping the shared reference (see Store), never editing in place.
package chainspec

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// ChainSpec is the validated root configuration object for one network
// instance. Field names mirror the serialized document.
//
// The struct is exported for decoding and inspection, but by contract it is
// read-only after a successful Load (use Copy for a mutable derivative, as
// tests do when building negative fixtures).
type ChainSpec struct {
	ChainName     string          `json:"chain_name"`
	BlockGasLimit uint64          `json:"block_gas_limit"`
	InitialState  StateConfig     `json:"initial_state"`
	TxParameters  TxParameters    `json:"transaction_parameters"`
	GasCosts      GasCosts        `json:"gas_costs"`
	Consensus     ConsensusConfig `json:"consensus"`
}

// Load decodes and validates a serialized chain specification.
func Load(data []byte) (*ChainSpec, error) {
	return LoadReader(bytes.NewReader(data))
}

// LoadReader decodes and validates a chain specification from r.
//
// The load runs in three stages, aborting entirely on the first failure:
// structural decode (unknown document fields are rejected), per-component
// validation, then the cross-component checks owned by Validate. A nil spec
// is returned on any failure — there is no partially applied state.
func LoadReader(r io.Reader) (*ChainSpec, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var spec ChainSpec
	if err := dec.Decode(&spec); err != nil {
		// Component unmarshalers already classify their own failures;
		// everything else is a defect of the document itself.
		if isLoadSentinel(err) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrStructuralParse, "%v", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadFile decodes and validates the chain specification at path.
func LoadFile(path string) (*ChainSpec, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Validate runs the per-component and cross-component checks that make a
// decoded specification safe to hand to the execution engine:
//
//  1. transaction parameters fit the widths the wire format reserves;
//  2. the gas-cost schedule covers the instruction set totally, so the
//     executor can never hit a missing entry at runtime;
//  3. the consensus variant is one this binary implements.
//
// Any 64-bit chain id is accepted for signature domain separation; an
// explicit 0 is a configured id, distinct from "unspecified" (a strict decode
// means the field was present).
func (s *ChainSpec) Validate() error {
	if err := s.TxParameters.Validate(); err != nil {
		return err
	}
	if err := s.GasCosts.Validate(); err != nil {
		return err
	}
	if err := s.Consensus.Validate(); err != nil {
		return err
	}
	return nil
}

// Copy creates a deep copy of the specification. The coin list, the gas
// table and the consensus body are reference types, so a plain assignment
// would share state with the original.
func (s *ChainSpec) Copy() *ChainSpec {
	cp := *s
	cp.InitialState = s.InitialState.Copy()
	cp.GasCosts = s.GasCosts.Copy()
	cp.Consensus = s.Consensus.Copy()
	return &cp
}

// String returns a JSON representation for debugging and logging.
func (s *ChainSpec) String() string {
	b, _ := json.Marshal(s)
	return string(b)
}

// strictUnmarshal decodes data into v, rejecting unknown fields. It is the
// single decode path for nested document objects, so every component gets
// the same strictness.
func strictUnmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
