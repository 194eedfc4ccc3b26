package chainspec

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-asset-chain/inter/primitives"
)

// Load-time failure classes. Every validation failure wraps exactly one of
// these sentinels with a message naming the offending field, opcode or
// variant, so hand-edited documents stay debuggable. Callers match them with
// errors.Is; once Load has returned a specification none of these can occur
// again.
var (
	// ErrMalformedHex and ErrLengthMismatch are produced by the primitive
	// codec and re-exported here so a loader can match every failure class
	// from one package.
	ErrMalformedHex   = primitives.ErrMalformedHex
	ErrLengthMismatch = primitives.ErrLengthMismatch

	// ErrUnknownOpcode reports a gas-cost entry for an opcode the virtual
	// machine's instruction set does not define.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrIncompleteGasSchedule reports a gas-cost table that is missing an
	// opcode the virtual machine can execute.
	ErrIncompleteGasSchedule = errors.New("incomplete gas schedule")

	// ErrParameterOutOfRange reports a transaction parameter that does not
	// fit the width the wire format reserves for it.
	ErrParameterOutOfRange = errors.New("transaction parameter out of range")

	// ErrMalformedConsensusKey reports a consensus signing key that is not a
	// structurally valid public key.
	ErrMalformedConsensusKey = errors.New("malformed consensus signing key")

	// ErrUnknownConsensusVariant reports a consensus variant tag this binary
	// does not implement. Misidentifying consensus is a safety violation, so
	// unknown variants are never skipped.
	ErrUnknownConsensusVariant = errors.New("unknown consensus variant")

	// ErrStructuralParse wraps any lower-level decode failure of the
	// serialized document itself (bad JSON, unknown fields, wrong types).
	ErrStructuralParse = errors.New("malformed chain specification document")
)

// loadSentinels are the failure classes that carry their own meaning through
// the JSON decoder; anything else coming out of the decoder is structural.
var loadSentinels = []error{
	ErrMalformedHex,
	ErrLengthMismatch,
	ErrUnknownOpcode,
	ErrIncompleteGasSchedule,
	ErrParameterOutOfRange,
	ErrMalformedConsensusKey,
	ErrUnknownConsensusVariant,
}

func isLoadSentinel(err error) bool {
	for _, sentinel := range loadSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
