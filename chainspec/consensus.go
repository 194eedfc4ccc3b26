package chainspec

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/rony4d/go-asset-chain/inter/primitives"
)

// Consensus variant tags as they appear in the document.
const (
	// PoAVariant marks the Proof-of-Authority variant: a single designated
	// key is authorized to produce blocks.
	PoAVariant = "PoA"
)

// PoAConfig holds the Proof-of-Authority parameters.
type PoAConfig struct {
	// SigningKey is the sole key permitted to sign produced blocks.
	SigningKey primitives.PublicKey `json:"signing_key"`
}

// ConsensusConfig is a closed tagged union over the consensus mechanisms this
// binary implements. On the wire it is a single-key object whose key names
// the variant:
//
//	"consensus": {"PoA": {"signing_key": "0x…"}}
//
// Adding a mechanism means adding a variant case here; an unrecognized tag is
// a hard load failure, never a silently-ignored default, because running the
// wrong consensus is a safety violation. The consensus engine reads this once
// at startup — key rotation happens by loading a new specification, not by
// mutating this one.
type ConsensusConfig struct {
	Variant string
	PoA     *PoAConfig
}

// PoAConsensus builds the Proof-of-Authority variant around a signing key.
func PoAConsensus(signingKey primitives.PublicKey) ConsensusConfig {
	return ConsensusConfig{
		Variant: PoAVariant,
		PoA:     &PoAConfig{SigningKey: signingKey},
	}
}

// IsPoA reports whether the Proof-of-Authority variant is configured.
func (c ConsensusConfig) IsPoA() bool { return c.Variant == PoAVariant && c.PoA != nil }

// Validate checks that a known variant is configured and its body is present.
func (c ConsensusConfig) Validate() error {
	switch c.Variant {
	case PoAVariant:
		if c.PoA == nil {
			return errors.Wrap(ErrUnknownConsensusVariant, "PoA variant without a body")
		}
		return nil
	default:
		return errors.Wrapf(ErrUnknownConsensusVariant, "%q", c.Variant)
	}
}

// Copy returns a config backed by its own variant body.
func (c ConsensusConfig) Copy() ConsensusConfig {
	cp := c
	if c.PoA != nil {
		poa := *c.PoA
		cp.PoA = &poa
	}
	return cp
}

// MarshalJSON writes the single-key variant object.
func (c ConsensusConfig) MarshalJSON() ([]byte, error) {
	switch c.Variant {
	case PoAVariant:
		if c.PoA == nil {
			return nil, errors.Wrap(ErrUnknownConsensusVariant, "PoA variant without a body")
		}
		return json.Marshal(map[string]*PoAConfig{PoAVariant: c.PoA})
	default:
		return nil, errors.Wrapf(ErrUnknownConsensusVariant, "%q", c.Variant)
	}
}

// UnmarshalJSON reads the single-key variant object. The signing key is
// parsed by hand rather than through the PublicKey text unmarshaler so that a
// structurally broken key surfaces as ErrMalformedConsensusKey with the
// underlying codec failure attached.
func (c *ConsensusConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(ErrStructuralParse, "consensus: %v", err)
	}
	if len(raw) != 1 {
		return errors.Wrapf(ErrStructuralParse, "consensus: expected exactly one variant, got %d", len(raw))
	}
	for tag, body := range raw {
		switch tag {
		case PoAVariant:
			var poa struct {
				SigningKey string `json:"signing_key"`
			}
			if err := strictUnmarshal(body, &poa); err != nil {
				return errors.Wrapf(ErrStructuralParse, "consensus PoA: %v", err)
			}
			key, err := primitives.PublicKeyFromString(poa.SigningKey)
			if err != nil {
				return errors.Wrapf(ErrMalformedConsensusKey, "PoA signing_key %q: %v", poa.SigningKey, err)
			}
			*c = PoAConsensus(key)
			return nil
		default:
			return errors.Wrapf(ErrUnknownConsensusVariant, "%q", tag)
		}
	}
	return errors.Wrap(ErrStructuralParse, "consensus: empty object")
}
