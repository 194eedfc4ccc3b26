package chainspec

import (
	"github.com/rony4d/go-asset-chain/inter/primitives"
)

// CoinConfig is one genesis unspent output: an amount of an asset credited to
// an owner before block 1. The amount travels as a hex-encoded u64 literal.
//
// A zero-amount coin is accepted: it is semantically valid and economically
// inert, and rejecting it would be ledger policy rather than specification
// policy.
type CoinConfig struct {
	Owner   primitives.Address `json:"owner"`
	Amount  primitives.Word    `json:"amount"`
	AssetID primitives.AssetID `json:"asset_id"`
}

// StateConfig is the genesis state: the ordered coin list that seeds the
// ledger. Order is significant — a coin's identity is its position in the
// list, so duplicate (owner, asset, amount) records stay distinct coins.
// Whether the ledger collapses duplicates is the ledger initializer's call;
// this component passes them through unchanged.
type StateConfig struct {
	Coins []CoinConfig `json:"coins"`
}

// Copy returns a state config backed by its own coin slice.
func (s StateConfig) Copy() StateConfig {
	if s.Coins == nil {
		return StateConfig{}
	}
	coins := make([]CoinConfig, len(s.Coins))
	copy(coins, s.Coins)
	return StateConfig{Coins: coins}
}
