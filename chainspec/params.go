package chainspec

import (
	"github.com/pkg/errors"
)

// MaxTxCount is the highest value the transaction wire format can store in a
// count field: inputs, outputs and witnesses are counted in a single byte.
const MaxTxCount = 255

// TxParameters holds the numeric ceilings that define a well-formed
// transaction. The record is flat and immutable after load; the transaction
// validator reads it to reject oversized transactions before execution.
//
// ChainID deserves a note: it feeds signature domain separation, so changing
// it after genesis creates a distinct network rather than reconfiguring the
// existing one. An explicit value of 0 is a configured id like any other.
type TxParameters struct {
	ContractMaxSize        uint64 `json:"contract_max_size"`
	MaxInputs              uint64 `json:"max_inputs"`
	MaxOutputs             uint64 `json:"max_outputs"`
	MaxWitnesses           uint64 `json:"max_witnesses"`
	MaxGasPerTx            uint64 `json:"max_gas_per_tx"`
	MaxScriptLength        uint64 `json:"max_script_length"`
	MaxScriptDataLength    uint64 `json:"max_script_data_length"`
	MaxStorageSlots        uint64 `json:"max_storage_slots"`
	MaxPredicateLength     uint64 `json:"max_predicate_length"`
	MaxPredicateDataLength uint64 `json:"max_predicate_data_length"`
	GasPriceFactor         uint64 `json:"gas_price_factor"`
	GasPerByte             uint64 `json:"gas_per_byte"`
	MaxMessageDataLength   uint64 `json:"max_message_data_length"`
	ChainID                uint64 `json:"chain_id"`
}

// Validate checks the range-fit rule: each max-count field must fit the
// one-byte width the wire format allocates for the corresponding count.
// The failing field is named in the error.
func (p TxParameters) Validate() error {
	counts := []struct {
		name  string
		value uint64
	}{
		{"max_inputs", p.MaxInputs},
		{"max_outputs", p.MaxOutputs},
		{"max_witnesses", p.MaxWitnesses},
	}
	for _, c := range counts {
		if c.value > MaxTxCount {
			return errors.Wrapf(ErrParameterOutOfRange, "%s is %d, wire format fits at most %d", c.name, c.value, MaxTxCount)
		}
	}
	return nil
}
