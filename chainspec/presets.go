package chainspec

import (
	"github.com/rony4d/go-asset-chain/inter/primitives"
)

// localTestnetSigningKey is the well-known development block-producer key.
// It must never appear in a production specification.
const localTestnetSigningKey = "0x22ec92c3105c942a6640bdc4e4907286ec4728e8cfc0d8ac59aad4d8e1bcaefb"

// localTestnetOwners are the funded development accounts.
var localTestnetOwners = []string{
	"0x5d99ee966b42cd8fc7bdd1364b389153a9e78b42b7d4a691470674e817888d4e",
	"0x9da7247e1d63d30d69f136f0f8654ee8340362c785b50f0a60513c7edbf5bb7c",
	"0xe10f526b192593793b7a1559a391445faba82a1d669e3eb2dcd17f9c121b24b1",
	"0xb5566df884bee4e458151c2fe4082c8af38095cc442c61e0dc83a371d70d88fd",
	"0x48b136f52ec9d92b7d524b125b0f25cd1f4bd744b3e0d0c50b9e8b22e4e4e7f5",
}

// localTestnetCoinAmount is 10,000,000 base units per development account.
const localTestnetCoinAmount = 10000000

// LocalTestnetSpec returns the development network specification: five funded
// accounts holding the base asset, permissive transaction limits, the default
// gas schedule and a single well-known Proof-of-Authority key. It is the
// programmatic twin of testdata/local_testnet.json and is valid by
// construction.
func LocalTestnetSpec() *ChainSpec {
	coins := make([]CoinConfig, 0, len(localTestnetOwners))
	for _, owner := range localTestnetOwners {
		coins = append(coins, CoinConfig{
			Owner:   mustAddress(owner),
			Amount:  primitives.Word(localTestnetCoinAmount),
			AssetID: primitives.AssetID{}, // base asset
		})
	}
	return &ChainSpec{
		ChainName:     "local_testnet",
		BlockGasLimit: 1000000000,
		InitialState:  StateConfig{Coins: coins},
		TxParameters:  DefaultTxParameters(),
		GasCosts:      DefaultGasCosts(),
		Consensus:     PoAConsensus(mustPublicKey(localTestnetSigningKey)),
	}
}

// DefaultTxParameters returns the development transaction limits. Count
// fields sit exactly at the one-byte wire-format ceiling.
func DefaultTxParameters() TxParameters {
	return TxParameters{
		ContractMaxSize:        16 * 1024 * 1024, // 16 MiB of bytecode
		MaxInputs:              255,
		MaxOutputs:             255,
		MaxWitnesses:           255,
		MaxGasPerTx:            100000000,
		MaxScriptLength:        1024 * 1024,
		MaxScriptDataLength:    1024 * 1024,
		MaxStorageSlots:        255,
		MaxPredicateLength:     1024 * 1024,
		MaxPredicateDataLength: 1024 * 1024,
		GasPriceFactor:         1000000000,
		GasPerByte:             4,
		MaxMessageDataLength:   1024 * 1024,
		ChainID:                0,
	}
}

// DefaultGasCosts returns the development gas schedule. It covers the entire
// instruction set: cheap ALU and control-flow opcodes cost a unit, state and
// cryptography opcodes carry benchmark-derived scalar costs, and the
// size-dependent opcodes (memory traffic, contract loading, message output)
// carry base plus per-unit costs.
func DefaultGasCosts() GasCosts {
	return NewGasCosts(map[string]GasCostEntry{
		// ALU
		"add":  ScalarCost(1),
		"addi": ScalarCost(1),
		"and":  ScalarCost(1),
		"andi": ScalarCost(1),
		"div":  ScalarCost(1),
		"divi": ScalarCost(1),
		"eq":   ScalarCost(1),
		"exp":  ScalarCost(1),
		"expi": ScalarCost(1),
		"gt":   ScalarCost(1),
		"lt":   ScalarCost(1),
		"mlog": ScalarCost(1),
		"mod":  ScalarCost(1),
		"modi": ScalarCost(1),
		"move": ScalarCost(1),
		"movi": ScalarCost(1),
		"mroo": ScalarCost(2),
		"mul":  ScalarCost(1),
		"muli": ScalarCost(1),
		"noop": ScalarCost(1),
		"not":  ScalarCost(1),
		"or":   ScalarCost(1),
		"ori":  ScalarCost(1),
		"sll":  ScalarCost(1),
		"slli": ScalarCost(1),
		"srl":  ScalarCost(1),
		"srli": ScalarCost(1),
		"sub":  ScalarCost(1),
		"subi": ScalarCost(1),

		// Control flow and metadata
		"flag": ScalarCost(1),
		"gm":   ScalarCost(1),
		"gtf":  ScalarCost(1),
		"ji":   ScalarCost(1),
		"jmp":  ScalarCost(1),
		"jne":  ScalarCost(1),
		"jnei": ScalarCost(1),
		"jnzi": ScalarCost(1),
		"ret":  ScalarCost(13),
		"rvrt": ScalarCost(13),

		// Memory and stack
		"aloc": ScalarCost(1),
		"cfei": ScalarCost(1),
		"cfsi": ScalarCost(1),
		"lb":   ScalarCost(1),
		"lw":   ScalarCost(1),
		"sb":   ScalarCost(1),
		"sw":   ScalarCost(1),

		// Block and chain introspection
		"bhei": ScalarCost(1),
		"bhsh": ScalarCost(1),
		"cb":   ScalarCost(1),
		"time": ScalarCost(1),

		// Cryptography
		"ecr":  ScalarCost(1703),
		"k256": ScalarCost(11),
		"s256": ScalarCost(2),

		// State and value transfer
		"bal":  ScalarCost(13),
		"burn": ScalarCost(132),
		"croo": ScalarCost(16),
		"log":  ScalarCost(9),
		"mint": ScalarCost(135),
		"srw":  ScalarCost(12),
		"sww":  ScalarCost(43),
		"tr":   ScalarCost(105),
		"tro":  ScalarCost(60),

		// Size-dependent opcodes
		"call": DependentCost(144, 214),
		"ccp":  DependentCost(15, 103),
		"csiz": DependentCost(17, 790),
		"ldc":  DependentCost(15, 272),
		"logd": DependentCost(26, 64),
		"mcl":  DependentCost(1, 3333),
		"mcli": DependentCost(1, 3333),
		"mcp":  DependentCost(1, 1235),
		"mcpi": DependentCost(3, 1235),
		"meq":  DependentCost(1, 2500),
		"retd": DependentCost(29, 62),
		"scwq": DependentCost(13, 5),
		"smo":  DependentCost(209, 55),
		"srwq": DependentCost(47, 5),
		"swwq": DependentCost(44, 5),
	})
}

// mustAddress parses a preset address literal; literals are fixed at compile
// time, so a failure is a programmer error.
func mustAddress(s string) primitives.Address {
	a, err := primitives.AddressFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func mustPublicKey(s string) primitives.PublicKey {
	pk, err := primitives.PublicKeyFromString(s)
	if err != nil {
		panic(err)
	}
	return pk
}
