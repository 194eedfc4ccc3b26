package chainspec

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixturePath points at the serialized development network specification.
var fixturePath = filepath.Join("testdata", "local_testnet.json")

// readFixture returns the raw fixture document.
func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := ioutil.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return data
}

// mutateFixture decodes the fixture into a generic document, lets the caller
// edit it, and re-serializes it. Used to build negative fixtures without
// keeping a zoo of broken files in testdata.
func mutateFixture(t *testing.T, edit func(doc map[string]interface{})) []byte {
	t.Helper()
	var doc map[string]interface{}
	if err := json.Unmarshal(readFixture(t), &doc); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	edit(doc)
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("re-encoding fixture: %v", err)
	}
	return data
}

// TestLoadFixture is the end-to-end check: the shipped development document
// loads, and every aggregate component carries the expected values.
func TestLoadFixture(t *testing.T) {
	require := require.New(t)

	spec, err := LoadFile(fixturePath)
	require.NoError(err)

	require.Equal("local_testnet", spec.ChainName)
	require.Equal(uint64(1000000000), spec.BlockGasLimit)

	// Genesis: five coins of 10,000,000 base units each.
	require.Len(spec.InitialState.Coins, 5)
	for _, coin := range spec.InitialState.Coins {
		require.Equal(uint64(10000000), coin.Amount.Uint64())
	}

	// Gas schedule: complete, with the pinned fixture costs.
	require.Equal(OpcodeCount, spec.GasCosts.Len())
	cost, err := spec.GasCosts.CostOf("ecr", 9999)
	require.NoError(err)
	require.Equal(uint64(1703), cost)
	cost, err = spec.GasCosts.CostOf("mcp", 100)
	require.NoError(err)
	require.Equal(uint64(1+1235*100), cost)

	// Transaction parameters: chain id 0 is a configured id.
	require.Equal(uint64(0), spec.TxParameters.ChainID)
	require.Equal(uint64(255), spec.TxParameters.MaxInputs)

	// Consensus: the PoA variant with the development key.
	require.True(spec.Consensus.IsPoA())
	require.Equal(localTestnetSigningKey, spec.Consensus.PoA.SigningKey.String())
}

// TestLoadFixtureMatchesPreset verifies that the programmatic preset and the
// serialized fixture describe the same network.
func TestLoadFixtureMatchesPreset(t *testing.T) {
	require := require.New(t)

	loaded, err := LoadFile(fixturePath)
	require.NoError(err)

	preset := LocalTestnetSpec()
	require.Equal(preset.ChainName, loaded.ChainName)
	require.Equal(preset.BlockGasLimit, loaded.BlockGasLimit)
	require.Equal(preset.TxParameters, loaded.TxParameters)
	require.Equal(preset.InitialState.Coins, loaded.InitialState.Coins)
	require.Equal(preset.Consensus.PoA.SigningKey, loaded.Consensus.PoA.SigningKey)
	require.Equal(preset.GasCosts.Len(), loaded.GasCosts.Len())
}

// TestLoadFailures walks the error taxonomy: each broken document must abort
// the whole load with the right failure class, a nil spec, and a message
// naming the offender.
func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		data     func(t *testing.T) []byte
		want     error
		nameHint string // substring the error must carry
	}{
		{
			"not json at all",
			func(t *testing.T) []byte { return []byte("definitely not json") },
			ErrStructuralParse, "",
		},
		{
			"unknown top-level field",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					doc["difficulty"] = 7
				})
			},
			ErrStructuralParse, "difficulty",
		},
		{
			"missing opcode in gas schedule",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					delete(doc["gas_costs"].(map[string]interface{}), "ecr")
				})
			},
			ErrIncompleteGasSchedule, "ecr",
		},
		{
			"opcode outside the instruction set",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					doc["gas_costs"].(map[string]interface{})["warp"] = 9000
				})
			},
			ErrUnknownOpcode, "warp",
		},
		{
			"max_inputs one past the count width",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					doc["transaction_parameters"].(map[string]interface{})["max_inputs"] = 256
				})
			},
			ErrParameterOutOfRange, "max_inputs",
		},
		{
			"unknown consensus variant",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					doc["consensus"] = map[string]interface{}{
						"PoS": map[string]interface{}{"min_stake": 1},
					}
				})
			},
			ErrUnknownConsensusVariant, "PoS",
		},
		{
			"malformed consensus key",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					doc["consensus"] = map[string]interface{}{
						"PoA": map[string]interface{}{"signing_key": "0x02" + localTestnetSigningKey[2:]},
					}
				})
			},
			ErrMalformedConsensusKey, "signing_key",
		},
		{
			"malformed genesis owner",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					coins := doc["initial_state"].(map[string]interface{})["coins"].([]interface{})
					coins[0].(map[string]interface{})["owner"] = "0x1234"
				})
			},
			ErrLengthMismatch, "0x1234",
		},
		{
			"malformed coin amount",
			func(t *testing.T) []byte {
				return mutateFixture(t, func(doc map[string]interface{}) {
					coins := doc["initial_state"].(map[string]interface{})["coins"].([]interface{})
					coins[0].(map[string]interface{})["amount"] = "0xnope"
				})
			},
			ErrMalformedHex, "0xnope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Load(tt.data(t))
			if err == nil {
				t.Fatal("Load succeeded, want failure")
			}
			if spec != nil {
				t.Error("Load returned a spec alongside an error; loads must be all-or-nothing")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v, want class %v", err, tt.want)
			}
			if tt.nameHint != "" && !strings.Contains(err.Error(), tt.nameHint) {
				t.Errorf("error %q does not name %q", err, tt.nameHint)
			}
		})
	}
}

// TestLoadRepairedDocument verifies the other half of the §8 property: adding
// the missing gas entry back makes the same document load.
func TestLoadRepairedDocument(t *testing.T) {
	require := require.New(t)

	broken := mutateFixture(t, func(doc map[string]interface{}) {
		delete(doc["gas_costs"].(map[string]interface{}), "ecr")
	})
	_, err := Load(broken)
	require.Error(err)

	repaired := mutateFixture(t, func(doc map[string]interface{}) {
		delete(doc["gas_costs"].(map[string]interface{}), "ecr")
		doc["gas_costs"].(map[string]interface{})["ecr"] = 1
	})
	spec, err := Load(repaired)
	require.NoError(err)

	cost, err := spec.GasCosts.CostOf("ecr", 0)
	require.NoError(err)
	require.Equal(uint64(1), cost)
}

// TestChainSpecStringRoundTrip verifies that the debug dump is valid JSON
// that loads back into an equivalent, still-valid specification.
func TestChainSpecStringRoundTrip(t *testing.T) {
	require := require.New(t)

	spec := LocalTestnetSpec()
	back, err := Load([]byte(spec.String()))
	require.NoError(err)
	require.Equal(spec.ChainName, back.ChainName)
	require.Equal(spec.InitialState.Coins, back.InitialState.Coins)
	require.NoError(back.Validate())
}

// TestChainSpecCopy verifies that Copy detaches every reference-typed
// component.
func TestChainSpecCopy(t *testing.T) {
	require := require.New(t)

	orig := LocalTestnetSpec()
	cp := orig.Copy()

	cp.InitialState.Coins[0].Amount = 1
	cp.GasCosts.entries["ecr"] = ScalarCost(1)
	cp.Consensus.PoA.SigningKey[0] = 0xff

	require.Equal(uint64(10000000), orig.InitialState.Coins[0].Amount.Uint64())
	cost, err := orig.GasCosts.CostOf("ecr", 0)
	require.NoError(err)
	require.Equal(uint64(1703), cost)
	require.Equal(localTestnetSigningKey, orig.Consensus.PoA.SigningKey.String())
}

// TestStore verifies the publish/replace discipline for the process-wide
// specification, including concurrent readers during a swap.
func TestStore(t *testing.T) {
	require := require.New(t)

	var store Store
	require.Nil(store.Current())

	first := LocalTestnetSpec()
	store.Publish(first)
	require.Same(first, store.Current())

	// Readers only ever observe a fully validated spec, before and after a
	// swap.
	second := first.Copy()
	second.ChainName = "local_testnet_2"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				cur := store.Current()
				if cur != first && cur != second {
					t.Error("observed a specification that was never published")
					return
				}
			}
		}()
	}
	store.Publish(second)
	wg.Wait()

	require.Same(second, store.Current())
}
