// Package primitives provides the fixed-width binary identifiers that appear in
// the chain specification document: contract/account addresses, asset ids and
// consensus public keys, plus the hex-encoded 64-bit word used for coin amounts.
//
// Every identifier has exactly one textual form: lowercase hexadecimal with an
// optional "0x" prefix, decoding to exactly the declared byte width. Anything
// else is rejected at parse time so that downstream consumers never see a
// half-valid identifier.
//
// All types are plain value types and are immutable once constructed; equality
// and ordering are byte-wise.

package primitives

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Byte widths of the fixed-size identifiers.
const (
	AddressLen   = 32 // account/contract address
	AssetIDLen   = 32 // native asset identifier
	PublicKeyLen = 32 // consensus signing key

	// wordHexDigits is the number of hex digits in a fully padded Word literal.
	wordHexDigits = 16
)

// Sentinel decode failures. Callers match these with errors.Is; the wrapped
// message carries the offending input.
var (
	// ErrMalformedHex reports input that is not valid hexadecimal.
	ErrMalformedHex = errors.New("malformed hex")

	// ErrLengthMismatch reports hex that decodes to the wrong byte width.
	ErrLengthMismatch = errors.New("hex length mismatch")
)

// DecodeHex decodes a hex string into exactly width bytes.
// The "0x" prefix is optional and letter case is not significant on input.
func DecodeHex(text string, width int) ([]byte, error) {
	s := text
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedHex, "%q", text)
	}
	if len(b) != width {
		return nil, errors.Wrapf(ErrLengthMismatch, "%q decodes to %d bytes, want %d", text, len(b), width)
	}
	return b, nil
}

// EncodeHex returns the canonical textual form of b:
// lowercase hex with a "0x" prefix. It round-trips exactly with DecodeHex.
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}

// Address identifies the owner of a genesis coin.
type Address [AddressLen]byte

// AddressFromString parses a 32-byte address from its hex form.
func AddressFromString(str string) (Address, error) {
	var a Address
	b, err := DecodeHex(str, AddressLen)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// String returns the canonical hex form of the address.
func (a Address) String() string { return EncodeHex(a[:]) }

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte { return append([]byte{}, a[:]...) }

// Cmp compares two addresses byte-wise, like bytes.Compare.
func (a Address) Cmp(other Address) int { return bytes.Compare(a[:], other[:]) }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(input []byte) error {
	res, err := AddressFromString(string(input))
	if err != nil {
		return err
	}
	*a = res
	return nil
}

// AssetID identifies a native asset. The zero value is the base asset.
type AssetID [AssetIDLen]byte

// AssetIDFromString parses a 32-byte asset id from its hex form.
func AssetIDFromString(str string) (AssetID, error) {
	var id AssetID
	b, err := DecodeHex(str, AssetIDLen)
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}

// String returns the canonical hex form of the asset id.
func (id AssetID) String() string { return EncodeHex(id[:]) }

// Bytes returns a copy of the raw asset id bytes.
func (id AssetID) Bytes() []byte { return append([]byte{}, id[:]...) }

// Cmp compares two asset ids byte-wise, like bytes.Compare.
func (id AssetID) Cmp(other AssetID) int { return bytes.Compare(id[:], other[:]) }

// MarshalText implements encoding.TextMarshaler.
func (id AssetID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AssetID) UnmarshalText(input []byte) error {
	res, err := AssetIDFromString(string(input))
	if err != nil {
		return err
	}
	*id = res
	return nil
}

// PublicKey is a consensus signing key, e.g. the block-producer key of the
// Proof-of-Authority variant.
type PublicKey [PublicKeyLen]byte

// PublicKeyFromString parses a 32-byte public key from its hex form.
func PublicKeyFromString(str string) (PublicKey, error) {
	var pk PublicKey
	b, err := DecodeHex(str, PublicKeyLen)
	if err != nil {
		return pk, err
	}
	copy(pk[:], b)
	return pk, nil
}

// String returns the canonical hex form of the public key.
func (pk PublicKey) String() string { return EncodeHex(pk[:]) }

// Bytes returns a copy of the raw key bytes.
func (pk PublicKey) Bytes() []byte { return append([]byte{}, pk[:]...) }

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) { return []byte(pk.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(input []byte) error {
	res, err := PublicKeyFromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}

// Word is an unsigned 64-bit value that travels as a hex literal.
// Unlike hexutil.Uint64 it accepts (and emits) zero-padded literals such as
// "0x0000000000989680", which is how the specification document writes coin
// amounts.
type Word uint64

// WordFromString parses a hex-encoded u64 literal. The "0x" prefix is
// optional, leading zeros are allowed, and at most 16 hex digits fit.
func WordFromString(str string) (Word, error) {
	s := str
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) == 0 {
		return 0, errors.Wrapf(ErrMalformedHex, "%q", str)
	}
	if len(s) > wordHexDigits {
		return 0, errors.Wrapf(ErrLengthMismatch, "%q has %d hex digits, at most %d fit a u64", str, len(s), wordHexDigits)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedHex, "%q", str)
	}
	return Word(v), nil
}

// String returns the fully padded hex form, e.g. "0x0000000000989680".
func (w Word) String() string { return fmt.Sprintf("0x%016x", uint64(w)) }

// Uint64 returns the numeric value.
func (w Word) Uint64() uint64 { return uint64(w) }

// MarshalText implements encoding.TextMarshaler.
func (w Word) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Word) UnmarshalText(input []byte) error {
	res, err := WordFromString(string(input))
	if err != nil {
		return err
	}
	*w = res
	return nil
}
