package mxecall

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// PubkeySize is the byte length of a ledger account address.
const PubkeySize = 32

// Pubkey is a ledger account address.
type Pubkey [PubkeySize]byte

// String returns the base58 form used by ledger tooling.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// IsZero reports whether p is the all-zero address.
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// Equal reports whether p and o are the same address.
func (p Pubkey) Equal(o Pubkey) bool {
	return bytes.Equal(p[:], o[:])
}

// MarshalText implements encoding.TextMarshaler
func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Pubkey) UnmarshalText(text []byte) error {
	key, err := ParsePubkey(string(text))
	if err != nil {
		return err
	}
	*p = key
	return nil
}

// ParsePubkey accepts a base58 address or a 0x-prefixed hex string.
func ParsePubkey(s string) (Pubkey, error) {
	var p Pubkey
	s = strings.TrimSpace(s)
	if s == "" {
		return p, errors.New("empty pubkey")
	}

	var raw []byte
	var err error
	if strings.HasPrefix(s, "0x") {
		raw, err = hex.DecodeString(s[2:])
	} else {
		raw, err = base58.Decode(s)
	}
	if err != nil {
		return p, errors.Wrapf(err, "decode pubkey %q", s)
	}
	if len(raw) != PubkeySize {
		return p, errors.Errorf("pubkey %q decodes to %d bytes, want %d", s, len(raw), PubkeySize)
	}
	copy(p[:], raw)
	return p, nil
}

// MustParsePubkey is ParsePubkey for package-level constants.
func MustParsePubkey(s string) Pubkey {
	p, err := ParsePubkey(s)
	if err != nil {
		panic(err)
	}
	return p
}
