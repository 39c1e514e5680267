// Package pda derives the program addresses of the accounts a confidential
// computation call touches.
//
// Addresses follow the ledger's program-derived-address scheme: SHA-256 over
// the seeds, an optional bump byte, the owning program and a fixed marker,
// rejected while the digest is a valid ed25519 point.
package pda

import (
	"crypto/sha256"
	"encoding/binary"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"

	mxecall "github.com/wippyai/mxe-call"
)

// Limits imposed by the ledger runtime on derived addresses.
const (
	MaxSeeds   = 16
	MaxSeedLen = 32
)

const marker = "ProgramDerivedAddress"

// Well-known seeds.
var (
	SeedMXE         = []byte("MXEAccount")
	SeedMempool     = []byte("Mempool")
	SeedExecpool    = []byte("Execpool")
	SeedComputation = []byte("ComputationAccount")
	SeedCompDef     = []byte("ComputationDefinitionAccount")
	SeedCluster     = []byte("Cluster")
	SeedFeePool     = []byte("FeePool")
	SeedClock       = []byte("ClockAccount")
	SeedSigner      = []byte("SignerAccount")
)

// ArciumProgram is the default computation-network program.
var ArciumProgram = mxecall.MustParsePubkey("BKck65TgoKRokMjQM3datB9oRwJ8rAj2jxPXvHXUvcL6")

// Network-wide accounts derived under ArciumProgram from a single seed.
// Deriver.Clock and Deriver.FeePool return these for the default network.
var (
	ClockAccount   = mxecall.MustParsePubkey("FHriyvoZotYiFnbUzKFjzRSb2NiaC8RPWY7jtKuKhg65")
	FeePoolAccount = mxecall.MustParsePubkey("7MGSS4iKNM4sVib7bDZDJhVqB6EcchPwVnTKenCY1jt3")
)

var (
	// ErrOnCurve is returned when seeds hash to a valid ed25519 point.
	ErrOnCurve = errors.New("derived address is on the ed25519 curve")

	// ErrNoBump is returned when no bump in 255..0 yields an off-curve address.
	ErrNoBump = errors.New("unable to find a viable bump seed")

	// ErrSeedLimit is wrapped by errors for too many or too long seeds.
	ErrSeedLimit = errors.New("seed limit exceeded")
)

// CreateProgramAddress derives the address for seeds under program.
func CreateProgramAddress(seeds [][]byte, program mxecall.Pubkey) (mxecall.Pubkey, error) {
	var addr mxecall.Pubkey
	if len(seeds) > MaxSeeds {
		return addr, errors.Wrapf(ErrSeedLimit, "%d seeds, max %d", len(seeds), MaxSeeds)
	}

	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLen {
			return addr, errors.Wrapf(ErrSeedLimit, "seed %d is %d bytes, max %d", i, len(s), MaxSeedLen)
		}
		h.Write(s)
	}
	h.Write(program[:])
	h.Write([]byte(marker))
	copy(addr[:], h.Sum(nil))

	if onCurve(addr) {
		return mxecall.Pubkey{}, ErrOnCurve
	}
	return addr, nil
}

// FindProgramAddress searches bumps from 255 down and returns the first
// off-curve address together with its bump.
func FindProgramAddress(seeds [][]byte, program mxecall.Pubkey) (mxecall.Pubkey, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return mxecall.Pubkey{}, 0, errors.Wrapf(ErrSeedLimit, "%d seeds leave no room for a bump", len(seeds))
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(withBump, program)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return mxecall.Pubkey{}, 0, errors.Wrap(err, "derive address")
		}
	}
	return mxecall.Pubkey{}, 0, ErrNoBump
}

func onCurve(p mxecall.Pubkey) bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}

// IsOnCurve reports whether p is a valid ed25519 point, which derived
// addresses never are.
func IsOnCurve(p mxecall.Pubkey) bool {
	return onCurve(p)
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
