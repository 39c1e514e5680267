package queue

import (
	"strconv"

	mxecall "github.com/wippyai/mxe-call"
	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/errors"
)

// Accounts is what a caller's queue-computation account set must expose.
type Accounts interface {
	CompDefOffset() uint32
	MXEProgram() mxecall.Pubkey
	SignerBump() uint8
	Payer() mxecall.Pubkey
}

// StaticAccounts is an Accounts backed by plain fields.
type StaticAccounts struct {
	CompDef  uint32
	Program  mxecall.Pubkey
	Bump     uint8
	PayerKey mxecall.Pubkey
}

func (a StaticAccounts) CompDefOffset() uint32      { return a.CompDef }
func (a StaticAccounts) MXEProgram() mxecall.Pubkey { return a.Program }
func (a StaticAccounts) SignerBump() uint8          { return a.Bump }
func (a StaticAccounts) Payer() mxecall.Pubkey      { return a.PayerKey }

// CallbackAccount is an extra account passed to a callback instruction.
type CallbackAccount struct {
	Key        mxecall.Pubkey
	IsWritable bool
}

// CallbackInstruction is invoked by the network when the computation
// resolves.
type CallbackInstruction struct {
	ProgramID     mxecall.Pubkey
	Discriminator []byte
	Accounts      []CallbackAccount
}

// Request is one validated queue-computation call.
type Request struct {
	ComputationOffset uint64
	CompDefOffset     uint32
	Args              []computation.Argument
	MXEProgram        mxecall.Pubkey
	Payer             mxecall.Pubkey
	CallbackURL       *string
	Callbacks         []CallbackInstruction
	// SignerSeeds are the seeds the MXE program signs the call with.
	SignerSeeds [][]byte
}

// MarshalBinary encodes the request for a Dispatcher. The layout belongs to
// this library: it carries only the fields a Request holds and is not the
// network program's instruction data, which also takes a cluster override
// and fee fields that the dispatcher fills in. Payer and SignerSeeds are
// not encoded; they travel as transaction accounts and signatures.
func (r *Request) MarshalBinary() ([]byte, error) {
	e := encoder{buf: make([]byte, 0, 64+len(r.Args)*40)}
	e.u64(r.ComputationOffset)
	e.u32(r.CompDefOffset)

	e.u32(uint32(len(r.Args)))
	for i, arg := range r.Args {
		if err := e.argument(arg); err != nil {
			if ee, ok := err.(*errors.Error); ok {
				ee.Path = append([]string{"args", strconv.Itoa(i)}, ee.Path...)
			}
			return nil, err
		}
	}

	e.pubkey(r.MXEProgram)

	if r.CallbackURL == nil {
		e.u8(0)
	} else {
		e.u8(1)
		e.str(*r.CallbackURL)
	}

	e.u32(uint32(len(r.Callbacks)))
	for _, cb := range r.Callbacks {
		e.pubkey(cb.ProgramID)
		e.bytes(cb.Discriminator)
		e.u32(uint32(len(cb.Accounts)))
		for _, acc := range cb.Accounts {
			e.pubkey(acc.Key)
			e.boolean(acc.IsWritable)
		}
	}
	return e.buf, nil
}
