package queue

import (
	"encoding/binary"
	"math"

	mxecall "github.com/wippyai/mxe-call"
	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/errors"
)

// encoder appends the ledger's length-prefixed little-endian layout.
type encoder struct {
	buf []byte
}

func (e *encoder) u8(v uint8)   { e.buf = append(e.buf, v) }
func (e *encoder) u32(v uint32) { e.buf = binary.LittleEndian.AppendUint32(e.buf, v) }
func (e *encoder) u64(v uint64) { e.buf = binary.LittleEndian.AppendUint64(e.buf, v) }
func (e *encoder) raw(b []byte) { e.buf = append(e.buf, b...) }

func (e *encoder) boolean(v bool) {
	if v {
		e.u8(1)
	} else {
		e.u8(0)
	}
}

func (e *encoder) bytes(b []byte) {
	e.u32(uint32(len(b)))
	e.raw(b)
}

func (e *encoder) str(s string) {
	e.u32(uint32(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) pubkey(p mxecall.Pubkey) { e.raw(p[:]) }

// EncodeArgument appends the wire form of arg to dst: a one-byte tag equal
// to its ArgKind followed by the payload.
func EncodeArgument(dst []byte, arg computation.Argument) ([]byte, error) {
	e := encoder{buf: dst}
	if err := e.argument(arg); err != nil {
		return dst, err
	}
	return e.buf, nil
}

func (e *encoder) argument(arg computation.Argument) error {
	if arg == nil {
		return errors.InvalidInput(errors.PhaseEncode, "nil argument")
	}
	e.u8(uint8(arg.Kind()))

	switch a := arg.(type) {
	case computation.ManticoreAlgo:
		e.str(string(a))
	case computation.InputDataset:
		e.str(string(a))
	case computation.PlaintextBool:
		e.boolean(bool(a))
	case computation.PlaintextU8:
		e.u8(uint8(a))
	case computation.PlaintextU16:
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(a))
	case computation.PlaintextU32:
		e.u32(uint32(a))
	case computation.PlaintextU64:
		e.u64(uint64(a))
	case computation.PlaintextU128:
		e.u64(a.Lo)
		e.u64(a.Hi)
	case computation.PlaintextFloat:
		e.u64(math.Float64bits(float64(a)))
	case computation.EncryptedBool:
		e.raw(a[:])
	case computation.EncryptedU8:
		e.raw(a[:])
	case computation.EncryptedU16:
		e.raw(a[:])
	case computation.EncryptedU32:
		e.raw(a[:])
	case computation.EncryptedU64:
		e.raw(a[:])
	case computation.EncryptedU128:
		e.raw(a[:])
	case computation.EncryptedFloat:
		e.raw(a[:])
	case computation.ArcisPubkey:
		e.raw(a[:])
	case computation.ArcisSignature:
		e.raw(a[:])
	case computation.Account:
		e.pubkey(a.Key)
		e.u32(a.Offset)
		e.u32(a.Length)
	default:
		return errors.New(errors.PhaseEncode, errors.KindUnsupported).
			ArgType(arg.Kind().String()).
			Detail("no wire encoding").
			Build()
	}
	return nil
}

// decoder reads what encoder writes.
type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, errors.OutOfBounds(errors.PhaseParse, nil, d.pos+n, len(d.buf))
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) u8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *decoder) u64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *decoder) str() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	b, err := d.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) fixed(dst []byte) error {
	b, err := d.take(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// DecodeArgument reads one argument from the front of data and returns the
// number of bytes consumed.
func DecodeArgument(data []byte) (computation.Argument, int, error) {
	d := decoder{buf: data}
	arg, err := d.argument()
	if err != nil {
		return nil, 0, err
	}
	return arg, d.pos, nil
}

func (d *decoder) argument() (computation.Argument, error) {
	tag, err := d.u8()
	if err != nil {
		return nil, err
	}
	kind := computation.ArgKind(tag)

	switch kind {
	case computation.KindManticoreAlgo, computation.KindInputDataset:
		s, err := d.str()
		if err != nil {
			return nil, err
		}
		if kind == computation.KindManticoreAlgo {
			return computation.ManticoreAlgo(s), nil
		}
		return computation.InputDataset(s), nil
	case computation.KindPlaintextBool:
		v, err := d.u8()
		if err != nil {
			return nil, err
		}
		if v > 1 {
			return nil, errors.InvalidData(errors.PhaseParse, nil, "bool byte out of range")
		}
		return computation.PlaintextBool(v == 1), nil
	case computation.KindPlaintextU8:
		v, err := d.u8()
		return computation.PlaintextU8(v), err
	case computation.KindPlaintextU16:
		b, err := d.take(2)
		if err != nil {
			return nil, err
		}
		return computation.PlaintextU16(binary.LittleEndian.Uint16(b)), nil
	case computation.KindPlaintextU32:
		v, err := d.u32()
		return computation.PlaintextU32(v), err
	case computation.KindPlaintextU64:
		v, err := d.u64()
		return computation.PlaintextU64(v), err
	case computation.KindPlaintextU128:
		lo, err := d.u64()
		if err != nil {
			return nil, err
		}
		hi, err := d.u64()
		if err != nil {
			return nil, err
		}
		return computation.PlaintextU128{Lo: lo, Hi: hi}, nil
	case computation.KindPlaintextFloat:
		v, err := d.u64()
		return computation.PlaintextFloat(math.Float64frombits(v)), err
	case computation.KindArcisSignature:
		var sig computation.ArcisSignature
		if err := d.fixed(sig[:]); err != nil {
			return nil, err
		}
		return sig, nil
	case computation.KindAccount:
		var acc computation.Account
		if err := d.fixed(acc.Key[:]); err != nil {
			return nil, err
		}
		if acc.Offset, err = d.u32(); err != nil {
			return nil, err
		}
		if acc.Length, err = d.u32(); err != nil {
			return nil, err
		}
		return acc, nil
	}

	if kind.IsEncrypted() || kind == computation.KindArcisPubkey {
		var b [computation.CiphertextSize]byte
		if err := d.fixed(b[:]); err != nil {
			return nil, err
		}
		return computation.FromFixed32(kind, b), nil
	}

	return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
		Value(tag).
		Detail("unknown argument tag %d", tag).
		Build()
}
