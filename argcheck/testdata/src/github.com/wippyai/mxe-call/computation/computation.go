package computation

type Argument interface{ argument() }

type (
	PlaintextU8    uint8
	EncryptedU8    [32]byte
	ArcisSignature [64]byte
)

type Account struct {
	Key    [32]byte
	Offset uint32
	Length uint32
}

func (PlaintextU8) argument()    {}
func (EncryptedU8) argument()    {}
func (ArcisSignature) argument() {}
func (Account) argument()        {}

func Args(name string, args ...Argument) []Argument { return args }
