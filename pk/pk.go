package pk

import (
	"github.com/google/uuid"
)

// PK uniquely identifies a sieve run.
type PK uuid.UUID

const Size = 16

func New() PK {
	return PK(uuid.New())
}

func NewFromBytes(b []byte) (PK, error) {
	uid, err := uuid.FromBytes(b)
	if err != nil {
		return PK{}, err
	}
	return PK(uid), nil
}

// Parse parses a PK from its canonical string form.
func Parse(s string) (PK, error) {
	uid, err := uuid.Parse(s)
	if err != nil {
		return PK{}, err
	}
	return PK(uid), nil
}

func (k PK) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, k[:])
	return b
}

func (k PK) String() string {
	return uuid.UUID(k).String()
}
