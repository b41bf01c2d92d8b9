package sdk

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like wallet:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to classify user/contract/system addresses.
// Example payload: sdk.Address("contract:vote_dao").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsZero reports whether the address is unset, used for not-yet-configured
// references like the treasury token account.
func (a Address) IsZero() bool {
	return a == ""
}

// DeriveAddress computes the deterministic sub-account address for a fixed
// seed string plus optional discriminator bytes under the given program
// identity. Anyone can reproduce the address offline; no chain lookup needed.
// Example payload: sdk.DeriveAddress("contract:vote_dao", "voter", []byte("wallet:alice"))
func DeriveAddress(program Address, seed string, discriminator []byte) Address {
	h := sha256.New()
	h.Write([]byte(program))
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(seed)))
	h.Write(lenBuf[:])
	h.Write([]byte(seed))
	h.Write(discriminator)
	sum := h.Sum(nil)
	return Address(string(program) + ":" + hex.EncodeToString(sum[:16]))
}

// IsDerivedFrom reports whether the address lives under the program's derived
// namespace, which is how the host decides if the program may move its funds.
func (a Address) IsDerivedFrom(program Address) bool {
	return strings.HasPrefix(a.String(), string(program)+":")
}
