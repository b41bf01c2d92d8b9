package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAddress(t *testing.T) {
	a := DeriveAddress(testProgram, "voter", []byte("wallet:alice"))
	b := DeriveAddress(testProgram, "voter", []byte("wallet:alice"))
	c := DeriveAddress(testProgram, "voter", []byte("wallet:bob"))
	d := DeriveAddress(testProgram, "proposal", []byte("wallet:alice"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.True(t, a.IsDerivedFrom(testProgram))
	assert.False(t, Address("wallet:alice").IsDerivedFrom(testProgram))
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainContract, Address("contract:vote_dao").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:treasury").Domain())
	assert.Equal(t, AddressDomainUser, Address("wallet:alice").Domain())
}

func TestSeedLengthPrefixPreventsCollisions(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not derive the same address
	x := DeriveAddress(testProgram, "ab", []byte("c"))
	y := DeriveAddress(testProgram, "a", []byte("bc"))
	assert.NotEqual(t, x, y)
}
