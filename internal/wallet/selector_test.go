package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_KnownSignatures(t *testing.T) {
	assert.Equal(t, [4]byte{0x18, 0x3f, 0xf0, 0x85}, Selector("checkIn()"))
	assert.Equal(t, [4]byte{0xa9, 0x05, 0x9c, 0xbb}, Selector("transfer(address,uint256)"))
	assert.Equal(t, [4]byte{0x4e, 0x71, 0xd9, 0x2d}, Selector("claim()"))
}

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("checkIn()")
	require.NoError(t, err)
	assert.Equal(t, Selector("checkIn()"), sel)

	sel, err = ParseSelector("0x183ff085")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x18, 0x3f, 0xf0, 0x85}, sel)

	_, err = ParseSelector("0x1234")
	assert.Error(t, err)

	_, err = ParseSelector("0xzzzzzzzz")
	assert.Error(t, err)
}

func TestClaimTx(t *testing.T) {
	tx := ClaimTx(testAddress, DefaultContract, Selector(DefaultClaimSignature))

	assert.Equal(t, testAddress, tx.From)
	assert.Equal(t, DefaultContract, tx.To)
	assert.Equal(t, "0x183ff085", tx.Data)
	assert.Equal(t, "0x0", tx.Value)
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(DefaultContract))
	assert.NoError(t, ValidateAddress(testAddress))
	assert.Error(t, ValidateAddress("47b93c2a0920BBe10eFc7854b8FD04a02E85d031"))
	assert.Error(t, ValidateAddress("0x1234"))
	assert.Error(t, ValidateAddress("0xZZ93c2a0920BBe10eFc7854b8FD04a02E85d031"))
}
