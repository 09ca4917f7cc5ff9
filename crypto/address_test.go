package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hex(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", SHA256Hex("abc"))
}

func TestKristWalletKey(t *testing.T) {
	key := KristWalletKey("hunter2")

	assert.Equal(t, SHA256Hex("KRISTWALLEThunter2")+"-000", key)
	assert.Len(t, key, 68)
}

func TestMakeV2AddressShape(t *testing.T) {
	for _, key := range []string{"a", "hunter2", KristWalletKey("correct horse battery staple")} {
		address := MakeV2Address(key, "")

		assert.Len(t, address, AddressLength, key)
		assert.Equal(t, "k", address[:1], key)
		assert.True(t, IsV2Address(address), address)
	}
}

func TestMakeV2AddressKnownPairs(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"a", "k8juvewcui"},
		{"hunter2", "k8fdqdhr5q"},
		{KristWalletKey("hunter2"), "k52xkdsr5l"},
		{KristWalletKey("password"), "kabi8gw3cg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeV2Address(tt.key, "k"), tt.key)
	}
}

func TestMakeV2AddressDeterministic(t *testing.T) {
	key := KristWalletKey("password")

	assert.Equal(t, MakeV2Address(key, "k"), MakeV2Address(key, "k"))
	assert.NotEqual(t, MakeV2Address(key, "k"), MakeV2Address(KristWalletKey("other password"), "k"))
}

func TestHexToBase36(t *testing.T) {
	assert.Equal(t, byte('0'), hexToBase36(0))
	assert.Equal(t, byte('9'), hexToBase36(69))
	assert.Equal(t, byte('a'), hexToBase36(70))
	assert.Equal(t, byte('e'), hexToBase36(255))
}

func TestIsV2Address(t *testing.T) {
	assert.True(t, IsV2Address("kre3w0i79j"))
	assert.False(t, IsV2Address("kre3w0i79"))
	assert.False(t, IsV2Address("xre3w0i79j"))
	assert.False(t, IsV2Address("kRE3W0I79J"))
	assert.False(t, IsV2Address(""))
}
