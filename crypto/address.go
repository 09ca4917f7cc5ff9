package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

const (
	// AddressPrefix is the leading character of every v2 address
	AddressPrefix = "k"
	AddressLength = 10

	walletSalt   = "KRISTWALLET"
	walletSuffix = "-000"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of s
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// KristWalletKey turns a wallet password into a private key using the
// KristWallet format.
func KristWalletKey(password string) string {
	return SHA256Hex(walletSalt+password) + walletSuffix
}

// MakeV2Address derives the v2 address owned by privateKey
func MakeV2Address(privateKey, prefix string) string {
	if prefix == "" {
		prefix = AddressPrefix
	}

	var chars [9]string
	hash := SHA256Hex(SHA256Hex(privateKey))

	for i := 0; i < len(chars); i++ {
		chars[i] = hash[:2]
		hash = SHA256Hex(SHA256Hex(hash))
	}

	address := prefix
	for i := 0; i < len(chars); {
		n, _ := strconv.ParseUint(hash[2*i:2*i+2], 16, 8)
		index := n % 9
		if chars[index] == "" {
			hash = SHA256Hex(hash)
			continue
		}

		b, _ := strconv.ParseUint(chars[index], 16, 8)
		address += string(hexToBase36(b))
		chars[index] = ""
		i++
	}

	return address
}

// hexToBase36 maps a byte onto [0-9a-z], folding overflow onto 'e'
func hexToBase36(input uint64) byte {
	b := 48 + input/7
	switch {
	case b+39 > 122:
		return 101
	case b > 57:
		return byte(b + 39)
	default:
		return byte(b)
	}
}

// IsV2Address reports whether s has the shape of a v2 address
func IsV2Address(s string) bool {
	if len(s) != AddressLength || s[:1] != AddressPrefix {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
