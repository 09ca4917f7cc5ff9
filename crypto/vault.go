package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length
)

// Vault holds a private key encrypted with a password-derived key
type Vault struct {
	Address string `json:"address"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	Data    []byte `json:"data"`
}

// VaultData is the plaintext sealed inside a Vault
type VaultData struct {
	PrivateKey string `json:"privatekey"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	Version    int    `json:"version"`
}

// NewVault seals data under password. The derived v2 address is kept in
// the clear so the wallet can be inspected without unlocking it.
func NewVault(data VaultData, password string) (*Vault, error) {
	if data.PrivateKey == "" {
		return nil, fmt.Errorf("private key is empty")
	}

	// Generate random salt
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// Derive key from password
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data.Version = 1

	// Serialize vault data
	plaintext, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}

	// Generate random nonce
	nonce := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Encrypt data
	encryptedData, err := encrypt(key, nonce, plaintext)
	clearBytes(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return &Vault{
		Address: MakeV2Address(data.PrivateKey, AddressPrefix),
		Salt:    salt,
		Nonce:   nonce,
		Data:    encryptedData,
	}, nil
}

// Decrypt opens the vault with password
func (v *Vault) Decrypt(password string) (*VaultData, error) {
	// Derive key from password
	key, err := deriveKey(password, v.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	// Decrypt data
	decryptedData, err := decrypt(key, v.Nonce, v.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	defer clearBytes(decryptedData)

	// Deserialize vault data
	var vaultData VaultData
	if err := json.Unmarshal(decryptedData, &vaultData); err != nil {
		return nil, fmt.Errorf("failed to deserialize vault data: %w", err)
	}

	return &vaultData, nil
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func encrypt(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesGCM.Seal(nil, nonce, data, nil), nil
}

func decrypt(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
