package wallet

import (
	"os"
	"strings"
	"testing"

	"github.com/kristkit/krist/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestInitialize(t *testing.T) {
	manager := NewManager(t.TempDir())
	assert.False(t, manager.VaultExists())

	mnemonic, err := manager.Initialize("password123")
	require.NoError(t, err)

	assert.Len(t, strings.Fields(mnemonic), 24)
	assert.True(t, bip39.IsMnemonicValid(mnemonic))
	assert.True(t, manager.VaultExists())

	key, err := manager.PrivateKey("password123")
	require.NoError(t, err)
	assert.Equal(t, crypto.KristWalletKey(mnemonic), key)

	address, err := manager.Address()
	require.NoError(t, err)
	assert.Equal(t, crypto.MakeV2Address(key, "k"), address)
}

func TestInitializeRefusesToOverwrite(t *testing.T) {
	manager := NewManager(t.TempDir())
	_, err := manager.Initialize("password123")
	require.NoError(t, err)

	_, err = manager.Initialize("password123")
	assert.Error(t, err)
}

func TestImportFromMnemonic(t *testing.T) {
	dir := t.TempDir()
	manager := NewManager(dir)

	require.NoError(t, manager.ImportFromMnemonic("  "+testMnemonic+"\n", "password123"))

	// a fresh manager reads the vault back from disk
	reopened := NewManager(dir)
	mnemonic, err := reopened.Mnemonic("password123")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)

	address, err := reopened.Address()
	require.NoError(t, err)
	assert.Equal(t, crypto.MakeV2Address(crypto.KristWalletKey(testMnemonic), "k"), address)
}

func TestImportFromMnemonicRejectsInvalid(t *testing.T) {
	manager := NewManager(t.TempDir())
	assert.Error(t, manager.ImportFromMnemonic("not a real phrase", "password123"))
	assert.False(t, manager.VaultExists())
}

func TestImportPrivateKey(t *testing.T) {
	manager := NewManager(t.TempDir())
	require.NoError(t, manager.ImportPrivateKey("raw-private-key", "password123"))

	key, err := manager.PrivateKey("password123")
	require.NoError(t, err)
	assert.Equal(t, "raw-private-key", key)

	_, err = manager.Mnemonic("password123")
	assert.Error(t, err)
}

func TestImportWalletPassword(t *testing.T) {
	manager := NewManager(t.TempDir())
	require.NoError(t, manager.ImportWalletPassword("my krist password", "password123"))

	key, err := manager.PrivateKey("password123")
	require.NoError(t, err)
	assert.Equal(t, crypto.KristWalletKey("my krist password"), key)
}

func TestWrongPassword(t *testing.T) {
	manager := NewManager(t.TempDir())
	require.NoError(t, manager.ImportPrivateKey("raw-private-key", "password123"))

	_, err := manager.PrivateKey("nope")
	assert.EqualError(t, err, "invalid password")
}

func TestNoWallet(t *testing.T) {
	manager := NewManager(t.TempDir())

	_, err := manager.Address()
	assert.ErrorIs(t, err, ErrNoWallet)
}

func TestVaultFileHasNoPlaintextKey(t *testing.T) {
	manager := NewManager(t.TempDir())
	require.NoError(t, manager.ImportPrivateKey("raw-private-key", "password123"))

	data, err := os.ReadFile(manager.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "raw-private-key")
}
