package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kristkit/krist/crypto"
	"github.com/kristkit/krist/logx"
	"github.com/tyler-smith/go-bip39"
)

const (
	vaultFile = "wallet.vault"

	// MnemonicEntropyBits gives a 24-word recovery phrase
	MnemonicEntropyBits = 256
)

// ErrNoWallet is returned when no vault has been created yet
var ErrNoWallet = errors.New("no wallet found")

// Manager handles the local Krist wallet. The private key only exists in
// plaintext for the duration of a call that asks for it.
type Manager struct {
	vaultPath string
	vault     *crypto.Vault
	mu        sync.RWMutex
}

// NewManager creates a wallet manager storing its vault in dir
func NewManager(dir string) *Manager {
	return &Manager{
		vaultPath: filepath.Join(dir, vaultFile),
	}
}

// Path returns the location of the vault file
func (m *Manager) Path() string {
	return m.vaultPath
}

// Initialize creates a new wallet with a fresh mnemonic. The mnemonic is
// used as the KristWallet password and is returned for one-time display.
func (m *Manager) Initialize(password string) (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	if err := m.ImportFromMnemonic(mnemonic, password); err != nil {
		return "", err
	}
	return mnemonic, nil
}

// ImportFromMnemonic imports a wallet from an existing recovery phrase
func (m *Manager) ImportFromMnemonic(mnemonic, password string) error {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return fmt.Errorf("invalid mnemonic")
	}

	return m.store(crypto.VaultData{
		PrivateKey: crypto.KristWalletKey(mnemonic),
		Mnemonic:   mnemonic,
	}, password)
}

// ImportWalletPassword imports a wallet from a KristWallet-style password
func (m *Manager) ImportWalletPassword(walletPassword, password string) error {
	if walletPassword == "" {
		return fmt.Errorf("wallet password is empty")
	}
	return m.store(crypto.VaultData{PrivateKey: crypto.KristWalletKey(walletPassword)}, password)
}

// ImportPrivateKey imports a raw private key
func (m *Manager) ImportPrivateKey(privateKey, password string) error {
	privateKey = strings.TrimSpace(privateKey)
	if privateKey == "" {
		return fmt.Errorf("private key is empty")
	}
	return m.store(crypto.VaultData{PrivateKey: privateKey}, password)
}

func (m *Manager) store(data crypto.VaultData, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.vaultExists() {
		return fmt.Errorf("wallet already exists at %s", m.vaultPath)
	}

	vault, err := crypto.NewVault(data, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(m.vaultPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := m.saveVault(vault); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	m.vault = vault
	return nil
}

// Address returns the wallet's v2 address without unlocking it
func (m *Manager) Address() (string, error) {
	vault, err := m.getVault()
	if err != nil {
		return "", err
	}
	return vault.Address, nil
}

// PrivateKey decrypts and returns the private key
func (m *Manager) PrivateKey(password string) (string, error) {
	data, err := m.open(password)
	if err != nil {
		return "", err
	}
	return data.PrivateKey, nil
}

// Mnemonic decrypts and returns the recovery phrase, if the wallet has one
func (m *Manager) Mnemonic(password string) (string, error) {
	data, err := m.open(password)
	if err != nil {
		return "", err
	}
	if data.Mnemonic == "" {
		return "", fmt.Errorf("wallet was imported from a private key and has no recovery phrase")
	}
	return data.Mnemonic, nil
}

func (m *Manager) open(password string) (*crypto.VaultData, error) {
	vault, err := m.getVault()
	if err != nil {
		return nil, err
	}

	data, err := vault.Decrypt(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password")
	}
	return data, nil
}

func (m *Manager) getVault() (*crypto.Vault, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.vault != nil {
		return m.vault, nil
	}
	if !m.vaultExists() {
		return nil, ErrNoWallet
	}

	vault, err := m.loadVault()
	if err != nil {
		return nil, fmt.Errorf("failed to load vault: %w", err)
	}
	m.vault = vault
	return vault, nil
}

// saveVault saves the vault to disk
func (m *Manager) saveVault(vault *crypto.Vault) error {
	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	if err := os.WriteFile(m.vaultPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}

	logx.Info("wallet", "vault for ", vault.Address, " written to ", m.vaultPath)
	return nil
}

// loadVault loads the vault from disk
func (m *Manager) loadVault() (*crypto.Vault, error) {
	data, err := os.ReadFile(m.vaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}

	return &vault, nil
}

// VaultExists checks if a vault file exists
func (m *Manager) VaultExists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vaultExists()
}

func (m *Manager) vaultExists() bool {
	_, err := os.Stat(m.vaultPath)
	return err == nil
}
