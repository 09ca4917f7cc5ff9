package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultNode is the public Krist node
	DefaultNode     = "https://krist.ceriat.net"
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 10

	dirName  = ".krist"
	fileName = "config.yaml"
)

// Config represents the CLI configuration
type Config struct {
	Node     NodeConfig   `yaml:"node,omitempty"`
	Wallet   WalletConfig `yaml:"wallet,omitempty"`
	PageSize int          `yaml:"page_size,omitempty"`
}

// NodeConfig describes the Krist node to talk to
type NodeConfig struct {
	URL     string        `yaml:"url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// WalletConfig describes where the local wallet lives
type WalletConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Default returns the built-in configuration rooted at home
func Default(home string) *Config {
	return &Config{
		Node: NodeConfig{
			URL:     DefaultNode,
			Timeout: DefaultTimeout,
		},
		Wallet: WalletConfig{
			Dir: home,
		},
		PageSize: DefaultPageSize,
	}
}

// HomeDir returns the krist directory, honouring KRIST_HOME
func HomeDir() (string, error) {
	if dir := os.Getenv("KRIST_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName), nil
}

// DefaultPath returns the path of the config file
func DefaultPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fileName), nil
}

// Load loads configuration from a YAML file and environment variables
func Load(path string) (*Config, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}
	cfg := Default(home)

	if err := readFile(path, cfg); err != nil {
		return nil, err
	}

	// Override with environment variables
	cfg.loadEnv()
	cfg.fillDefaults(home)

	return cfg, nil
}

// LoadFile returns only what is written in the YAML file at path, without
// defaults or environment overrides. A missing file yields an empty Config.
// Use it to edit the file without persisting one-off overrides.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := readFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) loadEnv() {
	if node := os.Getenv("KRIST_NODE"); node != "" {
		c.Node.URL = node
	}
	if timeout := os.Getenv("KRIST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Node.Timeout = d
		} else if s, err := strconv.Atoi(timeout); err == nil {
			c.Node.Timeout = time.Duration(s) * time.Second
		}
	}
	if size := os.Getenv("KRIST_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.PageSize = n
		}
	}
}

func (c *Config) fillDefaults(home string) {
	if c.Node.URL == "" {
		c.Node.URL = DefaultNode
	}
	if c.Node.Timeout <= 0 {
		c.Node.Timeout = DefaultTimeout
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Wallet.Dir == "" {
		c.Wallet.Dir = home
	}
}
