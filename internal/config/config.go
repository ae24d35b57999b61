package config

import (
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/units"
)

// Pool is one registry record as it appears in the config file. Numeric
// fields that exceed 64 bits (fee, sqrt ratio limit) are decimal or 0x-hex
// strings.
type Pool struct {
	Token0         string `yaml:"token0"`
	Token1         string `yaml:"token1"`
	Fee            string `yaml:"fee"`
	TickSpacing    uint32 `yaml:"tick_spacing"`
	Extension      string `yaml:"extension"`
	SqrtRatioLimit string `yaml:"sqrt_ratio_limit"`
}

// Log controls logger output and rotation.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Config holds application configuration loaded from a YAML file.
type Config struct {
	RPCURL       string `yaml:"rpc_url"`
	Account      string `yaml:"account"`
	SwapContract string `yaml:"swap_contract"`

	// MaxFeeOverride caps the fee ceiling passed with each submission,
	// in decimal ETH. Empty means no ceiling (wallet default).
	MaxFeeOverride string `yaml:"max_fee_override"`

	// FallbackGasEstimate is returned by gas estimation when simulation
	// fails.
	FallbackGasEstimate string `yaml:"fallback_gas_estimate"`

	// PreflightChecks enables balance and token-support checks before
	// submission. Off by default.
	PreflightChecks bool `yaml:"preflight_checks"`

	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	Log Log `yaml:"log"`

	// Tokens maps a display symbol to a token address, for the CLI and
	// HTTP surfaces.
	Tokens map[string]string `yaml:"tokens"`

	Pools []Pool `yaml:"pools"`
}

const (
	defaultTimeout             = 5 * time.Second
	defaultListenAddr          = ":1337"
	defaultFallbackGasEstimate = "0.0005"
	defaultLogLevel            = "info"
)

// LoadFromFile reads and validates the config from a YAML file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "os.Open")
	}
	defer f.Close()

	var cfg Config
	if err = yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "yaml decode")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return errors.New("rpc_url is required")
	}
	if !common.IsHexAddress(c.Account) {
		return errors.New("account must be a hex address")
	}
	if !common.IsHexAddress(c.SwapContract) {
		return errors.New("swap_contract must be a hex address")
	}
	if c.MaxFeeOverride != "" {
		if _, err := decimal.NewFromString(c.MaxFeeOverride); err != nil {
			return errors.Wrap(err, "max_fee_override")
		}
	}

	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.FallbackGasEstimate == "" {
		c.FallbackGasEstimate = defaultFallbackGasEstimate
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}

	for symbol, addr := range c.Tokens {
		if !common.IsHexAddress(addr) {
			return errors.Errorf("token %s: invalid address %q", symbol, addr)
		}
	}
	return nil
}

// AccountAddress returns the submitting account address.
func (c *Config) AccountAddress() common.Address {
	return common.HexToAddress(c.Account)
}

// SwapContractAddress returns the swapper contract address.
func (c *Config) SwapContractAddress() common.Address {
	return common.HexToAddress(c.SwapContract)
}

// MaxFeeWei converts the decimal-ETH fee ceiling into wei, or nil when no
// ceiling is configured.
func (c *Config) MaxFeeWei() *big.Int {
	if c.MaxFeeOverride == "" {
		return nil
	}
	amount, err := decimal.NewFromString(c.MaxFeeOverride)
	if err != nil {
		return nil
	}
	return units.FormatETH(amount)
}

// PoolConfigs converts the configured pool records into registry entries.
func (c *Config) PoolConfigs() ([]ekubo.PoolConfig, error) {
	pools := make([]ekubo.PoolConfig, 0, len(c.Pools))
	for _, p := range c.Pools {
		if !common.IsHexAddress(p.Token0) || !common.IsHexAddress(p.Token1) {
			return nil, errors.Errorf("pool %s/%s: invalid token address", p.Token0, p.Token1)
		}
		extension := common.Address{}
		if p.Extension != "" {
			if !common.IsHexAddress(p.Extension) {
				return nil, errors.Errorf("pool %s/%s: invalid extension address", p.Token0, p.Token1)
			}
			extension = common.HexToAddress(p.Extension)
		}

		fee, err := parseBig(p.Fee)
		if err != nil {
			return nil, errors.Wrapf(err, "pool %s/%s: fee", p.Token0, p.Token1)
		}
		limit, err := parseBig(p.SqrtRatioLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "pool %s/%s: sqrt_ratio_limit", p.Token0, p.Token1)
		}

		pools = append(pools, ekubo.PoolConfig{
			Token0:         common.HexToAddress(p.Token0),
			Token1:         common.HexToAddress(p.Token1),
			Fee:            fee,
			TickSpacing:    p.TickSpacing,
			Extension:      extension,
			SqrtRatioLimit: limit,
		})
	}
	return pools, nil
}

// ResolveToken maps a configured symbol or a literal hex address to an
// address.
func (c *Config) ResolveToken(s string) (common.Address, error) {
	if common.IsHexAddress(s) {
		return common.HexToAddress(s), nil
	}
	for symbol, addr := range c.Tokens {
		if strings.EqualFold(symbol, s) {
			return common.HexToAddress(addr), nil
		}
	}
	return common.Address{}, errors.Errorf("unknown token %q", s)
}

func parseBig(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.New("value is required")
	}

	v := new(big.Int)
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, ok = v.SetString(s[2:], 16)
	} else {
		_, ok = v.SetString(s, 10)
	}
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	return v, nil
}
