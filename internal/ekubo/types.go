package ekubo

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PoolKey identifies a pool on the swapper contract. Field order matches the
// contract tuple encoding.
type PoolKey struct {
	Token0      common.Address
	Token1      common.Address
	Fee         *big.Int
	TickSpacing uint32
	Extension   common.Address
}

// PoolConfig is a registry record for one pool: the canonical key plus the
// default price-ratio limit applied when the caller does not override it.
// Token0 and Token1 are distinct and canonically ordered (token0 < token1 by
// byte comparison).
type PoolConfig struct {
	Token0         common.Address
	Token1         common.Address
	Fee            *big.Int
	TickSpacing    uint32
	Extension      common.Address
	SqrtRatioLimit *big.Int
}

// Key returns the pool key for this configuration.
func (c PoolConfig) Key() PoolKey {
	return PoolKey{
		Token0:      c.Token0,
		Token1:      c.Token1,
		Fee:         c.Fee,
		TickSpacing: c.TickSpacing,
		Extension:   c.Extension,
	}
}

// TokenAmount is a signed-magnitude amount as the contract encodes it.
// Sign is false for non-negative values; this client only produces sell
// amounts, so Sign is always false.
type TokenAmount struct {
	Mag  *big.Int
	Sign bool
}

// SwapOptions are the caller-supplied knobs for a swap. Amount is mandatory
// for submission; the remaining fields default as described on
// BuildSwapRequest.
type SwapOptions struct {
	Amount         *big.Int
	IsToken1       *bool
	SqrtRatioLimit *big.Int
	SkipAhead      *big.Int
}

// SwapRequest is the fully resolved structure passed to ekubo_manual_swap.
// Built fresh per call and never mutated afterwards.
type SwapRequest struct {
	PoolKey        PoolKey
	Amount         TokenAmount
	IsToken1       bool
	SqrtRatioLimit *big.Int
	SkipAhead      *big.Int
	Account        common.Address
}

// InputToken returns the token being sold, derived from the direction flag.
func (r SwapRequest) InputToken() common.Address {
	if r.IsToken1 {
		return r.PoolKey.Token1
	}
	return r.PoolKey.Token0
}

// ContractParameters mirrors the swapper contract_parameters() view.
type ContractParameters struct {
	Owner  common.Address
	Core   common.Address
	Paused bool
}

// TokenStatus mirrors the get_token_from_status_and_value(token) view.
type TokenStatus struct {
	Status uint8
	Value  *big.Int
}

// Token support states reported by the swapper contract.
const (
	TokenStatusUnknown   uint8 = 0
	TokenStatusSupported uint8 = 1
	TokenStatusDisabled  uint8 = 2
)

// Supported reports whether the contract accepts the token as swap input.
func (s TokenStatus) Supported() bool {
	return s.Status == TokenStatusSupported
}

// SwapEvent is the decoded Swapped log payload.
type SwapEvent struct {
	Account     common.Address
	Token0      common.Address
	Token1      common.Address
	Amount      *big.Int
	IsToken1    bool
	TxHash      common.Hash
	BlockNumber uint64
}
