package ekubo

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"ekuboswap/internal/apperrors"
)

type pairKey struct {
	token0 common.Address
	token1 common.Address
}

// Registry is the static mapping from a token pair to its pool configuration.
// It is built once at startup and read-only afterwards, so it is safe for
// concurrent use without locking.
type Registry struct {
	pools map[pairKey]PoolConfig
}

// NewRegistry builds a registry from pool configurations. Every record must
// be canonically ordered (token0 < token1 by byte comparison) with distinct
// tokens, and a pair may appear at most once.
func NewRegistry(pools []PoolConfig) (*Registry, error) {
	m := make(map[pairKey]PoolConfig, len(pools))
	for _, p := range pools {
		switch bytes.Compare(p.Token0.Bytes(), p.Token1.Bytes()) {
		case 0:
			return nil, errors.Errorf("pool %s/%s: token0 and token1 must be distinct", p.Token0, p.Token1)
		case 1:
			return nil, errors.Errorf("pool %s/%s: tokens are not canonically ordered", p.Token0, p.Token1)
		}
		if p.Fee == nil || p.Fee.Sign() < 0 {
			return nil, errors.Errorf("pool %s/%s: invalid fee", p.Token0, p.Token1)
		}

		key := pairKey{token0: p.Token0, token1: p.Token1}
		if _, ok := m[key]; ok {
			return nil, errors.Errorf("pool %s/%s: duplicate pair", p.Token0, p.Token1)
		}
		m[key] = p
	}
	return &Registry{pools: m}, nil
}

// Lookup resolves the pool configuration for a token pair. The argument order
// does not matter: Lookup(a, b) and Lookup(b, a) return the same record, with
// token0/token1 in the registry's canonical order. Returns ErrPoolNotFound
// when no configuration exists for the pair.
func (r *Registry) Lookup(tokenA, tokenB common.Address) (PoolConfig, error) {
	token0, token1 := tokenA, tokenB
	if bytes.Compare(token0.Bytes(), token1.Bytes()) > 0 {
		token0, token1 = token1, token0
	}

	cfg, ok := r.pools[pairKey{token0: token0, token1: token1}]
	if !ok {
		return PoolConfig{}, errors.Wrapf(apperrors.ErrPoolNotFound, "pair %s/%s", tokenA, tokenB)
	}
	return cfg, nil
}

// Pairs returns the number of registered pools.
func (r *Registry) Pairs() int {
	return len(r.pools)
}
