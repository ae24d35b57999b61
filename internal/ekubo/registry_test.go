package ekubo

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ekuboswap/internal/apperrors"
)

var (
	tokenLow  = common.HexToAddress("0x0000000000000000000000000000000000000001")
	tokenHigh = common.HexToAddress("0x0000000000000000000000000000000000000002")
	tokenOdd  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	extension = common.HexToAddress("0x00000000000000000000000000000000000000ee")
)

func bigFromString(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

func testPool() PoolConfig {
	return PoolConfig{
		Token0:         tokenLow,
		Token1:         tokenHigh,
		Fee:            bigFromString("170141183460469235273462165868118016"),
		TickSpacing:    1000,
		Extension:      extension,
		SqrtRatioLimit: bigFromString("18446744073709551616"),
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		reg, err := NewRegistry([]PoolConfig{testPool()})
		require.NoError(t, err)
		require.Equal(t, 1, reg.Pairs())
	})

	t.Run("identical tokens", func(t *testing.T) {
		t.Parallel()

		p := testPool()
		p.Token1 = p.Token0
		_, err := NewRegistry([]PoolConfig{p})
		require.Error(t, err)
	})

	t.Run("not canonically ordered", func(t *testing.T) {
		t.Parallel()

		p := testPool()
		p.Token0, p.Token1 = p.Token1, p.Token0
		_, err := NewRegistry([]PoolConfig{p})
		require.Error(t, err)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry([]PoolConfig{testPool(), testPool()})
		require.Error(t, err)
	})

	t.Run("missing fee", func(t *testing.T) {
		t.Parallel()

		p := testPool()
		p.Fee = nil
		_, err := NewRegistry([]PoolConfig{p})
		require.Error(t, err)
	})
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry([]PoolConfig{testPool()})
	require.NoError(t, err)

	t.Run("order independent", func(t *testing.T) {
		t.Parallel()

		forward, err := reg.Lookup(tokenLow, tokenHigh)
		require.NoError(t, err)
		reverse, err := reg.Lookup(tokenHigh, tokenLow)
		require.NoError(t, err)

		require.Equal(t, forward.Token0, reverse.Token0)
		require.Equal(t, forward.Token1, reverse.Token1)
		require.Equal(t, forward.TickSpacing, reverse.TickSpacing)
		require.Equal(t, forward.Extension, reverse.Extension)
		require.Zero(t, forward.Fee.Cmp(reverse.Fee))
		require.Equal(t, tokenLow, forward.Token0)
		require.Equal(t, tokenHigh, forward.Token1)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := reg.Lookup(tokenLow, tokenOdd)
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrPoolNotFound))
	})
}
