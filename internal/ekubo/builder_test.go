package ekubo

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ekuboswap/internal/apperrors"
)

var testAccount = common.HexToAddress("0x00000000000000000000000000000000000000ff")

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := NewRegistry([]PoolConfig{testPool()})
	require.NoError(t, err)
	return reg
}

func TestBuildSwapRequest(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	amount := big.NewInt(1000000)

	t.Run("direction derived from token1 input", func(t *testing.T) {
		t.Parallel()

		req, err := BuildSwapRequest(reg, testAccount, tokenHigh, tokenLow, SwapOptions{Amount: amount})
		require.NoError(t, err)
		require.True(t, req.IsToken1)
		require.Equal(t, tokenHigh, req.InputToken())
	})

	t.Run("direction derived from token0 input", func(t *testing.T) {
		t.Parallel()

		req, err := BuildSwapRequest(reg, testAccount, tokenLow, tokenHigh, SwapOptions{Amount: amount})
		require.NoError(t, err)
		require.False(t, req.IsToken1)
		require.Equal(t, tokenLow, req.InputToken())
	})

	t.Run("explicit direction wins", func(t *testing.T) {
		t.Parallel()

		isToken1 := true
		req, err := BuildSwapRequest(reg, testAccount, tokenLow, tokenHigh, SwapOptions{
			Amount:   amount,
			IsToken1: &isToken1,
		})
		require.NoError(t, err)
		require.True(t, req.IsToken1)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		req, err := BuildSwapRequest(reg, testAccount, tokenLow, tokenHigh, SwapOptions{Amount: amount})
		require.NoError(t, err)

		pool := testPool()
		require.Zero(t, req.SqrtRatioLimit.Cmp(pool.SqrtRatioLimit))
		require.Zero(t, req.SkipAhead.Sign())
		require.Zero(t, req.Amount.Mag.Cmp(amount))
		require.False(t, req.Amount.Sign)
		require.Equal(t, testAccount, req.Account)
		require.Equal(t, pool.Key(), req.PoolKey)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		limit := big.NewInt(42)
		skip := big.NewInt(3)
		req, err := BuildSwapRequest(reg, testAccount, tokenLow, tokenHigh, SwapOptions{
			Amount:         amount,
			SqrtRatioLimit: limit,
			SkipAhead:      skip,
		})
		require.NoError(t, err)
		require.Zero(t, req.SqrtRatioLimit.Cmp(limit))
		require.Zero(t, req.SkipAhead.Cmp(skip))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		opts := SwapOptions{Amount: amount}
		first, err := BuildSwapRequest(reg, testAccount, tokenHigh, tokenLow, opts)
		require.NoError(t, err)
		second, err := BuildSwapRequest(reg, testAccount, tokenHigh, tokenLow, opts)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("does not alias the amount", func(t *testing.T) {
		t.Parallel()

		in := big.NewInt(500)
		req, err := BuildSwapRequest(reg, testAccount, tokenLow, tokenHigh, SwapOptions{Amount: in})
		require.NoError(t, err)

		in.SetInt64(999)
		require.Zero(t, req.Amount.Mag.Cmp(big.NewInt(500)))
	})

	t.Run("unknown pair", func(t *testing.T) {
		t.Parallel()

		_, err := BuildSwapRequest(reg, testAccount, tokenLow, tokenOdd, SwapOptions{Amount: amount})
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrPoolNotFound))
	})
}
