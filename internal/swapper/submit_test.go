package swapper

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ekuboswap/internal/apperrors"
	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/provider"
	"ekuboswap/internal/provider/mock"
)

var (
	token0      = common.HexToAddress("0x0000000000000000000000000000000000000001")
	token1      = common.HexToAddress("0x0000000000000000000000000000000000000002")
	strayToken  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	accountAddr = common.HexToAddress("0x00000000000000000000000000000000000000ff")
	swapperAddr = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func testRegistry(t *testing.T) *ekubo.Registry {
	t.Helper()

	reg, err := ekubo.NewRegistry([]ekubo.PoolConfig{{
		Token0:         token0,
		Token1:         token1,
		Fee:            big.NewInt(1 << 32),
		TickSpacing:    1000,
		Extension:      common.Address{},
		SqrtRatioLimit: big.NewInt(1 << 40),
	}})
	require.NoError(t, err)
	return reg
}

func newTestService(t *testing.T, opts Options) (*Service, *mock.MockProvider) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockProvider := mock.NewMockProvider(ctrl)
	svc := NewService(mockProvider, testRegistry(t), accountAddr, swapperAddr, opts)
	return svc, mockProvider
}

func TestSubmitSwap(t *testing.T) {
	t.Parallel()

	amount := big.NewInt(1000000)

	t.Run("zero amount rejected before any call", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, Options{})
		_, err := svc.SubmitSwap(context.Background(), token0, token1, ekubo.SwapOptions{Amount: big.NewInt(0)})
		require.True(t, errors.Is(err, apperrors.ErrZeroAmount))
	})

	t.Run("missing amount rejected before any call", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, Options{})
		_, err := svc.SubmitSwap(context.Background(), token0, token1, ekubo.SwapOptions{})
		require.True(t, errors.Is(err, apperrors.ErrZeroAmount))
	})

	t.Run("unknown pair rejected before any call", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, Options{})
		_, err := svc.SubmitSwap(context.Background(), token0, strayToken, ekubo.SwapOptions{Amount: amount})
		require.True(t, errors.Is(err, apperrors.ErrPoolNotFound))
	})

	t.Run("approval precedes swap in one batch", func(t *testing.T) {
		t.Parallel()

		maxFee := big.NewInt(5000)
		svc, mockProvider := newTestService(t, Options{MaxFee: maxFee})

		mockProvider.EXPECT().
			SubmitCalls(gomock.Any(), gomock.Any(), maxFee).
			DoAndReturn(func(_ context.Context, calls []provider.Call, _ *big.Int) (provider.TxHandle, error) {
				require.Len(t, calls, 2)

				require.Equal(t, ekubo.MethodApprove, calls[0].EntryPoint)
				require.Equal(t, token1, calls[0].To) // input token side
				approveData, err := ekubo.EncodeApprove(swapperAddr, amount)
				require.NoError(t, err)
				require.True(t, bytes.Equal(approveData, calls[0].Data))

				require.Equal(t, ekubo.MethodManualSwap, calls[1].EntryPoint)
				require.Equal(t, swapperAddr, calls[1].To)

				return provider.TxHandle{ID: "0xbatch"}, nil
			})

		handle, err := svc.SubmitSwap(context.Background(), token1, token0, ekubo.SwapOptions{Amount: amount})
		require.NoError(t, err)
		require.Equal(t, "0xbatch", handle.ID)
	})

	t.Run("network rejection surfaces", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{})
		mockProvider.EXPECT().
			SubmitCalls(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(provider.TxHandle{}, errors.New("nonce too low"))

		_, err := svc.SubmitSwap(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		require.True(t, errors.Is(err, apperrors.ErrNetworkFailure))
		require.Contains(t, err.Error(), "nonce too low")
	})
}

func TestSubmitSwapPreflight(t *testing.T) {
	t.Parallel()

	amount := big.NewInt(1000000)

	supportedRet, err := ekubo.SwapperABI().Methods[ekubo.MethodTokenStatus].Outputs.Pack(ekubo.TokenStatusSupported, big.NewInt(1))
	require.NoError(t, err)
	disabledRet, err := ekubo.SwapperABI().Methods[ekubo.MethodTokenStatus].Outputs.Pack(ekubo.TokenStatusDisabled, big.NewInt(0))
	require.NoError(t, err)

	balanceRet := func(v *big.Int) []byte {
		ret, err := ekubo.TokenABI().Methods[ekubo.MethodBalanceOf].Outputs.Pack(v)
		require.NoError(t, err)
		return ret
	}

	t.Run("unsupported token aborts before submission", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{PreflightChecks: true})
		mockProvider.EXPECT().
			CallContract(gomock.Any(), swapperAddr, gomock.Any()).
			Return(disabledRet, nil)

		_, err := svc.SubmitSwap(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		require.True(t, errors.Is(err, apperrors.ErrTokenNotSupported))
	})

	t.Run("insufficient balance aborts before submission", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{PreflightChecks: true})
		mockProvider.EXPECT().
			CallContract(gomock.Any(), swapperAddr, gomock.Any()).
			Return(supportedRet, nil)
		mockProvider.EXPECT().
			CallContract(gomock.Any(), token0, gomock.Any()).
			Return(balanceRet(big.NewInt(10)), nil)

		_, err := svc.SubmitSwap(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		require.True(t, errors.Is(err, apperrors.ErrInsufficientBalance))
	})

	t.Run("passing preflight submits", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{PreflightChecks: true})
		mockProvider.EXPECT().
			CallContract(gomock.Any(), swapperAddr, gomock.Any()).
			Return(supportedRet, nil)
		mockProvider.EXPECT().
			CallContract(gomock.Any(), token0, gomock.Any()).
			Return(balanceRet(amount), nil)
		mockProvider.EXPECT().
			SubmitCalls(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(provider.TxHandle{ID: "0x1"}, nil)

		handle, err := svc.SubmitSwap(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		require.NoError(t, err)
		require.Equal(t, "0x1", handle.ID)
	})
}
