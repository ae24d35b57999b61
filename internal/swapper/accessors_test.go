package swapper

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ekuboswap/internal/apperrors"
	"ekuboswap/internal/ekubo"
)

func TestBalanceOf(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{})
		ret, err := ekubo.TokenABI().Methods[ekubo.MethodBalanceOf].Outputs.Pack(big.NewInt(12345))
		require.NoError(t, err)

		mockProvider.EXPECT().
			CallContract(gomock.Any(), token0, gomock.Any()).
			Return(ret, nil)

		balance, err := svc.BalanceOf(context.Background(), token0, accountAddr)
		require.NoError(t, err)
		require.Zero(t, balance.Cmp(big.NewInt(12345)))
	})

	t.Run("rpc failure", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{})
		mockProvider.EXPECT().
			CallContract(gomock.Any(), token0, gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.BalanceOf(context.Background(), token0, accountAddr)
		require.True(t, errors.Is(err, apperrors.ErrNetworkFailure))
	})
}

func TestAllowance(t *testing.T) {
	t.Parallel()

	svc, mockProvider := newTestService(t, Options{})
	ret, err := ekubo.TokenABI().Methods[ekubo.MethodAllowance].Outputs.Pack(big.NewInt(777))
	require.NoError(t, err)

	mockProvider.EXPECT().
		CallContract(gomock.Any(), token0, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Address, data []byte) ([]byte, error) {
			// spender must be the swapper contract
			out, err := ekubo.TokenABI().Methods[ekubo.MethodAllowance].Inputs.Unpack(data[4:])
			require.NoError(t, err)
			require.Equal(t, accountAddr, out[0].(common.Address))
			require.Equal(t, swapperAddr, out[1].(common.Address))
			return ret, nil
		})

	allowance, err := svc.Allowance(context.Background(), token0, accountAddr)
	require.NoError(t, err)
	require.Zero(t, allowance.Cmp(big.NewInt(777)))
}

func TestContractParameters(t *testing.T) {
	t.Parallel()

	owner := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	core := common.HexToAddress("0x0000000000000000000000000000000000000c0c")

	ret, err := ekubo.SwapperABI().Methods[ekubo.MethodContractParameters].Outputs.Pack(owner, core, false)
	require.NoError(t, err)

	svc, mockProvider := newTestService(t, Options{})
	mockProvider.EXPECT().
		CallContract(gomock.Any(), swapperAddr, gomock.Any()).
		Return(ret, nil) // exactly once: second read must hit the cache

	params, err := svc.ContractParameters(context.Background())
	require.NoError(t, err)
	require.Equal(t, owner, params.Owner)
	require.Equal(t, core, params.Core)
	require.False(t, params.Paused)

	again, err := svc.ContractParameters(context.Background())
	require.NoError(t, err)
	require.Equal(t, params, again)
}

func TestTokenStatus(t *testing.T) {
	t.Parallel()

	ret, err := ekubo.SwapperABI().Methods[ekubo.MethodTokenStatus].Outputs.Pack(ekubo.TokenStatusSupported, big.NewInt(42))
	require.NoError(t, err)

	svc, mockProvider := newTestService(t, Options{})
	mockProvider.EXPECT().
		CallContract(gomock.Any(), swapperAddr, gomock.Any()).
		Return(ret, nil)

	status, err := svc.TokenStatus(context.Background(), token0)
	require.NoError(t, err)
	require.True(t, status.Supported())
	require.Zero(t, status.Value.Cmp(big.NewInt(42)))
}
