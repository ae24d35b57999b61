package swapper

import (
	"context"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ekuboswap/internal/ekubo"
)

func TestEstimateGas(t *testing.T) {
	t.Parallel()

	amount := big.NewInt(1000000)

	t.Run("prices the batch at the suggested gas price", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{FallbackGasEstimate: "0.0005"})

		mockProvider.EXPECT().
			EstimateGas(gomock.Any(), accountAddr, gomock.Any()).
			Return(uint64(50_000), nil).
			Times(2)
		mockProvider.EXPECT().
			SuggestGasPrice(gomock.Any()).
			Return(big.NewInt(2_000_000_000), nil) // 2 gwei

		got := svc.EstimateGas(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		// 100000 gas * 2 gwei = 0.0002 ETH
		require.Equal(t, "0.0002", got)
	})

	t.Run("simulation failure degrades to fallback", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{FallbackGasEstimate: "0.0005"})
		mockProvider.EXPECT().
			EstimateGas(gomock.Any(), accountAddr, gomock.Any()).
			Return(uint64(0), errors.New("execution reverted"))

		got := svc.EstimateGas(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		require.Equal(t, "0.0005", got)
	})

	t.Run("unknown pair degrades to fallback", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, Options{FallbackGasEstimate: "0.0005"})
		got := svc.EstimateGas(context.Background(), token0, strayToken, ekubo.SwapOptions{Amount: amount})
		require.Equal(t, "0.0005", got)
	})

	t.Run("gas price failure degrades to fallback", func(t *testing.T) {
		t.Parallel()

		svc, mockProvider := newTestService(t, Options{FallbackGasEstimate: "0.0005"})
		mockProvider.EXPECT().
			EstimateGas(gomock.Any(), accountAddr, gomock.Any()).
			Return(uint64(50_000), nil).
			Times(2)
		mockProvider.EXPECT().
			SuggestGasPrice(gomock.Any()).
			Return(nil, errors.New("rpc down"))

		got := svc.EstimateGas(context.Background(), token0, token1, ekubo.SwapOptions{Amount: amount})
		require.Equal(t, "0.0005", got)
	})
}
