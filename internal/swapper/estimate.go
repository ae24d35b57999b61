package swapper

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/logger"
	"ekuboswap/internal/units"
)

// EstimateGas implements Swapper. Advisory only: it simulates the same
// approval+swap batch SubmitSwap would send, prices it at the suggested gas
// price and returns the cost as a decimal ETH string. Any failure, including
// invalid input, degrades to the configured fallback value.
func (s *Service) EstimateGas(ctx context.Context, tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) string {
	estimate, err := s.estimateCost(ctx, tokenIn, tokenOut, opts)
	if err != nil {
		logger.Warnf("[swapper] gas estimation failed, using fallback %s: %v", s.opts.FallbackGasEstimate, err)
		return s.opts.FallbackGasEstimate
	}
	return estimate
}

func (s *Service) estimateCost(ctx context.Context, tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) (string, error) {
	req, err := s.BuildSwapRequest(tokenIn, tokenOut, opts)
	if err != nil {
		return "", err
	}

	calls, err := assembleCalls(req, s.contract)
	if err != nil {
		return "", err
	}

	var totalGas uint64
	for _, call := range calls {
		gas, err := s.provider.EstimateGas(ctx, s.account, call)
		if err != nil {
			return "", err
		}
		totalGas += gas
	}

	price, err := s.provider.SuggestGasPrice(ctx)
	if err != nil {
		return "", err
	}

	cost := new(big.Int).Mul(new(big.Int).SetUint64(totalGas), price)
	return units.ParseETH(cost).String(), nil
}
