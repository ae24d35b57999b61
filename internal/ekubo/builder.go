package ekubo

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// BuildSwapRequest resolves a trading pair into a fully specified swap
// request. It is pure: no I/O, no mutation of its inputs.
//
// Direction: an explicit opts.IsToken1 wins; otherwise the flag is derived
// from which side of the pool tokenIn occupies. Price-ratio limit: the
// override wins over the pool default. Skip-ahead defaults to zero. The
// amount is encoded as a non-negative signed-magnitude value; positivity is
// the submitter's precondition, not re-checked here.
func BuildSwapRequest(reg *Registry, account, tokenIn, tokenOut common.Address, opts SwapOptions) (SwapRequest, error) {
	pool, err := reg.Lookup(tokenIn, tokenOut)
	if err != nil {
		return SwapRequest{}, errors.Wrap(err, "reg.Lookup")
	}

	isToken1 := tokenIn == pool.Token1
	if opts.IsToken1 != nil {
		isToken1 = *opts.IsToken1
	}

	sqrtRatioLimit := pool.SqrtRatioLimit
	if opts.SqrtRatioLimit != nil {
		sqrtRatioLimit = opts.SqrtRatioLimit
	}

	skipAhead := big.NewInt(0)
	if opts.SkipAhead != nil {
		skipAhead = opts.SkipAhead
	}

	mag := big.NewInt(0)
	if opts.Amount != nil {
		mag = new(big.Int).Set(opts.Amount)
	}

	return SwapRequest{
		PoolKey:        pool.Key(),
		Amount:         TokenAmount{Mag: mag, Sign: false},
		IsToken1:       isToken1,
		SqrtRatioLimit: sqrtRatioLimit,
		SkipAhead:      skipAhead,
		Account:        account,
	}, nil
}
