package swapper

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"ekuboswap/internal/apperrors"
	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/logger"
	"ekuboswap/internal/provider"
)

// SubmitSwap implements Swapper. The amount precondition and the swap-request
// construction run before any on-chain action; the approval call and the swap
// call are then submitted as one atomic batch, approval first. The contract
// must observe sufficient allowance at the moment it attempts the transfer,
// so the ordering is load-bearing and atomicity is the provider's contract.
func (s *Service) SubmitSwap(ctx context.Context, tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) (provider.TxHandle, error) {
	if opts.Amount == nil || opts.Amount.Sign() <= 0 {
		return provider.TxHandle{}, errors.Wrap(apperrors.ErrZeroAmount, "swap amount")
	}

	req, err := s.BuildSwapRequest(tokenIn, tokenOut, opts)
	if err != nil {
		return provider.TxHandle{}, err
	}

	if s.opts.PreflightChecks {
		if err = s.preflight(ctx, req); err != nil {
			return provider.TxHandle{}, err
		}
	}

	calls, err := assembleCalls(req, s.contract)
	if err != nil {
		return provider.TxHandle{}, err
	}

	handle, err := s.provider.SubmitCalls(ctx, calls, s.opts.MaxFee)
	if err != nil {
		return provider.TxHandle{}, errors.Wrapf(apperrors.ErrNetworkFailure, "provider.SubmitCalls: %v", err)
	}

	logger.Infof("[swapper] submitted swap, pair: %s/%s, amount: %s, tx: %s",
		tokenIn, tokenOut, req.Amount.Mag, handle.ID)

	return handle, nil
}

// assembleCalls compiles the ordered approval+swap batch for a request.
func assembleCalls(req ekubo.SwapRequest, contract common.Address) ([]provider.Call, error) {
	approveData, err := ekubo.EncodeApprove(contract, req.Amount.Mag)
	if err != nil {
		return nil, errors.Wrap(err, "ekubo.EncodeApprove")
	}
	swapData, err := ekubo.EncodeManualSwap(req)
	if err != nil {
		return nil, errors.Wrap(err, "ekubo.EncodeManualSwap")
	}

	return []provider.Call{
		{To: req.InputToken(), EntryPoint: ekubo.MethodApprove, Data: approveData},
		{To: contract, EntryPoint: ekubo.MethodManualSwap, Data: swapData},
	}, nil
}

// preflight verifies token support and balance before spending gas. These
// checks were disabled in the original client; they are opt-in here.
func (s *Service) preflight(ctx context.Context, req ekubo.SwapRequest) error {
	tokenIn := req.InputToken()

	status, err := s.TokenStatus(ctx, tokenIn)
	if err != nil {
		return err
	}
	if !status.Supported() {
		return errors.Wrapf(apperrors.ErrTokenNotSupported, "token %s", tokenIn)
	}

	balance, err := s.BalanceOf(ctx, tokenIn, req.Account)
	if err != nil {
		return err
	}
	if balance.Cmp(req.Amount.Mag) < 0 {
		return errors.Wrapf(apperrors.ErrInsufficientBalance, "have %s, need %s", balance, req.Amount.Mag)
	}
	return nil
}
