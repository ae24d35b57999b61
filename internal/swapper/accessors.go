package swapper

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"ekuboswap/internal/apperrors"
	"ekuboswap/internal/ekubo"
)

// Pass-through contract views. Each issues one read-only call; failures are
// reported as network failures with the original cause in the message.

// BalanceOf implements Swapper.
func (s *Service) BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error) {
	data, err := ekubo.EncodeBalanceOf(account)
	if err != nil {
		return nil, err
	}

	ret, err := s.provider.CallContract(ctx, token, data)
	if err != nil {
		return nil, errors.Wrapf(apperrors.ErrNetworkFailure, "%s: %v", ekubo.MethodBalanceOf, err)
	}
	return ekubo.DecodeUint256(ekubo.MethodBalanceOf, ret)
}

// Allowance implements Swapper. The spender is always the swapper contract.
func (s *Service) Allowance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	data, err := ekubo.EncodeAllowance(owner, s.contract)
	if err != nil {
		return nil, err
	}

	ret, err := s.provider.CallContract(ctx, token, data)
	if err != nil {
		return nil, errors.Wrapf(apperrors.ErrNetworkFailure, "%s: %v", ekubo.MethodAllowance, err)
	}
	return ekubo.DecodeUint256(ekubo.MethodAllowance, ret)
}

// ContractParameters implements Swapper. The result is cached briefly; the
// contract's parameters change only on administrative action.
func (s *Service) ContractParameters(ctx context.Context) (ekubo.ContractParameters, error) {
	if cached, ok := s.cache.Get(paramsCacheKey); ok {
		return cached.(ekubo.ContractParameters), nil
	}

	data, err := ekubo.EncodeContractParameters()
	if err != nil {
		return ekubo.ContractParameters{}, err
	}

	ret, err := s.provider.CallContract(ctx, s.contract, data)
	if err != nil {
		return ekubo.ContractParameters{}, errors.Wrapf(apperrors.ErrNetworkFailure, "%s: %v", ekubo.MethodContractParameters, err)
	}

	params, err := ekubo.DecodeContractParameters(ret)
	if err != nil {
		return ekubo.ContractParameters{}, err
	}

	s.cache.SetDefault(paramsCacheKey, params)
	return params, nil
}

// TokenStatus implements Swapper.
func (s *Service) TokenStatus(ctx context.Context, token common.Address) (ekubo.TokenStatus, error) {
	key := tokenStatusKeyPref + token.Hex()
	if cached, ok := s.cache.Get(key); ok {
		return cached.(ekubo.TokenStatus), nil
	}

	data, err := ekubo.EncodeTokenStatus(token)
	if err != nil {
		return ekubo.TokenStatus{}, err
	}

	ret, err := s.provider.CallContract(ctx, s.contract, data)
	if err != nil {
		return ekubo.TokenStatus{}, errors.Wrapf(apperrors.ErrNetworkFailure, "%s: %v", ekubo.MethodTokenStatus, err)
	}

	status, err := ekubo.DecodeTokenStatus(ret)
	if err != nil {
		return ekubo.TokenStatus{}, err
	}

	s.cache.SetDefault(key, status)
	return status, nil
}
