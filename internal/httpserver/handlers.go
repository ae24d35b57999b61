package httpserver

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"ekuboswap/internal/apperrors"
	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/logger"
)

type swapRequestBody struct {
	TokenIn        string `json:"token_in"`
	TokenOut       string `json:"token_out"`
	Amount         string `json:"amount"`
	IsToken1       *bool  `json:"is_token1,omitempty"`
	SqrtRatioLimit string `json:"sqrt_ratio_limit,omitempty"`
	SkipAhead      string `json:"skip_ahead,omitempty"`
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body swapRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	tokenIn, tokenOut, opts, err := s.parseSwapArgs(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	handle, err := s.svc.SubmitSwap(ctx, tokenIn, tokenOut, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, map[string]string{"tx_id": handle.ID})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tokenIn, tokenOut, opts, err := s.parseSwapArgs(swapRequestBody{
		TokenIn:  q.Get("token_in"),
		TokenOut: q.Get("token_out"),
		Amount:   q.Get("amount"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	writeJSON(w, map[string]string{"estimate": s.svc.EstimateGas(ctx, tokenIn, tokenOut, opts)})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token, err := s.cfg.ResolveToken(q.Get("token"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !common.IsHexAddress(q.Get("account")) {
		http.Error(w, "bad account", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	balance, err := s.svc.BalanceOf(ctx, token, common.HexToAddress(q.Get("account")))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, map[string]string{"balance": balance.String()})
}

func (s *Server) handleAllowance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token, err := s.cfg.ResolveToken(q.Get("token"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !common.IsHexAddress(q.Get("owner")) {
		http.Error(w, "bad owner", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	allowance, err := s.svc.Allowance(ctx, token, common.HexToAddress(q.Get("owner")))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, map[string]string{"allowance": allowance.String()})
}

func (s *Server) parseSwapArgs(body swapRequestBody) (common.Address, common.Address, ekubo.SwapOptions, error) {
	var opts ekubo.SwapOptions

	tokenIn, err := s.cfg.ResolveToken(body.TokenIn)
	if err != nil {
		return common.Address{}, common.Address{}, opts, errors.Wrap(err, "token_in")
	}
	tokenOut, err := s.cfg.ResolveToken(body.TokenOut)
	if err != nil {
		return common.Address{}, common.Address{}, opts, errors.Wrap(err, "token_out")
	}
	if tokenIn == tokenOut {
		return common.Address{}, common.Address{}, opts, errors.New("token_in == token_out")
	}

	amount, ok := new(big.Int).SetString(strings.TrimSpace(body.Amount), 10)
	if !ok || amount.Sign() <= 0 {
		return common.Address{}, common.Address{}, opts, errors.New("bad amount")
	}
	opts.Amount = amount
	opts.IsToken1 = body.IsToken1

	if body.SqrtRatioLimit != "" {
		limit, ok := new(big.Int).SetString(body.SqrtRatioLimit, 10)
		if !ok {
			return common.Address{}, common.Address{}, opts, errors.New("bad sqrt_ratio_limit")
		}
		opts.SqrtRatioLimit = limit
	}
	if body.SkipAhead != "" {
		skip, ok := new(big.Int).SetString(body.SkipAhead, 10)
		if !ok || skip.Sign() < 0 {
			return common.Address{}, common.Address{}, opts, errors.New("bad skip_ahead")
		}
		opts.SkipAhead = skip
	}

	return tokenIn, tokenOut, opts, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrZeroAmount),
		errors.Is(err, apperrors.ErrPoolNotFound),
		errors.Is(err, apperrors.ErrInsufficientBalance),
		errors.Is(err, apperrors.ErrTokenNotSupported):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNetworkFailure):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warnf("response write error: %v", err)
	}
}
