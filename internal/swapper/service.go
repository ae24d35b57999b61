package swapper

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/multierr"

	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/provider"
)

// EventHandler receives decoded swap events from a subscription.
type EventHandler func(ekubo.SwapEvent)

// Swapper is the public surface of the swap client.
type Swapper interface {
	// BuildSwapRequest resolves a pair and options into a swap request
	// without any network I/O.
	BuildSwapRequest(tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) (ekubo.SwapRequest, error)

	// SubmitSwap builds the request and submits the approval+swap pair as
	// one atomic transaction.
	SubmitSwap(ctx context.Context, tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) (provider.TxHandle, error)

	// EstimateGas returns a decimal ETH cost estimate for the swap. Best
	// effort: on simulation failure it returns the configured fallback.
	EstimateGas(ctx context.Context, tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) string

	// BalanceOf returns the account's balance of a token.
	BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error)

	// Allowance returns the owner's allowance granted to the swap contract.
	Allowance(ctx context.Context, token, owner common.Address) (*big.Int, error)

	// ContractParameters returns the swapper contract's parameters.
	ContractParameters(ctx context.Context) (ekubo.ContractParameters, error)

	// TokenStatus returns the swapper contract's support status for a token.
	TokenStatus(ctx context.Context, token common.Address) (ekubo.TokenStatus, error)

	// Subscribe registers a handler for the named contract event.
	Subscribe(eventName string, handler EventHandler) error

	// Unsubscribe tears down the subscription for the named event.
	Unsubscribe(eventName string) error
}

// Options are the service knobs beyond its collaborators.
type Options struct {
	// MaxFee caps the fee ceiling passed with each submission; nil means
	// no ceiling.
	MaxFee *big.Int

	// FallbackGasEstimate is returned by EstimateGas when simulation fails.
	FallbackGasEstimate string

	// PreflightChecks enables balance and token-support verification before
	// submission.
	PreflightChecks bool
}

const (
	paramsCacheTTL     = time.Minute
	paramsCacheSweep   = 5 * time.Minute
	paramsCacheKey     = "contract_parameters"
	tokenStatusKeyPref = "token_status:"
)

// Service implements Swapper. It owns its provider binding and account; the
// registry is shared read-only state.
type Service struct {
	provider provider.Provider
	registry *ekubo.Registry
	account  common.Address
	contract common.Address
	opts     Options

	cache *gocache.Cache

	mu   sync.Mutex
	subs map[string]*subscription
}

// NewService creates the swap service bound to one account and one swapper
// contract.
func NewService(p provider.Provider, reg *ekubo.Registry, account, contract common.Address, opts Options) *Service {
	return &Service{
		provider: p,
		registry: reg,
		account:  account,
		contract: contract,
		opts:     opts,
		cache:    gocache.New(paramsCacheTTL, paramsCacheSweep),
		subs:     make(map[string]*subscription),
	}
}

// BuildSwapRequest implements Swapper.
func (s *Service) BuildSwapRequest(tokenIn, tokenOut common.Address, opts ekubo.SwapOptions) (ekubo.SwapRequest, error) {
	return ekubo.BuildSwapRequest(s.registry, s.account, tokenIn, tokenOut, opts)
}

// Close tears down all event subscriptions.
func (s *Service) Close() error {
	s.mu.Lock()
	names := make([]string, 0, len(s.subs))
	for name := range s.subs {
		names = append(names, name)
	}
	s.mu.Unlock()

	var err error
	for _, name := range names {
		err = multierr.Append(err, s.Unsubscribe(name))
	}
	return err
}
