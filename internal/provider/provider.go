package provider

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Call describes one contract invocation inside a batch: the target contract,
// the entry-point name (informational, used for logs and errors) and the
// encoded argument payload.
type Call struct {
	To         common.Address
	EntryPoint string
	Data       []byte
}

// TxHandle identifies an accepted submission. ID is the batch identifier
// returned by the wallet; acceptance does not imply finality.
type TxHandle struct {
	ID string
}

// Provider is the network collaborator. SubmitCalls must apply the batch
// atomically: either every call commits or none does, in the given order.
type Provider interface {
	// SubmitCalls submits the calls as one atomic transaction with an
	// optional fee ceiling (nil means wallet default).
	SubmitCalls(ctx context.Context, calls []Call, maxFee *big.Int) (TxHandle, error)

	// CallContract executes a read-only contract call and returns the raw
	// return data.
	CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// EstimateGas simulates a single call and returns its gas use.
	EstimateGas(ctx context.Context, from common.Address, call Call) (uint64, error)

	// SuggestGasPrice returns the current gas price suggestion in wei.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	// SubscribeLogs opens a streaming log subscription for the query.
	SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}
