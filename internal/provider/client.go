package provider

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// sendCallsVersion is the EIP-5792 wallet_sendCalls payload version.
const sendCallsVersion = "2.0.0"

// Client is the Provider implementation over a JSON-RPC wallet endpoint.
// Reads go through eth_call; atomic batches go through the EIP-5792
// wallet_sendCalls method with atomicRequired set, which gives the
// all-or-nothing guarantee the approval+swap pair depends on.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
	chainID   *big.Int
	account   common.Address
}

// NewClient dials the RPC endpoint and binds the client to the submitting
// account. The chain ID is fetched once at startup.
func NewClient(ctx context.Context, rpcURL string, account common.Address) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "rpc.DialContext")
	}

	ethClient := ethclient.NewClient(rpcClient)
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		rpcClient.Close()
		return nil, errors.Wrap(err, "ethClient.ChainID")
	}

	return &Client{
		rpcClient: rpcClient,
		ethClient: ethClient,
		chainID:   chainID,
		account:   account,
	}, nil
}

// Account returns the account the client submits from.
func (c *Client) Account() common.Address {
	return c.account
}

// Close closes the underlying RPC connection.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

type sendCallsCall struct {
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}

type sendCallsParams struct {
	Version        string          `json:"version"`
	ChainID        *hexutil.Big    `json:"chainId"`
	From           common.Address  `json:"from"`
	AtomicRequired bool            `json:"atomicRequired"`
	Calls          []sendCallsCall `json:"calls"`
	Capabilities   map[string]any  `json:"capabilities,omitempty"`
}

type sendCallsResult struct {
	ID string `json:"id"`
}

// SubmitCalls implements Provider.
func (c *Client) SubmitCalls(ctx context.Context, calls []Call, maxFee *big.Int) (TxHandle, error) {
	if len(calls) == 0 {
		return TxHandle{}, errors.New("empty call batch")
	}

	params := sendCallsParams{
		Version:        sendCallsVersion,
		ChainID:        (*hexutil.Big)(c.chainID),
		From:           c.account,
		AtomicRequired: true,
		Calls: lo.Map(calls, func(call Call, _ int) sendCallsCall {
			return sendCallsCall{To: call.To, Data: call.Data}
		}),
	}
	if maxFee != nil {
		params.Capabilities = map[string]any{
			"feeLimit": hexutil.EncodeBig(maxFee),
		}
	}

	var res sendCallsResult
	if err := c.rpcClient.CallContext(ctx, &res, "wallet_sendCalls", params); err != nil {
		return TxHandle{}, errors.Wrap(err, "rpcClient.CallContext")
	}
	return TxHandle{ID: res.ID}, nil
}

// CallContract implements Provider.
func (c *Client) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	res, err := c.ethClient.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ethClient.CallContract")
	}
	return res, nil
}

// EstimateGas implements Provider.
func (c *Client) EstimateGas(ctx context.Context, from common.Address, call Call) (uint64, error) {
	gas, err := c.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &call.To,
		Data: call.Data,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "ethClient.EstimateGas %s", call.EntryPoint)
	}
	return gas, nil
}

// SuggestGasPrice implements Provider.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "ethClient.SuggestGasPrice")
	}
	return price, nil
}

// SubscribeLogs implements Provider. Requires a websocket endpoint.
func (c *Client) SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	sub, err := c.ethClient.SubscribeFilterLogs(ctx, q, ch)
	if err != nil {
		return nil, errors.Wrap(err, "ethClient.SubscribeFilterLogs")
	}
	return sub, nil
}
