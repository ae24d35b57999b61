package ekubo

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Contract entry points this client encodes.
const (
	MethodApprove            = "approve"
	MethodManualSwap         = "ekubo_manual_swap"
	MethodBalanceOf          = "balance_of"
	MethodAllowance          = "allowance"
	MethodContractParameters = "contract_parameters"
	MethodTokenStatus        = "get_token_from_status_and_value"

	// EventSwapped is the swapper contract's swap-completion event.
	EventSwapped = "Swapped"
)

// Minimal token ABI: approval plus the read-only views this client proxies.
const tokenABIJSON = `[
	{"name":"approve","type":"function","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"balance_of","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"allowance","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// Swapper contract ABI: the manual swap entry point, its views and the
// Swapped event. The swap_request tuple layout is fixed by the contract.
const swapperABIJSON = `[
	{"name":"ekubo_manual_swap","type":"function","stateMutability":"nonpayable","inputs":[
		{"name":"swap_request","type":"tuple","components":[
			{"name":"pool_key","type":"tuple","components":[
				{"name":"token0","type":"address"},
				{"name":"token1","type":"address"},
				{"name":"fee","type":"uint128"},
				{"name":"tick_spacing","type":"uint32"},
				{"name":"extension","type":"address"}
			]},
			{"name":"amount","type":"tuple","components":[
				{"name":"mag","type":"uint128"},
				{"name":"sign","type":"bool"}
			]},
			{"name":"is_token1","type":"bool"},
			{"name":"sqrt_ratio_limit","type":"uint256"},
			{"name":"skip_ahead","type":"uint256"},
			{"name":"account","type":"address"}
		]}
	],"outputs":[]},
	{"name":"contract_parameters","type":"function","stateMutability":"view","inputs":[],"outputs":[
		{"name":"owner","type":"address"},
		{"name":"core","type":"address"},
		{"name":"paused","type":"bool"}
	]},
	{"name":"get_token_from_status_and_value","type":"function","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[
		{"name":"status","type":"uint8"},
		{"name":"value","type":"uint256"}
	]},
	{"name":"Swapped","type":"event","inputs":[
		{"name":"account","type":"address","indexed":true},
		{"name":"token0","type":"address","indexed":false},
		{"name":"token1","type":"address","indexed":false},
		{"name":"amount","type":"uint128","indexed":false},
		{"name":"is_token1","type":"bool","indexed":false}
	]}
]`

var (
	tokenABI   abi.ABI
	swapperABI abi.ABI
)

func init() {
	var err error
	tokenABI, err = abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		panic(err)
	}
	swapperABI, err = abi.JSON(strings.NewReader(swapperABIJSON))
	if err != nil {
		panic(err)
	}
}

// TokenABI returns the token contract ABI.
func TokenABI() abi.ABI {
	return tokenABI
}

// SwapperABI returns the swapper contract ABI.
func SwapperABI() abi.ABI {
	return swapperABI
}

// SwappedTopic returns the topic0 hash of the Swapped event.
func SwappedTopic() common.Hash {
	return swapperABI.Events[EventSwapped].ID
}

type abiPoolKey struct {
	Token0      common.Address `abi:"token0"`
	Token1      common.Address `abi:"token1"`
	Fee         *big.Int       `abi:"fee"`
	TickSpacing uint32         `abi:"tick_spacing"`
	Extension   common.Address `abi:"extension"`
}

type abiTokenAmount struct {
	Mag  *big.Int `abi:"mag"`
	Sign bool     `abi:"sign"`
}

type abiSwapRequest struct {
	PoolKey        abiPoolKey     `abi:"pool_key"`
	Amount         abiTokenAmount `abi:"amount"`
	IsToken1       bool           `abi:"is_token1"`
	SqrtRatioLimit *big.Int       `abi:"sqrt_ratio_limit"`
	SkipAhead      *big.Int       `abi:"skip_ahead"`
	Account        common.Address `abi:"account"`
}

// EncodeApprove packs an approve(spender, amount) call payload.
func EncodeApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	data, err := tokenABI.Pack(MethodApprove, spender, amount)
	if err != nil {
		return nil, errors.Wrap(err, "tokenABI.Pack")
	}
	return data, nil
}

// EncodeManualSwap packs an ekubo_manual_swap call with the swap request as
// its sole argument.
func EncodeManualSwap(req SwapRequest) ([]byte, error) {
	sqrtRatioLimit := req.SqrtRatioLimit
	if sqrtRatioLimit == nil {
		sqrtRatioLimit = big.NewInt(0)
	}
	skipAhead := req.SkipAhead
	if skipAhead == nil {
		skipAhead = big.NewInt(0)
	}

	data, err := swapperABI.Pack(MethodManualSwap, abiSwapRequest{
		PoolKey: abiPoolKey{
			Token0:      req.PoolKey.Token0,
			Token1:      req.PoolKey.Token1,
			Fee:         req.PoolKey.Fee,
			TickSpacing: req.PoolKey.TickSpacing,
			Extension:   req.PoolKey.Extension,
		},
		Amount: abiTokenAmount{
			Mag:  req.Amount.Mag,
			Sign: req.Amount.Sign,
		},
		IsToken1:       req.IsToken1,
		SqrtRatioLimit: sqrtRatioLimit,
		SkipAhead:      skipAhead,
		Account:        req.Account,
	})
	if err != nil {
		return nil, errors.Wrap(err, "swapperABI.Pack")
	}
	return data, nil
}

// EncodeBalanceOf packs a balance_of(account) call payload.
func EncodeBalanceOf(account common.Address) ([]byte, error) {
	data, err := tokenABI.Pack(MethodBalanceOf, account)
	if err != nil {
		return nil, errors.Wrap(err, "tokenABI.Pack")
	}
	return data, nil
}

// EncodeAllowance packs an allowance(owner, spender) call payload.
func EncodeAllowance(owner, spender common.Address) ([]byte, error) {
	data, err := tokenABI.Pack(MethodAllowance, owner, spender)
	if err != nil {
		return nil, errors.Wrap(err, "tokenABI.Pack")
	}
	return data, nil
}

// EncodeContractParameters packs a contract_parameters() call payload.
func EncodeContractParameters() ([]byte, error) {
	data, err := swapperABI.Pack(MethodContractParameters)
	if err != nil {
		return nil, errors.Wrap(err, "swapperABI.Pack")
	}
	return data, nil
}

// EncodeTokenStatus packs a get_token_from_status_and_value(token) payload.
func EncodeTokenStatus(token common.Address) ([]byte, error) {
	data, err := swapperABI.Pack(MethodTokenStatus, token)
	if err != nil {
		return nil, errors.Wrap(err, "swapperABI.Pack")
	}
	return data, nil
}

// DecodeUint256 unpacks a single uint256 return value of a token view.
func DecodeUint256(method string, ret []byte) (*big.Int, error) {
	out, err := tokenABI.Unpack(method, ret)
	if err != nil {
		return nil, errors.Wrap(err, "tokenABI.Unpack")
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("%s: unexpected return type %T", method, out[0])
	}
	return v, nil
}

// DecodeContractParameters unpacks the contract_parameters() return values.
func DecodeContractParameters(ret []byte) (ContractParameters, error) {
	out, err := swapperABI.Unpack(MethodContractParameters, ret)
	if err != nil {
		return ContractParameters{}, errors.Wrap(err, "swapperABI.Unpack")
	}

	owner, ok0 := out[0].(common.Address)
	core, ok1 := out[1].(common.Address)
	paused, ok2 := out[2].(bool)
	if !ok0 || !ok1 || !ok2 {
		return ContractParameters{}, errors.New("contract_parameters: unexpected return types")
	}
	return ContractParameters{Owner: owner, Core: core, Paused: paused}, nil
}

// DecodeTokenStatus unpacks the get_token_from_status_and_value return values.
func DecodeTokenStatus(ret []byte) (TokenStatus, error) {
	out, err := swapperABI.Unpack(MethodTokenStatus, ret)
	if err != nil {
		return TokenStatus{}, errors.Wrap(err, "swapperABI.Unpack")
	}

	status, ok0 := out[0].(uint8)
	value, ok1 := out[1].(*big.Int)
	if !ok0 || !ok1 {
		return TokenStatus{}, errors.New("get_token_from_status_and_value: unexpected return types")
	}
	return TokenStatus{Status: status, Value: value}, nil
}

// DecodeSwappedLog decodes a Swapped log into its typed payload.
func DecodeSwappedLog(lg types.Log) (SwapEvent, error) {
	if len(lg.Topics) < 2 || lg.Topics[0] != SwappedTopic() {
		return SwapEvent{}, errors.New("log is not a Swapped event")
	}

	var payload struct {
		Token0   common.Address `abi:"token0"`
		Token1   common.Address `abi:"token1"`
		Amount   *big.Int       `abi:"amount"`
		IsToken1 bool           `abi:"is_token1"`
	}
	if err := swapperABI.UnpackIntoInterface(&payload, EventSwapped, lg.Data); err != nil {
		return SwapEvent{}, errors.Wrap(err, "swapperABI.UnpackIntoInterface")
	}

	return SwapEvent{
		Account:     common.BytesToAddress(lg.Topics[1].Bytes()),
		Token0:      payload.Token0,
		Token1:      payload.Token1,
		Amount:      payload.Amount,
		IsToken1:    payload.IsToken1,
		TxHash:      lg.TxHash,
		BlockNumber: lg.BlockNumber,
	}, nil
}
