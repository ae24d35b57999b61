package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ekuboswap/internal/config"
	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/logger"
	"ekuboswap/internal/provider"
	"ekuboswap/internal/swapper"
)

func main() {
	root := &cobra.Command{
		Use:          "swap",
		Short:        "Ekubo swap client",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "f", "cfg/config.yaml", "config file path")

	swapCmd := &cobra.Command{
		Use:   "swap <token-in> <token-out> <amount>",
		Short: "Submit an approval+swap batch",
		Args:  cobra.ExactArgs(3),
		RunE:  runSwap,
	}
	swapCmd.Flags().Bool("is-token1", false, "force the direction flag instead of deriving it")
	swapCmd.Flags().String("sqrt-ratio-limit", "", "price-ratio limit override (decimal)")
	swapCmd.Flags().String("skip-ahead", "", "skip-ahead hint (decimal)")
	root.AddCommand(swapCmd)

	root.AddCommand(&cobra.Command{
		Use:   "estimate <token-in> <token-out> <amount>",
		Short: "Estimate the gas cost of a swap",
		Args:  cobra.ExactArgs(3),
		RunE:  runEstimate,
	})

	root.AddCommand(&cobra.Command{
		Use:   "balance <token> [account]",
		Short: "Query a token balance",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runBalance,
	})

	root.AddCommand(&cobra.Command{
		Use:   "allowance <token> [owner]",
		Short: "Query the allowance granted to the swap contract",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runAllowance,
	})

	root.AddCommand(&cobra.Command{
		Use:   "params",
		Short: "Show the swap contract parameters",
		Args:  cobra.NoArgs,
		RunE:  runParams,
	})

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Stream swap events until interrupted",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*config.Config, *swapper.Service, func(), error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "config.LoadFromFile")
	}
	logger.Setup(logger.Options{Level: cfg.Log.Level})

	pools, err := cfg.PoolConfigs()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cfg.PoolConfigs")
	}
	registry, err := ekubo.NewRegistry(pools)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "ekubo.NewRegistry")
	}

	client, err := provider.NewClient(cmd.Context(), cfg.RPCURL, cfg.AccountAddress())
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "provider.NewClient")
	}

	svc := swapper.NewService(client, registry, cfg.AccountAddress(), cfg.SwapContractAddress(), swapper.Options{
		MaxFee:              cfg.MaxFeeWei(),
		FallbackGasEstimate: cfg.FallbackGasEstimate,
		PreflightChecks:     cfg.PreflightChecks,
	})

	cleanup := func() {
		if err := svc.Close(); err != nil {
			logger.Warnf("svc.Close: %v", err)
		}
		client.Close()
	}
	return cfg, svc, cleanup, nil
}

func parsePair(cfg *config.Config, inArg, outArg, amountArg string) (common.Address, common.Address, *big.Int, error) {
	tokenIn, err := cfg.ResolveToken(inArg)
	if err != nil {
		return common.Address{}, common.Address{}, nil, err
	}
	tokenOut, err := cfg.ResolveToken(outArg)
	if err != nil {
		return common.Address{}, common.Address{}, nil, err
	}
	amount, ok := new(big.Int).SetString(amountArg, 10)
	if !ok || amount.Sign() <= 0 {
		return common.Address{}, common.Address{}, nil, errors.Errorf("invalid amount %q", amountArg)
	}
	return tokenIn, tokenOut, amount, nil
}

func runSwap(cmd *cobra.Command, args []string) error {
	cfg, svc, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tokenIn, tokenOut, amount, err := parsePair(cfg, args[0], args[1], args[2])
	if err != nil {
		return err
	}

	opts := ekubo.SwapOptions{Amount: amount}
	if cmd.Flags().Changed("is-token1") {
		isToken1, _ := cmd.Flags().GetBool("is-token1")
		opts.IsToken1 = &isToken1
	}
	if limitStr, _ := cmd.Flags().GetString("sqrt-ratio-limit"); limitStr != "" {
		limit, ok := new(big.Int).SetString(limitStr, 10)
		if !ok {
			return errors.Errorf("invalid sqrt-ratio-limit %q", limitStr)
		}
		opts.SqrtRatioLimit = limit
	}
	if skipStr, _ := cmd.Flags().GetString("skip-ahead"); skipStr != "" {
		skip, ok := new(big.Int).SetString(skipStr, 10)
		if !ok || skip.Sign() < 0 {
			return errors.Errorf("invalid skip-ahead %q", skipStr)
		}
		opts.SkipAhead = skip
	}

	handle, err := svc.SubmitSwap(cmd.Context(), tokenIn, tokenOut, opts)
	if err != nil {
		return err
	}
	fmt.Println(handle.ID)
	return nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, svc, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tokenIn, tokenOut, amount, err := parsePair(cfg, args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Println(svc.EstimateGas(cmd.Context(), tokenIn, tokenOut, ekubo.SwapOptions{Amount: amount}))
	return nil
}

func accountArg(cfg *config.Config, args []string) (common.Address, error) {
	if len(args) < 2 {
		return cfg.AccountAddress(), nil
	}
	if !common.IsHexAddress(args[1]) {
		return common.Address{}, errors.Errorf("invalid account %q", args[1])
	}
	return common.HexToAddress(args[1]), nil
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, svc, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	token, err := cfg.ResolveToken(args[0])
	if err != nil {
		return err
	}
	account, err := accountArg(cfg, args)
	if err != nil {
		return err
	}

	balance, err := svc.BalanceOf(cmd.Context(), token, account)
	if err != nil {
		return err
	}
	fmt.Println(balance.String())
	return nil
}

func runAllowance(cmd *cobra.Command, args []string) error {
	cfg, svc, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	token, err := cfg.ResolveToken(args[0])
	if err != nil {
		return err
	}
	owner, err := accountArg(cfg, args)
	if err != nil {
		return err
	}

	allowance, err := svc.Allowance(cmd.Context(), token, owner)
	if err != nil {
		return err
	}
	fmt.Println(allowance.String())
	return nil
}

func runParams(cmd *cobra.Command, _ []string) error {
	_, svc, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	params, err := svc.ContractParameters(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("owner: %s\ncore: %s\npaused: %v\n", params.Owner, params.Core, params.Paused)
	return nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	_, svc, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	err = svc.Subscribe(ekubo.EventSwapped, func(ev ekubo.SwapEvent) {
		direction := "token0->token1"
		if ev.IsToken1 {
			direction = "token1->token0"
		}
		fmt.Printf("block %d tx %s account %s %s amount %s\n",
			ev.BlockNumber, ev.TxHash, ev.Account, direction, ev.Amount)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return svc.Unsubscribe(ekubo.EventSwapped)
}
