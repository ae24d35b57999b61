package main

import (
	"context"
	"flag"

	"ekuboswap/internal/config"
	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/httpserver"
	"ekuboswap/internal/logger"
	"ekuboswap/internal/provider"
	"ekuboswap/internal/swapper"
)

var configFile = flag.String("f", "cfg/config.yaml", "the config file")

func main() {
	flag.Parse()

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("config.LoadFromFile: %v", err)
	}

	logger.Setup(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	pools, err := cfg.PoolConfigs()
	if err != nil {
		logger.Fatalf("cfg.PoolConfigs: %v", err)
	}
	registry, err := ekubo.NewRegistry(pools)
	if err != nil {
		logger.Fatalf("ekubo.NewRegistry: %v", err)
	}
	logger.Infof("pool registry loaded, pairs: %d", registry.Pairs())

	client, err := provider.NewClient(context.Background(), cfg.RPCURL, cfg.AccountAddress())
	if err != nil {
		logger.Fatalf("provider.NewClient: %v", err)
	}
	defer client.Close()

	svc := swapper.NewService(client, registry, cfg.AccountAddress(), cfg.SwapContractAddress(), swapper.Options{
		MaxFee:              cfg.MaxFeeWei(),
		FallbackGasEstimate: cfg.FallbackGasEstimate,
		PreflightChecks:     cfg.PreflightChecks,
	})
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warnf("svc.Close: %v", err)
		}
	}()

	srv, err := httpserver.New(svc, cfg)
	if err != nil {
		logger.Fatalf("httpserver.New: %v", err)
	}

	if err = srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatalf("srv.ListenAndServe: %v", err)
	}
}
