package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/core-coin/fontis/internal/assets"
	"github.com/core-coin/fontis/internal/blockchain"
	"github.com/core-coin/fontis/internal/config"
	"github.com/core-coin/fontis/internal/executor"
	"github.com/core-coin/fontis/internal/http_api"
	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/internal/notifier"
	"github.com/core-coin/fontis/internal/repository"
	"github.com/core-coin/fontis/pkg/logger"
)

// AuthHeader is the identity header stamped by the authenticating proxy.
const AuthHeader = "X-Authenticated-User"

func main() {
	app := &cli.App{
		Name:  "fontis",
		Usage: "Fontis is a token faucet and CBC20 deployment service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "postgres-user", Aliases: []string{"u"}, Usage: "Postgres user"},
			&cli.StringFlag{Name: "postgres-password", Aliases: []string{"p"}, Usage: "Postgres password"},
			&cli.StringFlag{Name: "postgres-host", Aliases: []string{"t"}, Usage: "Postgres host"},
			&cli.IntFlag{Name: "postgres-port", Aliases: []string{"P"}, Usage: "Postgres port"},
			&cli.StringFlag{Name: "postgres-db", Aliases: []string{"d"}, Usage: "Postgres database name"},
			&cli.StringFlag{Name: "rpc-url", Aliases: []string{"r"}, Usage: "Blockchain RPC URL"},
			&cli.StringFlag{Name: "network-id", Aliases: []string{"n"}, Usage: "Network ID"},
			&cli.IntFlag{Name: "api-port", Aliases: []string{"a"}, Usage: "HTTP API port"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	// Override with flags if set
	if c.IsSet("postgres-user") {
		cfg.PostgresUser = c.String("postgres-user")
	}
	if c.IsSet("postgres-password") {
		cfg.PostgresPassword = c.String("postgres-password")
	}
	if c.IsSet("postgres-host") {
		cfg.PostgresHost = c.String("postgres-host")
	}
	if c.IsSet("postgres-port") {
		cfg.PostgresPort = c.Int("postgres-port")
	}
	if c.IsSet("postgres-db") {
		cfg.PostgresDB = c.String("postgres-db")
	}
	if c.IsSet("rpc-url") {
		cfg.RPCURL = c.String("rpc-url")
	}
	if c.IsSet("network-id") {
		networkID, ok := new(big.Int).SetString(c.String("network-id"), 10)
		if ok {
			cfg.NetworkID = networkID
		}
	}
	if c.IsSet("api-port") {
		cfg.APIPort = c.Int("api-port")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := repository.NewPostgresDB(cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresHost, cfg.PostgresPort, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Initialize the two signing clients. Drips and deployments use separate
	// keys so they never contend for a nonce.
	faucetChain, err := blockchain.NewGocore(cfg.RPCURL, cfg.FaucetKey, log)
	if err != nil {
		return fmt.Errorf("failed to initialize faucet signer: %v", err)
	}
	if err := faucetChain.Run(); err != nil {
		return fmt.Errorf("failed to connect faucet signer: %v", err)
	}

	deployChain, err := blockchain.NewGocore(cfg.RPCURL, cfg.DeployKey, log)
	if err != nil {
		return fmt.Errorf("failed to initialize deploy signer: %v", err)
	}
	if err := deployChain.Run(); err != nil {
		return fmt.Errorf("failed to connect deploy signer: %v", err)
	}

	// Initialize asset host for token logos
	uploader := assets.NewUploader(cfg.AssetUploadURL, cfg.AssetCDNURL, cfg.AssetAPIKey, log)

	// Initialize award policy (orderbook lookups for drip magnification)
	award := executor.NewAwardPolicy(cfg.OrderbookURL, log)

	// Initialize operator alerts if configured
	var alerter models.Alerter
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		alerter, err = notifier.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, log)
		if err != nil {
			return fmt.Errorf("failed to initialize telegram alerter: %v", err)
		}
	}

	// Create executor and start the drain loops
	exec := executor.NewExecutor(db, faucetChain, deployChain, uploader, award, alerter, log)
	exec.Start()
	defer exec.Stop()

	// Initialize API server
	apiServer := http_api.NewHTTPServer(exec, http_api.HeaderAuth{Header: AuthHeader}, cfg.APIPort, cfg.AllowedOrigins, log)

	go apiServer.Start()

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := apiServer.Shutdown(); err != nil {
		log.Error("Failed to shut down HTTP server", "error", err)
	}

	return nil
}
