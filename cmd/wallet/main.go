package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kelsos/sui-wallet/internal/client"
	"github.com/kelsos/sui-wallet/internal/config"
	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/services"
	"github.com/kelsos/sui-wallet/internal/sui"
	"github.com/kelsos/sui-wallet/internal/transfer"
	"github.com/kelsos/sui-wallet/internal/tui"
	"github.com/kelsos/sui-wallet/internal/units"
	"github.com/kelsos/sui-wallet/internal/utils"
	"github.com/kelsos/sui-wallet/internal/wallet"
)

type app struct {
	cfg       *config.Config
	chain     *sui.Client
	connector *wallet.Connector
	deps      tui.Deps
}

func newApp(cfg *config.Config) *app {
	chain := sui.NewClient(cfg)
	connector := wallet.NewConnector(cfg, chain)
	backend := client.NewAPIClient(cfg)

	return &app{
		cfg:       cfg,
		chain:     chain,
		connector: connector,
		deps: tui.Deps{
			Connector: connector,
			Account:   services.NewAccountService(connector, chain, wallet.NewDetector()),
			Address:   services.NewAddressLookupService(backend, cfg.ItemsPerPage),
			Object:    services.NewObjectLookupService(backend, cfg.ObjectID),
			Transfer:  transfer.NewService(cfg, chain, connector),
		},
	}
}

func (a *app) mustConnect(ctx context.Context) *models.Account {
	account, err := a.connector.Connect(ctx)
	if err != nil {
		logger.Fatal("Failed to connect wallet: %v", err)
	}
	return account
}

func printAPIError(apiErr *models.APIError) {
	fmt.Println(apiErr.Error)
	if apiErr.HasDetails() {
		fmt.Println(string(apiErr.Details))
	}
}

func withUnit(balance string) string {
	if balance == services.BalanceError {
		return balance
	}
	return balance + " SUI"
}

func main() {
	loaded := utils.LoadEnvironment()

	cfg := config.NewConfig()
	cfg.LoadFromEnvironment()

	var a *app

	rootCmd := &cobra.Command{
		Use:   "sui-wallet",
		Short: "A terminal wallet for Sui",
		Long:  `sui-wallet connects a local Sui key, queries balances and objects through the balance backend and sends SUI.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// the TUI owns the terminal, so it logs to a file instead
			if cmd.Parent() == nil {
				if err := logger.InitFileOnly(); err != nil {
					fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
					os.Exit(1)
				}
			} else {
				logger.Init()
			}

			for _, path := range loaded {
				logger.Debug("Loaded environment from %s", path)
			}

			explicitRPC := cmd.Flags().Changed("rpc-url") || os.Getenv("SUI_RPC_URL") != ""
			if err := wallet.ResolveRPC(cfg, explicitRPC); err != nil {
				logger.Fatal("Failed to read client config: %v", err)
			}

			if err := cfg.Validate(); err != nil {
				logger.Fatal("Invalid configuration: %v", err)
			}
			a = newApp(cfg)
		},
		Run: func(cmd *cobra.Command, args []string) {
			defer logger.Close()

			if _, err := a.connector.Connect(cmd.Context()); err != nil {
				logger.Warn("Wallet not connected: %v", err)
			}

			monitor := tui.NewApp(a.deps)
			if err := monitor.Start(); err != nil {
				logger.Fatal("Failed to start TUI: %v", err)
			}
			if err := monitor.Run(); err != nil {
				logger.Fatal("TUI error: %v", err)
			}
		},
	}

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Show the connected account and its SUI balance",
		Run: func(cmd *cobra.Command, args []string) {
			a.mustConnect(cmd.Context())
			snapshot := a.deps.Account.Snapshot(cmd.Context())
			fmt.Printf("Network: %s\nAddress: %s\nBalance: %s\n", snapshot.ChainName, snapshot.Address, withUnit(snapshot.Balance))
		},
	}

	var page, perPage int
	balanceCmd := &cobra.Command{
		Use:   "balance <address>",
		Short: "Query the balance of an address through the backend",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			lookup := a.deps.Address
			result, ran := lookup.Lookup(cmd.Context(), args[0])
			if !ran {
				logger.Fatal("Address cannot be empty")
			}
			if result.Error != nil {
				printAPIError(result.Error)
				os.Exit(1)
			}

			if perPage > 0 {
				lookup.SetItemsPerPage(perPage)
			}
			state := lookup.GoTo(page)

			fmt.Printf("Address: %s\nSUI: %s\n", result.Balance.Address, result.Balance.SuiBalance)
			for _, coin := range lookup.Page() {
				fmt.Printf("  %-12s %s\n", coin.DisplayName(), coin.Balance)
			}
			if state.TotalPages() > 1 {
				fmt.Printf("Page %d of %d (%d coins)\n", state.CurrentPage, state.TotalPages(), state.TotalItems)
			}
		},
	}
	balanceCmd.Flags().IntVarP(&page, "page", "p", 1, "Page of the coin list to show")
	balanceCmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "Coins per page (default: SUI_ITEMS_PER_PAGE)")

	objectCmd := &cobra.Command{
		Use:   "object",
		Short: "Fetch the configured object through the backend",
		Run: func(cmd *cobra.Command, args []string) {
			result := a.deps.Object.Fetch(cmd.Context())
			if result.Error != nil {
				printAPIError(result.Error)
				os.Exit(1)
			}
			fmt.Printf("Admin: %s\nID: %s\nBalance: %s\n", result.Fields.Admin, result.Fields.ID, result.Fields.Balance)
		},
	}

	var to, amount string
	var dryRun bool
	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send SUI from the connected account",
		Run: func(cmd *cobra.Command, args []string) {
			a.mustConnect(cmd.Context())
			req := transfer.Request{Recipient: to, Amount: amount}
			svc := a.deps.Transfer

			if dryRun {
				gas, err := svc.DryRun(cmd.Context(), req)
				if err != nil {
					logger.Fatal("Dry run failed: %v", err)
				}
				fmt.Printf("Estimated gas: %s SUI\nRecommended reserve: %s SUI\n",
					units.FormatSui(gas), units.FormatSui(transfer.Reserve(gas)))
				return
			}

			receipt, err := svc.Transfer(cmd.Context(), req)
			if err != nil {
				logger.Fatal("Transaction failed: %v", err)
			}
			fmt.Printf("Digest: %s\nExplorer: %s\n", receipt.Digest, receipt.ExplorerURL)

			if block, err := svc.Confirm(cmd.Context(), receipt.Digest); err != nil {
				logger.Warn("Transaction not confirmed yet: %v", err)
			} else {
				fmt.Printf("Checkpoint: %s\n", block.Checkpoint)
			}

			account, _ := a.connector.CurrentAccount()
			fmt.Printf("Balance: %s\n", withUnit(a.deps.Account.Balance(cmd.Context(), account.Address)))
		},
	}
	transferCmd.Flags().StringVar(&to, "to", "", "Recipient address")
	transferCmd.Flags().StringVar(&amount, "amount", "", "Amount in SUI")
	transferCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only estimate gas")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("amount")

	walletsCmd := &cobra.Command{
		Use:   "wallets",
		Short: "List supported wallet extensions and whether they are installed",
		Run: func(cmd *cobra.Command, args []string) {
			guide := wallet.BuildGuide(wallet.NewDetector())
			if !guide.ChromeInstalled {
				fmt.Println("Chrome was not found. The wallets below are Chrome extensions.")
			}
			for _, entry := range guide.Entries {
				status := "not installed"
				if entry.Installed {
					status = "installed"
				}
				fmt.Printf("%-16s %-14s %s\n", entry.Name, status, entry.Link)
			}
		},
	}

	// Add flags
	rootCmd.PersistentFlags().StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Balance backend base URL")
	rootCmd.PersistentFlags().StringVar(&cfg.RPCURL, "rpc-url", cfg.RPCURL, "Sui fullnode JSON-RPC URL")
	rootCmd.PersistentFlags().StringVar(&cfg.ActiveEnv, "env", cfg.ActiveEnv, "Network the wallet reports (default: client.yaml active_env)")
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigDir, "config-dir", cfg.ConfigDir, "Sui client config directory")
	rootCmd.PersistentFlags().Uint64Var(&cfg.GasBudget, "gas-budget", cfg.GasBudget, "Gas budget in MIST for built transactions")

	// Add subcommands
	rootCmd.AddCommand(accountCmd, balanceCmd, objectCmd, transferCmd, walletsCmd)

	// Execute the root command
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
