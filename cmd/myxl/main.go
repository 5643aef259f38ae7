// myxl is an interactive terminal client for an XL Axiata account: quota
// inspection, package browsing and purchase, and local account management.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"myxl/internal/config"
)

var (
	verbose bool
	cfgPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "myxl",
	Short: "Terminal client for XL Axiata accounts",
	Long: `myxl inspects and manages an XL Axiata subscription from the terminal:
balance and quota health, package browsing by family, purchases over
balance / QRIS / e-wallet, and multi-account switching.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.runMainMenu(cmd.Context())
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show balance and overall data quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.showDashboard(cmd.Context())
	},
}

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "List active packages and their quotas",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.showQuotas(cmd.Context())
	},
}

var packageCmd = &cobra.Command{
	Use:   "package [option-code]",
	Short: "Show one package's detail and purchase actions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.showPackageDetail(cmd.Context(), args[0])
	},
}

var familyCmd = &cobra.Command{
	Use:   "family [family-code]",
	Short: "Browse a package family's options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.browseFamily(cmd.Context(), args[0])
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage stored accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.manageAccounts(cmd.Context())
	},
}

var accountsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account from pasted tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.addAccount()
	},
}

func buildApp() (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, logger)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file path")

	accountsCmd.AddCommand(accountsAddCmd)
	rootCmd.AddCommand(balanceCmd, quotaCmd, packageCmd, familyCmd, accountsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
