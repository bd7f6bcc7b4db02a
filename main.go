package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"claimstat/app"
	"claimstat/internal"
	"claimstat/internal/config"
)

func main() {
	// Load .env if present; environment variables win over defaults
	if err := godotenv.Load(); err == nil {
		internal.DefaultLogger.Debug("loaded configuration from .env")
	}

	var (
		dataDir    string
		figuresDir string
		outputDir  string
		seed       int64
		trials     int
	)

	rootCmd := &cobra.Command{
		Use:   "claimstat",
		Short: "Descriptive statistics and hypothesis tests over claims and revenue tables",
		Long: `claimstat loads the claims and monthly-revenue tables, computes summary
statistics and a grouped frequency distribution, renders histogram, box plot
and scatterplot figures, runs Welch's t-test, one-way ANOVA and a chi-square
test of independence, and writes every result to flat files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// CLI flags override environment configuration
			if cmd.Flags().Changed("data-dir") {
				cfg.Paths.DataDir = dataDir
				cfg.Paths.ClaimsFile = filepath.Join(dataDir, "claims.csv")
				cfg.Paths.RevenueFile = filepath.Join(dataDir, "revenue_monthly.csv")
			}
			if cmd.Flags().Changed("figures-dir") {
				cfg.Paths.FiguresDir = figuresDir
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Paths.OutputDir = outputDir
			}
			if cmd.Flags().Changed("seed") {
				cfg.Run.Seed = seed
			}
			if cmd.Flags().Changed("trials") {
				cfg.Run.Trials = trials
			}

			pipeline := app.NewPipeline(cfg, internal.DefaultLogger)
			return pipeline.Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory holding claims.csv and revenue_monthly.csv")
	rootCmd.Flags().StringVar(&figuresDir, "figures-dir", "figures", "directory for chart artifacts")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "outputs", "directory for numeric result files")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "random seed for the probability simulator")
	rootCmd.Flags().IntVar(&trials, "trials", 10000, "trial count for the probability simulator")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
