package irisctl

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"irisd/pkg/types"
)

// Config carries the persistent CLI options.
type Config struct {
	Server  string
	Timeout time.Duration
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// BuildRootCmd constructs the Cobra command tree for irisctl.
func BuildRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "irisctl",
		Short:         "Ops client for a running irisd server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Server, "server", envOr("IRISCTL_SERVER", "http://127.0.0.1:8080"), "Base URL of the irisd server (defaults IRISCTL_SERVER)")
	root.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "Request timeout")

	root.AddCommand(newPredictCmd(cfg))
	root.AddCommand(newModelsCmd(cfg))
	root.AddCommand(newStatusCmd(cfg))
	root.AddCommand(newHealthCmd(cfg))
	return root
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func newPredictCmd(cfg *Config) *cobra.Command {
	var (
		model       string
		sepalLength float64
		sepalWidth  float64
		petalLength float64
		petalWidth  float64
	)
	cmd := &cobra.Command{
		Use:     "predict",
		Short:   "Classify one iris measurement vector",
		Example: "  irisctl predict --sepal-length 5.1 --sepal-width 3.5 --petal-length 1.4 --petal-width 0.2",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.PredictRequest{
				Model:       model,
				SepalLength: &sepalLength,
				SepalWidth:  &sepalWidth,
				PetalLength: &petalLength,
				PetalWidth:  &petalWidth,
			}
			resp, err := NewClient(cfg.Server, cfg.Timeout).Predict(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Model id (server default when empty)")
	cmd.Flags().Float64Var(&sepalLength, "sepal-length", 0, "Sepal length in cm")
	cmd.Flags().Float64Var(&sepalWidth, "sepal-width", 0, "Sepal width in cm")
	cmd.Flags().Float64Var(&petalLength, "petal-length", 0, "Petal length in cm")
	cmd.Flags().Float64Var(&petalWidth, "petal-width", 0, "Petal width in cm")
	_ = cmd.MarkFlagRequired("sepal-length")
	_ = cmd.MarkFlagRequired("sepal-width")
	_ = cmd.MarkFlagRequired("petal-length")
	_ = cmd.MarkFlagRequired("petal-width")
	return cmd
}

func newModelsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List model artifacts known to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := NewClient(cfg.Server, cfg.Timeout).Models(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newStatusCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := NewClient(cfg.Server, cfg.Timeout).Status(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newHealthCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe server readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, ready, err := NewClient(cfg.Server, cfg.Timeout).Ready(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			if !ready {
				return fmt.Errorf("server not ready")
			}
			return nil
		},
	}
}

// Main runs the CLI and returns a process exit code.
func Main(args []string) int {
	root := BuildRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}
