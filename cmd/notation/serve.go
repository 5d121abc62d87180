package main

import (
	"os/signal"
	"syscall"

	"github.com/neon-law-foundation/notation/internal/cli"
	apihttp "github.com/neon-law-foundation/notation/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Serves the validation API described by /openapi.yaml, plus /healthz and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		regs, err := cli.OpenRegistries(ctx, cfg)
		if err != nil {
			return err
		}
		defer regs.Close()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		engine := cli.NewEngine(cfg, logger, regs, reg)

		handler, err := apihttp.NewHandler(engine,
			apihttp.WithLogger(logger),
			apihttp.WithGatherer(reg),
			apihttp.WithMaxBodySize(int64(cfg.MaxDocumentSize)*2),
		)
		if err != nil {
			return err
		}
		logger.Info("Starting notation server", "registry", cfg.Registry)
		return apihttp.ListenAndServe(ctx, cfg.HTTPAddr, handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default :8080)")
}
