// Command setcachebench drives a synthetic workload against a setcache.Cache
// and reports hit-rate and throughput, optionally exporting live counters
// over Prometheus while it runs.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kvassoc/setcache"
	"github.com/kvassoc/setcache/setcachestats"
)

var (
	cfgFile string
	flags   = defaultConfig()
	policy  = &policyValue{s: flags.Policy}
)

var rootCmd = &cobra.Command{
	Use:   "setcachebench",
	Short: "Benchmark a setcache.Cache under a synthetic workload",
	RunE:  runBench,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to a TOML config file (flags below override it)")
	rootCmd.Flags().IntVar(&flags.Buckets, "buckets", flags.Buckets, "number of buckets (S)")
	rootCmd.Flags().IntVar(&flags.Slots, "slots", flags.Slots, "slots per bucket (N)")
	rootCmd.Flags().Var(policy, "policy", "eviction policy: lru, mru, or smallest")
	rootCmd.Flags().IntVar(&flags.Ops, "ops", flags.Ops, "number of operations to run")
	rootCmd.Flags().IntVar(&flags.KeySpace, "key-space", flags.KeySpace, "number of distinct keys sampled from")
	rootCmd.Flags().BoolVar(&flags.Metrics, "metrics", flags.Metrics, "serve Prometheus metrics while the run is in progress")
	rootCmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "listen address for --metrics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := flags
	cfg.Policy = policy.s
	if cfgFile != "" {
		fileCfg, err := loadConfigFile(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if !cmd.Flags().Changed("buckets") {
			cfg.Buckets = fileCfg.Buckets
		}
		if !cmd.Flags().Changed("slots") {
			cfg.Slots = fileCfg.Slots
		}
		if !cmd.Flags().Changed("policy") {
			cfg.Policy = fileCfg.Policy
		}
		if !cmd.Flags().Changed("ops") {
			cfg.Ops = fileCfg.Ops
		}
		if !cmd.Flags().Changed("key-space") {
			cfg.KeySpace = fileCfg.KeySpace
		}
		if !cmd.Flags().Changed("metrics") {
			cfg.Metrics = fileCfg.Metrics
		}
		if !cmd.Flags().Changed("addr") {
			cfg.Addr = fileCfg.Addr
		}
	}

	factory, err := invalidatorFactory(cfg.Policy)
	if err != nil {
		return err
	}
	c, err := setcache.New[int, int](cfg.Buckets, cfg.Slots, setcache.WithInvalidatorFactory[int, int](factory))
	if err != nil {
		return fmt.Errorf("building cache: %w", err)
	}
	log.Info("cache built",
		zap.Int("buckets", cfg.Buckets), zap.Int("slots", cfg.Slots), zap.String("policy", cfg.Policy))

	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		metrics := setcachestats.NewMetrics(reg)
		setcachestats.NewCollector("setcachebench", metrics, c).Attach()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: cfg.Addr, Handler: mux}
		go func() {
			log.Info("serving metrics", zap.String("addr", cfg.Addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
		defer srv.Close()
	}

	res := run(c, cfg.Ops, cfg.KeySpace, log)
	fmt.Println(res.String())
	log.Info("run complete", zap.Int("final_size", c.Size()))
	return nil
}
