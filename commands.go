package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/export"
	"cpu-scheduler/internal/history"
	"cpu-scheduler/internal/history/sqlite"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// GlobalFlags holds persistent flags shared by every command.
type GlobalFlags struct {
	ConfigPath string
}

// SimulateFlags holds flags for the simulate command.
type SimulateFlags struct {
	File          string
	Algorithm     string
	TimeQuantum   int
	AgingInterval int
	ExportPath    string
	Gantt         bool
}

func buildRoot() *cobra.Command {
	globalFlags := &GlobalFlags{}

	root := &cobra.Command{
		Use:   "scheduler",
		Short: "CPU scheduling simulator",
		Long: `Scheduler simulates FCFS, SJF, SRT, Round Robin and MLFQ scheduling over a
set of processes and reports per-process timings and a Gantt timeline.

Examples:
  scheduler simulate --file input.csv --algorithm rr --quantum 3
  scheduler simulate --file input.csv --algorithm all --export results.csv
  scheduler serve --config config.yaml`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&globalFlags.ConfigPath, "config", "", "path to YAML config file (optional)")

	root.AddCommand(
		createSimulateCommand(globalFlags, &SimulateFlags{}),
		createServeCommand(globalFlags),
	)
	return root
}

func createSimulateCommand(globalFlags *GlobalFlags, flags *SimulateFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scheduling policy over processes from a CSV file",
		Long: `Load processes from a CSV file (pid,arrival_time,burst_time,priority), run the
chosen policy and print the result table and Gantt chart.

Use --algorithm all to compare every policy on the same input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(globalFlags.ConfigPath)
			if err != nil {
				return err
			}
			log, closer, err := logger.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()
			slog.SetDefault(log)

			// Only absent flags take the configured values; an explicit 0 is
			// passed through and rejected by the policy.
			if !cmd.Flags().Changed("quantum") {
				flags.TimeQuantum = cfg.RoundRobinTimeQuantum
			}
			if !cmd.Flags().Changed("aging") {
				flags.AgingInterval = cfg.MultilevelFeedbackQueueAgingInterval
			}
			return runSimulate(cmd.OutOrStdout(), *flags)
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "CSV file with the processes")
	cmd.Flags().StringVarP(&flags.Algorithm, "algorithm", "a", "fcfs", "fcfs, sjf, srt, rr, mlfq or all")
	cmd.Flags().IntVar(&flags.TimeQuantum, "quantum", 0, "round robin time quantum (default from config)")
	cmd.Flags().IntVar(&flags.AgingInterval, "aging", 0, "mlfq aging interval (default from config)")
	cmd.Flags().StringVarP(&flags.ExportPath, "export", "o", "", "write the results as CSV to this path")
	cmd.Flags().BoolVar(&flags.Gantt, "gantt", true, "print the Gantt chart")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSimulate(out io.Writer, flags SimulateFlags) error {
	processes, err := loader.LoadFile(flags.File)
	if err != nil {
		return err
	}
	quantum, aging := flags.TimeQuantum, flags.AgingInterval

	var results []schedulers.Result
	if strings.EqualFold(flags.Algorithm, "all") {
		if results, err = schedulers.CompareAll(processes, quantum, aging); err != nil {
			return err
		}
	} else {
		algorithm, err := schedulers.ParseAlgorithm(flags.Algorithm)
		if err != nil {
			return err
		}
		policy := schedulers.Policy{Algorithm: algorithm, TimeQuantum: quantum, AgingInterval: aging}
		result, err := policy.Schedule(processes)
		if err != nil {
			return err
		}
		results = []schedulers.Result{result}
	}

	all := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response := schedulers.GenerateResponse(result)
		all = append(all, response)

		title := policyTitle(result.Policy)
		render.Table(out, title, response)
		if flags.Gantt {
			if err := render.Gantt(out, response.Timeline); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out)
		}

		if flags.ExportPath != "" {
			path := flags.ExportPath
			if len(results) > 1 {
				path = exportPathFor(flags.ExportPath, result.Policy.Algorithm)
			}
			if err := export.WriteFile(path, title, response); err != nil {
				return err
			}
			slog.Info("exported results", slog.String("algorithm", response.Algorithm), slog.String("path", path))
		}
	}

	if len(all) > 1 {
		render.Comparison(out, all)
	}
	return nil
}

func policyTitle(p schedulers.Policy) string {
	switch p.Algorithm {
	case schedulers.RoundRobin:
		return fmt.Sprintf("%s (quantum %d)", p.Algorithm.Title(), p.TimeQuantum)
	case schedulers.MultilevelFeedbackQueue:
		return fmt.Sprintf("%s (aging interval %d)", p.Algorithm.Title(), p.AgingInterval)
	}
	return p.Algorithm.Title()
}

// exportPathFor derives results-rr.csv style names when several policies are
// exported at once.
func exportPathFor(path string, algorithm schedulers.Algorithm) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + algorithm.String() + ext
}

func createServeCommand(globalFlags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(globalFlags.ConfigPath)
			if err != nil {
				return err
			}
			log, closer, err := logger.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()
			slog.SetDefault(log)

			var store history.Store
			if cfg.History.DSN != "" {
				s, err := sqlite.New(cfg.History.DSN)
				if err != nil {
					return fmt.Errorf("open history store: %w", err)
				}
				defer func() { _ = s.Close() }()
				store = s
			}

			app, err := newServerApp(cfg, store, log)
			if err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sig)
			go func() {
				<-sig
				log.Info("shutting down")
				_ = app.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			log.Info("scheduler api listening", slog.String("addr", addr), slog.Bool("history", store != nil))
			if err := app.Listen(addr); err != nil && !errors.Is(err, os.ErrClosed) {
				return err
			}
			return nil
		},
	}
}

func newServerApp(cfg *config.SchedulerConfig, store history.Store, log *slog.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	if cfg.Metrics.Enabled {
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(metrics.Handler()))
	}

	api.Register(app.Group("/api"), api.NewSchedulerHandlerImpl(cfg, store, log))
	return app, nil
}
