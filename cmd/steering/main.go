package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	schemaFile string
	ticks      int64
	seed       uint64
	recordFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "steering",
		Short:        "boid steering behaviors driven by an actor world",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "json schema for the config (embedded one if empty)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().Int64Var(&ticks, "ticks", 600, "number of ticks to run, 0 runs until interrupted")
	runCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, overrides the config")
	runCmd.Flags().StringVar(&recordFile, "record", "", "write snapshots to this file as ndjson")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logs from every boid")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config as yaml",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [recording]",
		Short: "report on a recording made with run --record",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRecording,
	}

	rootCmd.AddCommand(runCmd, configCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*simulation.Config, error) {
	if configFile == "" {
		return simulation.DefaultConfig(), nil
	}
	return simulation.LoadConfig(configFile, schemaFile)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := golog.InfoLevel
	if verbose {
		level = golog.DebugLevel
	}
	system, err := actor.NewActorSystem("BoidSteering",
		actor.WithLogger(golog.New(level, os.Stderr)),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(context.Background()) }()

	runner, err := simulation.NewRunner(ctx, cfg, system)
	if err != nil {
		return err
	}

	var recorder *simulation.Recorder
	if recordFile != "" {
		f, err := os.Create(recordFile)
		if err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}
		defer f.Close()
		recorder = simulation.NewRecorder(f)
	}

	var summaries []simulation.Summary
	err = runner.Run(ctx, ticks, func(snapshot *pb.Snapshot) error {
		summary := simulation.Summarize(snapshot)
		summaries = append(summaries, summary)
		if summary.Tick%int64(cfg.TicksPerSecond) == 0 {
			system.Logger().Info(summary.String())
		}
		if recorder != nil {
			return recorder.Record(snapshot)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if recorder != nil {
		if err := recorder.Flush(); err != nil {
			return fmt.Errorf("failed to flush recording: %w", err)
		}
		system.Logger().Infof("recorded %d snapshots to %s", recorder.Written(), recordFile)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport("boid steering run", summaries))
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func replayRecording(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	snapshots, err := simulation.ReadSnapshots(f)
	if err != nil {
		return err
	}
	summaries := make([]simulation.Summary, 0, len(snapshots))
	for _, s := range snapshots {
		summaries = append(summaries, simulation.Summarize(s))
	}
	fmt.Fprint(cmd.OutOrStdout(), renderReport("replay "+args[0], summaries))
	return nil
}
