package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/strange/internal/analysis"
	"github.com/san-kum/strange/internal/config"
	"github.com/san-kum/strange/internal/dynamo"
	"github.com/san-kum/strange/internal/field"
	"github.com/san-kum/strange/internal/integrators"
	"github.com/san-kum/strange/internal/sim"
	"github.com/san-kum/strange/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dataDir        string
	output         string
	totalTime      float64
	stepper        string
	params         []string
	initX          float64
	initY          float64
	initZ          float64
	configFile     string
	preset         string
	initFromConfig bool
	// lyapunov / ensemble / sweep knobs
	dt           float64
	perturbation float64
	runs         int
	sweepMin     float64
	sweepMax     float64
	sweepSteps   int
	sweepAxis    string
	transient    float64
	record       float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strange",
		Short: "strange attractor simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".strange", "data directory")

	simulateCmd := &cobra.Command{
		Use:   "simulate [attractor]",
		Short: "simulate a strange attractor",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVar(&output, "output", "image", "output mode {image|animation}")
	simulateCmd.Flags().Float64Var(&totalTime, "time", 10.0, "total simulation time (seconds)")
	simulateCmd.Flags().StringVar(&stepper, "stepper", "rk4", "stepper {rk4|euler}")
	simulateCmd.Flags().StringArrayVar(&params, "param", nil, "parameter override name=value (repeatable)")
	simulateCmd.Flags().Float64Var(&initX, "x0", 0, "initial x coordinate")
	simulateCmd.Flags().Float64Var(&initY, "y0", 0, "initial y coordinate")
	simulateCmd.Flags().Float64Var(&initZ, "z0", 0, "initial z coordinate")
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [attractor]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	lyapunovCmd.Flags().Float64Var(&totalTime, "time", 50.0, "duration")
	lyapunovCmd.Flags().Float64Var(&perturbation, "perturb", 1e-6, "initial separation")

	compareCmd := &cobra.Command{
		Use:   "compare [attractor] [stepper1] [stepper2] ...",
		Short: "compare steppers on the same attractor",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSteppers,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	compareCmd.Flags().Float64Var(&totalTime, "time", 10.0, "duration")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [attractor]",
		Short: "run perturbed trajectories concurrently and report divergence",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	ensembleCmd.Flags().Float64Var(&totalTime, "time", 20.0, "duration")
	ensembleCmd.Flags().IntVar(&runs, "runs", 4, "number of trajectories")
	ensembleCmd.Flags().Float64Var(&perturbation, "perturb", 1e-6, "initial x separation per run")

	sweepCmd := &cobra.Command{
		Use:   "sweep [attractor] [param]",
		Short: "bifurcation sweep over one parameter",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "parameter range start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1, "parameter range end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 50, "parameter values to test")
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", "z", "axis to record {x|y|z}")
	sweepCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	sweepCmd.Flags().Float64Var(&transient, "transient", 50.0, "settle time before recording")
	sweepCmd.Flags().Float64Var(&record, "record", 50.0, "recording time")

	presetsCmd := &cobra.Command{
		Use:   "presets [attractor]",
		Short: "list available presets for an attractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for attractor: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(simulateCmd, listCmd, exportCSVCmd, exportJSONCmd, analyzeCmd,
		lyapunovCmd, compareCmd, ensembleCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	attractor := strings.ToLower(args[0])

	if preset != "" {
		cfg := config.GetPreset(attractor, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(attractor))
		}
		output = cfg.Output
		totalTime = cfg.Time
		for name, val := range cfg.Params {
			params = append(params, fmt.Sprintf("%s=%g", name, val))
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		attractor = cfg.Attractor
		if !cmd.Flags().Changed("output") {
			output = cfg.Output
		}
		if !cmd.Flags().Changed("time") {
			totalTime = cfg.Time
		}
		for name, val := range cfg.Params {
			params = append(params, fmt.Sprintf("%s=%g", name, val))
		}
		if cfg.InitState != nil {
			initX, initY, initZ = cfg.InitState.X, cfg.InitState.Y, cfg.InitState.Z
			initFromConfig = true
		}
	}

	mode, err := config.ParseMode(output)
	if err != nil {
		return err
	}
	if err := mode.ValidateTime(totalTime); err != nil {
		return err
	}
	steps := mode.Steps(totalTime)

	kind, err := field.ParseKind(attractor)
	if err != nil {
		return err
	}

	opts, err := fieldOptions(cmd)
	if err != nil {
		return err
	}

	f, err := field.New(kind, opts...)
	if err != nil {
		return err
	}

	st, err := integrators.ByName(stepper)
	if err != nil {
		return err
	}

	fmt.Printf("simulating %s attractor (%s mode, dt=%g, %d steps)...\n", kind, mode, mode.Dt(), steps)
	start := time.Now()

	tr, err := sim.New(f, st).Run(context.Background(), sim.Config{TotalTime: totalTime, Steps: steps})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}

	runID, err := store.Save(storage.RunMetadata{
		Attractor: kind.String(),
		Output:    string(mode),
		Dt:        mode.Dt(),
		Time:      totalTime,
		Steps:     steps,
		Stepper:   stepper,
		Params:    f.Params(),
	}, tr)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", tr.Len())
	fmt.Println("\nbounding box:")
	for _, axis := range []dynamo.Axis{dynamo.AxisX, dynamo.AxisY, dynamo.AxisZ} {
		min, max := tr.Range(axis)
		fmt.Printf("  %s: [%.4f, %.4f]\n", axis, min, max)
	}

	return nil
}

func fieldOptions(cmd *cobra.Command) ([]field.Option, error) {
	opts := make([]field.Option, 0, len(params)+1)

	for _, p := range params {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("malformed parameter override: %q (want name=value)", p)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed parameter value in %q: %w", p, err)
		}
		opts = append(opts, field.WithParam(strings.TrimSpace(name), v))
	}

	if cmd.Flags().Changed("x0") || cmd.Flags().Changed("y0") || cmd.Flags().Changed("z0") || initFromConfig {
		opts = append(opts, field.WithInitialState(dynamo.State{X: initX, Y: initY, Z: initZ}))
	}

	return opts, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runsMeta, err := store.List()
	if err != nil {
		return err
	}

	if len(runsMeta) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tATTRACTOR\tTIME\tDURATION\tDT\tSTEPPER\tOUTPUT")

	for _, run := range runsMeta {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%s\n",
			run.ID,
			run.Attractor,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Time,
			run.Dt,
			run.Stepper,
			run.Output,
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, samples)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data")
	}

	tr := dynamo.NewTrajectory(samples)

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("attractor: %s\n\n", meta.Attractor)

	for _, axis := range []dynamo.Axis{dynamo.AxisX, dynamo.AxisY, dynamo.AxisZ} {
		freq, power := analysis.DominantFrequency(tr, axis, meta.Time)
		if freq > 0 {
			fmt.Printf("%s: dominant frequency %.3f hz (period %.3f s, power %.1f)\n", axis, freq, 1.0/freq, power)
		} else {
			fmt.Printf("%s: no dominant frequency\n", axis)
		}
	}

	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	kind, err := field.ParseKind(args[0])
	if err != nil {
		return err
	}

	f, err := field.New(kind)
	if err != nil {
		return err
	}

	lambda := analysis.LyapunovExponent(f, integrators.NewRK4(), f.InitialState(), dt, totalTime, perturbation)

	fmt.Printf("largest Lyapunov exponent for %s: %.4f\n", kind, lambda)
	if lambda > 0 {
		fmt.Println("positive exponent: trajectories diverge, the system is chaotic")
	} else {
		fmt.Println("non-positive exponent: no exponential divergence detected")
	}

	return nil
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	kind, err := field.ParseKind(args[0])
	if err != nil {
		return err
	}

	f, err := field.New(kind)
	if err != nil {
		return err
	}

	steps := int(totalTime / dt)
	cfg := sim.Config{TotalTime: totalTime, Steps: steps}

	fmt.Printf("comparing steppers for %s (dt=%.4f, duration=%.1fs)\n\n", kind, dt, totalTime)
	fmt.Printf("%-10s  %12s  %12s  %12s  %10s\n", "stepper", "final_x", "final_y", "final_z", "time_ms")
	fmt.Println(strings.Repeat("-", 64))

	for _, name := range args[1:] {
		st, err := integrators.ByName(name)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		tr, err := sim.New(f, st).Run(context.Background(), cfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		last := tr.Last()
		fmt.Printf("%-10s  %12.6f  %12.6f  %12.6f  %10.2f\n",
			name, last.X, last.Y, last.Z, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	kind, err := field.ParseKind(args[0])
	if err != nil {
		return err
	}

	f, err := field.New(kind)
	if err != nil {
		return err
	}

	steps := int(totalTime / dt)
	base := sim.New(f, integrators.NewRK4())
	ensemble := sim.NewEnsemble(base, runs, perturbation)

	fmt.Printf("running %d perturbed %s trajectories (dx=%g, dt=%g, %.1fs)...\n",
		runs, kind, perturbation, dt, totalTime)
	start := time.Now()

	trajectories, err := ensemble.Run(context.Background(), sim.Config{TotalTime: totalTime, Steps: steps})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	sep := analysis.Divergence(trajectories[0], trajectories[len(trajectories)-1])

	maxSep := 0.0
	crossed := -1.0
	for i, d := range sep {
		if d > maxSep {
			maxSep = d
		}
		if crossed < 0 && d > 1.0 {
			crossed = trajectories[0].At(i).T
		}
	}

	fmt.Printf("final separation between first and last run: %.6f\n", sep[len(sep)-1])
	fmt.Printf("max separation: %.6f\n", maxSep)
	if crossed >= 0 {
		fmt.Printf("separation exceeded 1.0 at t=%.2fs\n", crossed)
	} else {
		fmt.Println("separation never exceeded 1.0")
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	kind, err := field.ParseKind(args[0])
	if err != nil {
		return err
	}

	var axis dynamo.Axis
	switch strings.ToLower(sweepAxis) {
	case "x":
		axis = dynamo.AxisX
	case "y":
		axis = dynamo.AxisY
	case "z":
		axis = dynamo.AxisZ
	default:
		return fmt.Errorf("unknown axis: %s", sweepAxis)
	}

	fmt.Printf("sweeping %s.%s over [%g, %g] in %d steps...\n", kind, args[1], sweepMin, sweepMax, sweepSteps)

	points, err := analysis.BifurcationSweep(kind, integrators.NewRK4(), args[1],
		sweepMin, sweepMax, sweepSteps, axis, dt, transient, record)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tDISTINCT %s VALUES\n", strings.ToUpper(args[1]), strings.ToUpper(sweepAxis))
	for _, p := range points {
		fmt.Fprintf(w, "%.4f\t%d\n", p.Param, len(p.Values))
	}
	return w.Flush()
}
