package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/neurosim/internal/config"
	"github.com/san-kum/neurosim/internal/coupling"
	"github.com/san-kum/neurosim/internal/experiment"
	"github.com/san-kum/neurosim/internal/filters"
	"github.com/san-kum/neurosim/internal/optim"
	"github.com/san-kum/neurosim/internal/spectral"
	"github.com/san-kum/neurosim/internal/store"
	"github.com/san-kum/neurosim/internal/viz"
)

var (
	dataDir    string
	connectome string
	regions    int
	g          float64
	dt         float64
	duration   float64
	warmup     float64
	tr         float64
	sigma      float64
	seed       int64
	subjects   int
	integrator string
	autoFIC    bool
	gamma      float64
	bandLow    float64
	bandHigh   float64
	configFile string
	preset     string
	region     int
	empirical  string
	gMin       float64
	gMax       float64
	gStep      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neurosim",
		Short: "whole-brain neural-mass simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".neurosim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run simulation with live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a region's recorded series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&region, "region", 0, "region index to plot")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "narrowband power spectrum and dominant frequencies",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSpectrum,
	}
	spectrumCmd.Flags().IntVar(&region, "region", 0, "region index to plot")
	spectrumCmd.Flags().Float64Var(&bandLow, "band-low", config.DefaultBandLow, "band-pass low cut [Hz]")
	spectrumCmd.Flags().Float64Var(&bandHigh, "band-high", config.DefaultBandHigh, "band-pass high cut [Hz]")

	fitCmd := &cobra.Command{
		Use:   "fit [model]",
		Short: "grid-search global coupling against empirical peaks",
		Args:  cobra.ExactArgs(1),
		RunE:  fitCoupling,
	}
	addSimFlags(fitCmd)
	fitCmd.Flags().StringVar(&empirical, "empirical", "", "CSV of empirical per-region dominant frequencies")
	fitCmd.Flags().Float64Var(&gMin, "g-min", 0.5, "lowest coupling candidate")
	fitCmd.Flags().Float64Var(&gMax, "g-max", 3.0, "highest coupling candidate")
	fitCmd.Flags().Float64Var(&gStep, "g-step", 0.25, "coupling grid step")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models and integrators",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("models:")
			for _, m := range experiment.ListModels() {
				fmt.Printf("  %s\n", m)
			}
			fmt.Println("integrators:")
			for _, i := range experiment.ListIntegrators() {
				fmt.Printf("  %s\n", i)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, spectrumCmd, fitCmd, exportCmd, presetsCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&connectome, "connectome", "", "connectome CSV (synthetic if empty)")
	cmd.Flags().IntVar(&regions, "regions", config.DefaultRegions, "region count for synthetic connectome")
	cmd.Flags().Float64Var(&g, "g", config.DefaultG, "global coupling strength")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [ms]")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration [ms]")
	cmd.Flags().Float64Var(&warmup, "warmup", config.DefaultWarmup, "discarded transient [ms]")
	cmd.Flags().Float64Var(&tr, "tr", config.DefaultTR, "sampling interval [s]")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "noise amplitude")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&subjects, "subjects", 1, "number of virtual subjects")
	cmd.Flags().StringVar(&integrator, "integrator", "euler_maruyama", "integrator")
	cmd.Flags().BoolVar(&autoFIC, "auto-fic", false, "auto-tune feedback inhibition gain (deco2018)")
	cmd.Flags().Float64Var(&gamma, "gamma", 1.0, "plasticity learning rate (naskar2021)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Model = model
	if cmd.Flags().Changed("g") || cfg.G == 0 {
		cfg.G = g
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("warmup") {
		cfg.Warmup = warmup
	}
	if cmd.Flags().Changed("tr") {
		cfg.TR = tr
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("subjects") {
		cfg.Subjects = subjects
	}
	if cmd.Flags().Changed("regions") {
		cfg.Regions = regions
	}
	if cmd.Flags().Changed("auto-fic") {
		cfg.ModelParams.AutoFIC = autoFIC
	}
	if cmd.Flags().Changed("gamma") {
		cfg.ModelParams.Gamma = gamma
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func loadWeights(cfg *config.Config) ([][]float64, error) {
	if connectome != "" {
		return store.LoadConnectome(connectome)
	}
	return store.SyntheticConnectome(cfg.Regions, cfg.Seed), nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	weights, err := loadWeights(cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s over %d regions...\n", cfg.Model, len(weights))
	start := time.Now()

	exp := experiment.New(cfg, weights)
	result, series, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(store.RunMetadata{
		Model:      cfg.Model,
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		TR:         cfg.TR,
		G:          cfg.G,
		Integrator: cfg.Integrator,
		Metrics:    result.Metrics,
	}, result.Times, series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d, samples: %d\n", result.StepsTaken, result.Samples)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	weights, err := loadWeights(cfg)
	if err != nil {
		return err
	}

	model, err := experiment.BuildModel(cfg, weights)
	if err != nil {
		return err
	}
	stepper, err := experiment.BuildStepper(cfg, model, cfg.Seed)
	if err != nil {
		return err
	}
	cpl := coupling.NewLinear(weights, cfg.G, model.CouplingVars())

	p := tea.NewProgram(viz.NewModel(model, cpl, stepper, len(weights), cfg.Dt))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tG\tINTEG\tREGIONS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fms\t%.2fms\t%.2f\t%s\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.G,
			run.Integrator,
			run.Regions,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if region < 0 || region >= len(series) {
		return fmt.Errorf("region %d out of range (have %d)", region, len(series))
	}

	fmt.Printf("run: %s\nmodel: %s\nsamples: %d\n\n", meta.ID, meta.Model, len(series[region]))
	graph := asciigraph.Plot(series[region],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("region %d excitatory rate [Hz]", region)),
	)
	fmt.Println(graph)
	return nil
}

func analyzeSpectrum(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	bpf := filters.NewButterworth(meta.TR, bandLow, bandHigh)
	power := spectral.FilterPowerSpectra(series, meta.TR, bpf)
	peaks := spectral.DominantFrequencies(series, meta.TR, bpf)

	if region < 0 || region >= len(series) {
		return fmt.Errorf("region %d out of range (have %d)", region, len(series))
	}

	col := make([]float64, len(power))
	for k := range power {
		col[k] = power[k][region]
	}
	fmt.Printf("run: %s (band %.3f-%.3f Hz)\n\n", meta.ID, bandLow, bandHigh)
	graph := asciigraph.Plot(col,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("region %d power spectrum", region)),
	)
	fmt.Println(graph)

	fmt.Println("\ndominant frequency per region [Hz]:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for r, f := range peaks {
		fmt.Fprintf(w, "  r%d\t%.4f\n", r, f)
	}
	return w.Flush()
}

func fitCoupling(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	weights, err := loadWeights(cfg)
	if err != nil {
		return err
	}
	if empirical == "" {
		return fmt.Errorf("--empirical is required")
	}
	peaks, err := loadVector(empirical)
	if err != nil {
		return err
	}
	if len(peaks) != len(weights) {
		return fmt.Errorf("empirical peaks: got %d values for %d regions", len(peaks), len(weights))
	}

	bpf := filters.NewButterworth(cfg.TR, cfg.Band.Low, cfg.Band.High)
	fit := optim.NewCouplingFit(gMin, gMax, gStep)

	fmt.Printf("fitting g in [%.2f, %.2f] step %.2f...\n", gMin, gMax, gStep)
	bestG, bestScore, err := fit.Fit(context.Background(), cfg, weights, peaks, bpf)
	if err != nil {
		return err
	}
	fmt.Printf("best g: %.3f (mse %.6g)\n", bestG, bestScore)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	data := struct {
		store.RunMetadata
		Times  []float64   `json:"times"`
		Series [][]float64 `json:"series"`
	}{*meta, times, series}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func loadVector(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []float64
	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == ' ' || r == '\t'
	})
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}
