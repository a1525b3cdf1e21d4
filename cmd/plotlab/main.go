package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/san-kum/plotlab/internal/automation"
	"github.com/san-kum/plotlab/internal/config"
	"github.com/san-kum/plotlab/internal/driver"
	"github.com/san-kum/plotlab/internal/experiment"
	"github.com/san-kum/plotlab/internal/inspect"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/storage"
	"github.com/san-kum/plotlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	theme   string

	term       string
	mag        int
	inverse    bool
	width      int
	height     int
	levels     int
	outPath    string
	configFile string
	preset     string
	params     []string
	forceFlush bool
	noRecord   bool

	bins     int
	jsonOut  bool
	batchDir string
)

// main builds the command tree and exits with status 1 on any error.
func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(legacyArgs(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "plotlab",
		Short:        "device-independent plotting lab",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			if theme != "" {
				viz.SetTheme(theme)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".plotlab", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log driver selection and progress to stderr")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "terminal theme")

	runCmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "draw a demo on a plot surface",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDemo,
	}
	runCmd.Flags().StringVar(&term, "term", "", "output driver (see 'plotlab terms')")
	runCmd.Flags().IntVar(&mag, "mag", 1, "pixel magnification")
	runCmd.Flags().BoolVar(&inverse, "inv", false, "invert levels")
	runCmd.Flags().IntVar(&width, "width", 0, "surface width (demo default when 0)")
	runCmd.Flags().IntVar(&height, "height", 0, "surface height (demo default when 0)")
	runCmd.Flags().IntVar(&levels, "levels", 0, "number of levels (demo default when 0)")
	runCmd.Flags().StringVar(&outPath, "out", "", "output file for file drivers (stdout when empty)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringArrayVar(&params, "param", nil, "demo parameter key=value (repeatable)")
	runCmd.Flags().BoolVar(&forceFlush, "flush", false, "refresh interactive drivers after every point")
	runCmd.Flags().BoolVar(&noRecord, "no-record", false, "do not write a run record")

	termsCmd := &cobra.Command{
		Use:   "terms",
		Short: "list output drivers",
		Args:  cobra.NoArgs,
		RunE:  listTerms,
	}

	demosCmd := &cobra.Command{
		Use:   "demos",
		Short: "list demos",
		Args:  cobra.NoArgs,
		RunE:  listDemos,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no presets for demo: %s\n", args[0])
				return nil
			}
			items := make([]viz.Item, 0, len(names))
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				items = append(items, viz.Item{Name: name, Desc: describePreset(p)})
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.Listing("presets for "+args[0], items))
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	listCmd.Flags().BoolVar(&jsonOut, "json", false, "print records as JSON")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "summarise the levels of a rendered image",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectImage,
	}
	inspectCmd.Flags().IntVar(&bins, "bins", 32, "histogram buckets")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a YAML batch of demos",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory for relative outputs (scenario directory when empty)")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				p := config.GetPreset(cfg.Demo, preset)
				if p == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Demo))
				}
				cfg = cfg.Overlay(p)
			}
			return config.Save(args[0], cfg)
		},
	}
	configCmd.Flags().StringVar(&preset, "preset", "", "start from a mandel preset")

	rootCmd.AddCommand(runCmd, termsCmd, demosCmd, presetsCmd, listCmd, inspectCmd, batchCmd, configCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and changed flags, in that
// order, over the defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	var fileCfg *config.Config
	if configFile != "" {
		var err error
		fileCfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	demo := cfg.Demo
	if fileCfg != nil {
		demo = fileCfg.Demo
	}
	if len(args) > 0 {
		demo = args[0]
	}

	if preset != "" {
		p := config.GetPreset(demo, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(demo))
		}
		cfg = cfg.Overlay(p)
	}
	if fileCfg != nil {
		cfg = cfg.Overlay(fileCfg)
	}
	cfg.Demo = demo

	flags := cmd.Flags()
	if flags.Changed("term") {
		cfg.Term = term
	}
	if flags.Changed("mag") {
		cfg.Mag = mag
	}
	if flags.Changed("inv") {
		cfg.Inverse = inverse
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("levels") {
		cfg.Levels = levels
	}
	if flags.Changed("out") {
		cfg.Output = outPath
	}
	if flags.Changed("flush") {
		cfg.ForceFlush = forceFlush
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if len(params) > 0 {
		p, err := experiment.ParseParams(params)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Overlay(&config.Config{Params: p})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Theme != "" {
		viz.SetTheme(cfg.Theme)
	}

	demo, err := experiment.NewRegistry().Get(cfg.Demo)
	if err != nil {
		return err
	}

	ecfg := experiment.Config{
		Demo:       cfg.Demo,
		Term:       cfg.Term,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Levels:     cfg.Levels,
		Mag:        cfg.Mag,
		Inverse:    cfg.Inverse,
		ForceFlush: cfg.ForceFlush,
		Params:     experiment.Params(cfg.Params),
	}
	var f *os.File
	if cfg.Output != "" {
		f, err = os.Create(cfg.Output)
		if err != nil {
			return err
		}
		ecfg.Output = f
	} else {
		ecfg.Output = cmd.OutOrStdout()
	}

	result, err := experiment.New(ecfg, demo).Run(cmd.Context())
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	// Status goes to stderr: stdout may be carrying the image.
	status := cmd.ErrOrStderr()
	fmt.Fprintf(status, "%s on %s: %dx%d, %d levels, completed in %v\n",
		result.Demo, result.Driver, result.Width, result.Height, result.Levels,
		result.Elapsed.Round(time.Millisecond))

	if noRecord {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(result, cfg.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(status, "run id: %s\n", runID)
	return nil
}

func listTerms(cmd *cobra.Command, args []string) error {
	reg := plot.DefaultRegistry()
	def, _ := reg.Default()

	items := make([]viz.Item, 0)
	for _, name := range reg.Names() {
		e, _ := reg.Lookup(name)
		desc := driver.Description(name)
		switch {
		case def != nil && name == def.Name:
			desc += " " + viz.StatusDone.Render("[default]")
		case !e.Available():
			desc += " " + viz.StatusError.Render("[unavailable]")
		}
		items = append(items, viz.Item{Name: name, Desc: desc})
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.Listing("output drivers", items))
	return nil
}

func listDemos(cmd *cobra.Command, args []string) error {
	reg := experiment.NewRegistry()
	items := make([]viz.Item, 0)
	for _, name := range reg.List() {
		d, err := reg.Get(name)
		if err != nil {
			return err
		}
		def := d.Defaults()
		desc := fmt.Sprintf("%s (%dx%d, %d levels)", d.Describe(), def.Width, def.Height, def.Levels)
		items = append(items, viz.Item{Name: name, Desc: desc})
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.Listing("demos", items))
	return nil
}

func describePreset(p *config.Config) string {
	desc := fmt.Sprintf("%dx%d", p.Width, p.Height)
	if p.Term != "" {
		desc += " on " + p.Term
	}
	keys := experiment.Params(p.Params).Keys()
	for _, k := range keys {
		desc += fmt.Sprintf(" %s=%s", k, p.Params[k])
	}
	return desc
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if jsonOut {
		return storage.WriteJSON(cmd.OutOrStdout(), runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEMO\tDRIVER\tTIME\tSIZE\tLEVELS\tMAG\tELAPSED\tOUTPUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%d\t%d\t%.1fms\t%s\n",
			run.ID,
			run.Demo,
			run.Driver,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Levels,
			run.Mag,
			run.ElapsedMS,
			run.Output,
		)
	}

	return w.Flush()
}

func inspectImage(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := inspect.Read(f)
	if err != nil {
		return err
	}

	s := inspect.Summarize(img)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(args[0]))
	fmt.Fprintf(out, "size %dx%d  maxval %d  min %d  max %d  mean %.2f  distinct %d\n\n",
		img.Width, img.Height, img.MaxVal, s.Min, s.Max, s.Mean, s.Distinct)
	fmt.Fprintln(out, inspect.Plot(inspect.Histogram(img, bins), 10, "level histogram"))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	dir := batchDir
	if dir == "" {
		dir = filepath.Dir(args[0])
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, automation.Options{
		Dir:   dir,
		Store: st,
	})
	for i, r := range results {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %d/%d %s on %s in %v\n",
			viz.StatusDone.Render("ok"), i+1, len(results), r.Demo, r.Driver,
			r.Elapsed.Round(time.Millisecond))
	}
	return err
}
