package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/resonance/internal/config"
	"github.com/san-kum/resonance/internal/spingroup"
	"github.com/san-kum/resonance/internal/storage"
	"github.com/san-kum/resonance/internal/viz"
)

var (
	dataDir    string
	preset     string
	showPlot   bool
	saveRun    bool
	channelIdx int
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "resonance",
		Short: "R-matrix resonance cross-section calculator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".resonance", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute [config.yaml]",
		Short: "compute cross sections for a spin group",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompute,
	}
	computeCmd.Flags().StringVar(&preset, "preset", "", "use a preset spin group")
	computeCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the total cross section")
	computeCmd.Flags().BoolVar(&saveRun, "save", true, "save the run to the data directory")
	computeCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	computeCmd.Flags().IntVar(&plotHeight, "height", 20, "plot height")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&channelIdx, "channel", -1, "channel index to plot (-1 for total)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 20, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run:   runPresets,
	}

	rootCmd.AddCommand(computeCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(args []string) (*config.Config, error) {
	if preset != "" {
		cfg, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (see `resonance presets`)", preset)
		}
		return cfg, nil
	}
	if len(args) == 1 {
		return config.Load(args[0])
	}
	return nil, fmt.Errorf("need a config file or --preset")
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	group, err := cfg.Build()
	if err != nil {
		return err
	}
	warnDerived(group)

	fmt.Println(viz.Summary(group))

	if showPlot {
		fmt.Println(viz.Plot("total cross section (b)", group.Grid(), group.TotalCrossSection(), plotWidth, plotHeight))
	}

	if saveRun {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg.Name, group)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}
	return nil
}

// warnDerived surfaces the sign-loss approximation: amplitudes derived from
// partial widths are all positive, which drops interference phase
// information.
func warnDerived(g *spingroup.Group) {
	for i, ch := range g.Channels() {
		if ch.Derived() {
			fmt.Printf("warning: channel %d (%s): reduced width amplitudes derived from partial widths; signs were fixed positive\n",
				i, ch.Label())
		}
	}
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tGRID\tCHANNELS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d pts\t%d\n",
			r.ID, r.Name, r.Timestamp.Format("2006-01-02 15:04:05"), r.GridPoints, len(r.Channels))
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	header, cols, err := store.LoadCrossSections(args[0])
	if err != nil {
		return err
	}

	// column 0 is the energy grid, column 1 the total
	col := 1
	if channelIdx >= 0 {
		col = 2 + channelIdx
	}
	if col >= len(cols) {
		return fmt.Errorf("run %s has %d channels", args[0], len(cols)-2)
	}

	fmt.Println(viz.Plot(header[col]+" (b)", cols[0], cols[col], plotWidth, plotHeight))
	return nil
}

func runPresets(cmd *cobra.Command, args []string) {
	names := make([]string, 0, len(config.Presets))
	for name := range config.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cfg := config.Presets[name]
		fmt.Printf("%-10s %d resonances, %d outgoing channels, grid %.3g-%.3g eV\n",
			name, len(cfg.Resonances), len(cfg.Outgoing), cfg.Grid.Start, cfg.Grid.Stop)
	}
}
