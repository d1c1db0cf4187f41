package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zam-dot/articlestyle/internal/applier"
	"github.com/zam-dot/articlestyle/internal/options"
)

// rootFlags are the command line overrides for Config. Only flags the user
// actually set are applied, so config files and the environment still count.
type rootFlags struct {
	configPath string
	panelWidth int
	mouse      bool
	altScreen  bool
	noColor    bool
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "articlestyle [file|url]",
		Short: "Read an article in the terminal and restyle it live",
		Long: `articlestyle renders an article (a markdown file, an HTML file, a URL or
the built-in sample) and opens a style panel with ctrl+o. Changes in the
panel are a draft until applied with ctrl+s; a click outside the panel or
esc closes it.`,
		Args: cobra.MaximumNArgs(1),
		// Errors are reported by us, usage would only hide them
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			cfg = flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runTUI(cfg, source)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/articlestyle/config.yaml)")
	cmd.Flags().IntVar(&flags.panelWidth, "panel-width", 0, "width of the style panel in columns")
	cmd.Flags().BoolVar(&flags.mouse, "mouse", true, "enable mouse support")
	cmd.Flags().BoolVar(&flags.altScreen, "alt-screen", true, "use the terminal's alternate screen")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "render without colors")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newVarsCmd())
	cmd.AddCommand(newOptionsCmd())
	return cmd
}

func (f rootFlags) apply(cmd *cobra.Command, cfg Config) Config {
	changed := cmd.Flags().Changed
	if changed("panel-width") {
		cfg.PanelWidth = f.panelWidth
	}
	if changed("mouse") {
		cfg.Mouse = f.mouse
	}
	if changed("alt-screen") {
		cfg.AltScreen = f.altScreen
	}
	if changed("no-color") {
		cfg.NoColor = f.noColor
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg
}

// newVarsCmd prints the style variables for a selection, the same block the
// reader copies with y.
func newVarsCmd() *cobra.Command {
	values := map[options.Field]*string{}

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Print the style variables for a selection of options",
		Long: `Print the CSS custom properties for the default style, with any of the
fields overridden by flag. Options match by value or by title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := options.DefaultState()
			for _, f := range options.Fields() {
				v := *values[f]
				if v == "" {
					continue
				}
				o, err := options.Lookup(f, v)
				if err != nil {
					return fmt.Errorf("--%s: %w", flagName(f), err)
				}
				state = state.With(f, o)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), applier.CSS(state))
			return err
		},
	}

	for _, f := range options.Fields() {
		values[f] = cmd.Flags().String(flagName(f), "", f.Label())
	}
	return cmd
}

// newOptionsCmd lists the option catalog
func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options [field]",
		Short: "List the available style options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := options.Fields()
			if len(args) == 1 {
				f, err := options.ParseField(args[0])
				if err != nil {
					return err
				}
				fields = []options.Field{f}
			}

			out := cmd.OutOrStdout()
			def := options.DefaultState()
			for i, f := range fields {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s:\n", f.Label())
				for _, o := range options.Catalog(f) {
					marker := " "
					if def.Get(f) == o {
						marker = "*"
					}
					fmt.Fprintf(out, "  %s %-20s %s\n", marker, o.Title, o.Value)
				}
			}
			return nil
		},
	}
}

// flagName turns a field into its flag, e.g. FieldFontSize -> font-size
func flagName(f options.Field) string {
	switch f {
	case options.FieldFontFamily:
		return "font-family"
	case options.FieldFontSize:
		return "font-size"
	case options.FieldFontColor:
		return "font-color"
	case options.FieldBackgroundColor:
		return "bg-color"
	case options.FieldContentWidth:
		return "width"
	}
	return f.String()
}
