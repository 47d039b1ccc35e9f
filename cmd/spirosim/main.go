package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	verbose    bool
)

// main registers the commands and runs the live view when none is given.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spirosim",
		Short:         "rolling-circle curve lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: runLive,
	}
	addCurveFlags(rootCmd)
	rootCmd.Flags().IntVar(&speed, "speed", 1, "curve steps per frame")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "draw the curve in the terminal",
		RunE:  runLive,
	}
	addCurveFlags(liveCmd)
	liveCmd.Flags().IntVar(&speed, "speed", 1, "curve steps per frame")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "draw the curve in an OpenGL window",
		RunE:  runGUI,
	}
	addCurveFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print metrics",
		RunE:  runHeadless,
	}
	addCurveFlags(runCmd)
	addTickFlag(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot x(t) and y(t)",
		RunE:  runPlot,
	}
	addCurveFlags(plotCmd)
	addTickFlag(plotCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency and closure analysis",
		RunE:  runAnalyze,
	}
	addCurveFlags(analyzeCmd)
	addTickFlag(analyzeCmd)
	analyzeCmd.Flags().IntVar(&topBins, "bins", 5, "dominant frequencies to report")
	analyzeCmd.Flags().BoolVar(&portrait, "portrait", false, "print an ASCII plot of the curve")

	scopeCmd := &cobra.Command{
		Use:   "scope",
		Short: "play the curve as stereo audio for an XY oscilloscope",
		RunE:  runScope,
	}
	addCurveFlags(scopeCmd)
	scopeCmd.Flags().Float64Var(&frequency, "freq", 110, "carrier frequency (Hz)")
	scopeCmd.Flags().Float64Var(&volume, "volume", 0.8, "output gain")
	scopeCmd.Flags().Float64Var(&cutoff, "cutoff", 0, "low-pass cutoff (Hz), 0 disables")
	scopeCmd.Flags().DurationVar(&playFor, "duration", 0, "stop after this long (0 plays until interrupted)")

	svgCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the trail as SVG",
		RunE:  runExportSVG,
	}
	addCurveFlags(svgCmd)
	addTickFlag(svgCmd)
	addOutFlag(svgCmd)
	svgCmd.Flags().Float64Var(&dotRadius, "dot", 1.5, "dot radius in pixels")
	svgCmd.Flags().BoolVar(&asPath, "path", false, "draw every traced point as one fitted polyline")

	pngCmd := &cobra.Command{
		Use:   "export-png",
		Short: "render the trail as PNG",
		RunE:  runExportPNG,
	}
	addCurveFlags(pngCmd)
	addTickFlag(pngCmd)
	addOutFlag(pngCmd)
	pngCmd.Flags().Float64Var(&dotRadius, "dot", 1.5, "dot radius in pixels")
	pngCmd.Flags().BoolVar(&caption, "caption", true, "label the image with the curve name")

	csvCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "dump trail vertices as CSV",
		RunE:  runExportCSV,
	}
	addCurveFlags(csvCmd)
	addTickFlag(csvCmd)
	addOutFlag(csvCmd)
	csvCmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy to the clipboard instead of writing")

	jsonCmd := &cobra.Command{
		Use:   "export-json",
		Short: "dump trail vertices and metrics as JSON",
		RunE:  runExportJSON,
	}
	addCurveFlags(jsonCmd)
	addTickFlag(jsonCmd)
	addOutFlag(jsonCmd)
	jsonCmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy to the clipboard instead of writing")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list colour palettes",
		RunE:  listPalettes,
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, plotCmd, analyzeCmd, scopeCmd,
		svgCmd, pngCmd, csvCmd, jsonCmd, presetsCmd, palettesCmd)
	return rootCmd
}
