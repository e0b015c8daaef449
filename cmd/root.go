package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "scene-tree-parser",
	Short: "Convert tree sketches into Godot scene files",
	Long: `Scene Tree Parser turns a lightweight, indentation or box-drawing
based sketch of a scene hierarchy into a .tscn scene file, carrying
over the scene uid from a previous generation when one exists.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("out-dir", "o", ".", "Directory the generated scene file is written to")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Emit per-line parsing diagnostics")

	viper.BindPFlag("out-dir", rootCmd.PersistentFlags().Lookup("out-dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("SCENETREE")
	viper.AutomaticEnv()
}

// newLogger builds the diagnostic sink handed to the parser and serializer.
// Verbosity only changes the volume of diagnostics, never the output.
func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
