package cmd

import (
	"fmt"
	"os"

	"github.com/gyulababa/scene-tree-parser/scenetree"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [tree_file]",
	Short: "Generate a .tscn file from a tree sketch",
	Long: `Generate parses a tree sketch file and writes the resulting scene
to <out-dir>/<root node name>.tscn. The sketch path defaults to
tree.txt in the working directory and can be overridden either by
the --input flag or by a positional argument.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := viper.GetString("input")
		if len(args) == 1 {
			input = args[0]
		}

		log := newLogger(viper.GetBool("verbose"))
		defer log.Sync()

		outPath, err := scenetree.Generate(scenetree.Options{
			InputPath: input,
			OutDir:    viper.GetString("out-dir"),
		}, log)
		if err != nil {
			fmt.Printf("Error generating scene: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene written to %s\n", outPath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("input", "i", "tree.txt", "Path to the tree sketch file")
	viper.BindPFlag("input", generateCmd.Flags().Lookup("input"))
}
