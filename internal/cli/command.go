// Package cli wires the command-line surface of bgnorm: the cobra root
// command, its flags and the viper configuration they bind to.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raditotev/bg-text-normalizer/internal"
	"github.com/raditotev/bg-text-normalizer/normalizer"
)

// CreateRootCommand creates and configures the root cobra command.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bgnorm [text]",
		Short: "Bulgarian text normalizer for speech synthesis",
		Long: `bgnorm spells out digits, dates, clock times, currency amounts,
percentages, phone numbers, Roman numerals and common abbreviations in
Bulgarian text so a TTS engine can read it aloud.

Examples:
  bgnorm "На 15.02.2026 г. цената е 1500.50 лв."
  echo "Среща в 14:30 ч." | bgnorm
  bgnorm --no-abbrev "гр. София, 5 км"`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.bgnorm.yaml)")

	// Local flags
	cmd.Flags().BoolVar(&flags.NoAbbrev, "no-abbrev", false, "Keep abbreviations as written")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every pass that changed the text to stderr")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("normalize.no_abbrev", cmd.Flags().Lookup("no-abbrev"))
	viper.BindPFlag("normalize.verbose", cmd.Flags().Lookup("verbose"))
}

// InitConfig initializes viper configuration.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".bgnorm" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bgnorm")
	}

	// Environment variables
	viper.SetEnvPrefix("BGNORM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Options resolves normalizer options from flags and the loaded config.
// A flag set on the command line wins over the config file.
func Options(flags *Flags) normalizer.Options {
	noAbbrev := flags.NoAbbrev || viper.GetBool("normalize.no_abbrev")
	verbose := flags.Verbose || viper.GetBool("normalize.verbose")
	return normalizer.Options{
		ExpandAbbreviations: !noAbbrev,
		Verbose:             verbose,
	}
}
