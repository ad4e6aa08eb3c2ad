package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"os"
	"strings"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "saki",
	Short: "Conventional paths and link checks for acceptance tests",
	Long: `saki computes the conventional REST paths acceptance suites navigate to
and checks rendered pages for the links they are expected to carry.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(
		"config",
		"",
		`
			Path to a YAML config file. Flags take precedence over the file.
		`,
	)

	rootCmd.PersistentFlags().Bool(
		"debug",
		false,
		`
			Enable development logging.
		`,
	)

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("saki")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func loadConfig() error {
	file := viper.GetString("config")
	if file == "" {
		return nil
	}
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "[cmd] - failed to read config %s", file)
	}
	return nil
}

func configureLogging() (*zap.Logger, error) {
	if viper.GetBool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
