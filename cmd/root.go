package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "juststreamit",
	Short: "browse the JustStreamIt movie catalog",
	Long:  `browse the best rated movies of the JustStreamIt catalog from the terminal or serve them as json`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

const (
	defaultBaseURL     = "http://localhost:8000/api/v1"
	defaultBaseBackoff = time.Millisecond * 500
)

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("JUSTSTREAMIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("catalog.baseURL", defaultBaseURL)
	viper.SetDefault("catalog.timeout", time.Duration(0))
	viper.SetDefault("catalog.maxRetries", 3)
	viper.SetDefault("catalog.backoff", defaultBaseBackoff)
	viper.SetDefault("catalog.maxConcurrency", 0)

	viper.SetDefault("page.topPageSize", 7)
	viper.SetDefault("page.categoryPageSize", 6)
	viper.SetDefault("page.categories", []string{"Crime", "Comedy"})

	viper.SetDefault("viewport.cellWidth", 8)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("logging.file", "juststreamit.log")
}
