package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.4.2"
)

var rootCmd = &cobra.Command{
	Use:   "rideseed",
	Short: "Seed and inspect a ride-hailing database",
	Long: `
Rideseed is a database toolkit for the OSRH ride-hailing platform.

It populates a fresh database with a consistent, dependency-ordered demo
dataset (catalog tables, actors, drivers and vehicles with their documents,
and a sample ride history) and ships a small read-only SQL console for
inspecting the result.

Database Support:
- SQL Server (the platform's primary target)
- PostgreSQL
- MySQL
- SQLite (embedded, used by the test suite)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("rideseed version %s\n", Version)
			os.Exit(0)
		}
		color.New(color.FgCyan, color.Bold).Println("rideseed — ride-hailing database toolkit")
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./rideseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("rideseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
