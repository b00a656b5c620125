// Command shard is the world shard server: a gin HTTP surface over the
// zone tick loop, the on-chain gold/item/auction-house projections, and the
// autonomous agent runner, wired together the way cuemby/warren's own
// cobra root command wires its manager/worker/service subcommands into one
// binary.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shard",
	Short: "World of Guilds MMORPG shard server",
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCatalogCmd)
	rootCmd.AddCommand(agentDeployCmd)
}
