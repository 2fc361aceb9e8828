package cli

import (
	"github.com/spf13/cobra"

	"interest-agent/repository"
	"interest-agent/service"
)

var redisAddr string

var rootCmd = &cobra.Command{
	Use:   "interest-agent",
	Short: "Compound interest projection calculator",
	Long: `interest-agent projects compound interest growth from the terminal.

Calculations:
  future value of a lump sum (any compounding frequency)
  future value with monthly contributions
  time needed to reach a target amount
  principal required for a target amount
  year-by-year breakdowns
  weekly trader scenario with yearly capital gains tax`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history := repository.NewProjectionRepositoryMemory()

		var cache repository.CacheRepository
		if redisAddr != "" {
			cache = repository.NewRedisCache(redisAddr)
		} else {
			cache = repository.NewMockCache()
		}

		menu := NewMenu(
			cmd.InOrStdin(),
			cmd.OutOrStdout(),
			service.NewInterestService(history, cache),
			service.NewTaxScenarioService(),
			service.NewInsightService(),
			history,
		)
		return menu.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "",
		"redis address for the shared result cache (default: in-process cache)")
}
