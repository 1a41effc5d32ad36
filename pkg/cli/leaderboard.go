package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lseu-open/modelscore/pkg/data"
)

const leaderboardLimitDefault = 25

var (
	leaderboardLimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of results returned (0 for all)",
		Value: leaderboardLimitDefault,
	}

	leaderboardCmd = &cli.Command{
		Name:            "leaderboard",
		Aliases:         []string{"lb"},
		Usage:           "List stored results ranked by final score",
		HideHelpCommand: true,
		Action:          cmdLeaderboard,
		Flags: []cli.Flag{
			leaderboardLimitFlag,
			formatFlag,
		},
	}
)

func cmdLeaderboard(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	list, err := data.GetLeaderboard(cfg.DB, c.Int(leaderboardLimitFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to query leaderboard: %w", err)
	}

	if err := encode(list); err != nil {
		return fmt.Errorf("error encoding leaderboard: %w", err)
	}
	return nil
}
