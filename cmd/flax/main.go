package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/ui"
	"github.com/eevee/flax/internal/version"
	"github.com/eevee/flax/internal/world"
	"github.com/eevee/flax/pkg/fractor"
	"github.com/eevee/flax/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	play := playCommand()
	root := &cobra.Command{
		Use:   "flax",
		Short: "A tiny roguelike: a forest, a dungeon and the ruins below",
		// Запуск без подкоманды - просто игра.
		RunE: func(cmd *cobra.Command, args []string) error {
			return play.RunE(play, args)
		},
	}
	root.AddCommand(play, genmapCommand(), versionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func playCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Log.Info("Starting flax...")
			logger.Log.Info(version.String())

			cfg := world.NewConfig()
			if seed != 0 {
				cfg.Seed = seed
			}

			w := world.New(cfg, world.DefaultPlan())
			u, err := ui.New(w)
			if err != nil {
				return err
			}
			return u.Run()
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	return cmd
}

func genmapCommand() *cobra.Command {
	var (
		kind   string
		seed   int64
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "genmap",
		Short: "Generate a single map and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			size := geometry.Size{Width: width, Height: height}

			var strategy fractor.Strategy
			switch strings.ToLower(kind) {
			case "forest":
				strategy = fractor.NewPerlinFractor(rng, size)
			case "dungeon":
				strategy = fractor.NewBinaryPartitionFractor(
					rng, size, geometry.Size{Width: 5, Height: 5})
			case "ruin":
				strategy = fractor.NewRuinFractor(rng, size)
			default:
				return fmt.Errorf("unknown map kind %q (want forest, dungeon or ruin)", kind)
			}

			m := fractor.GenerateMap(strategy, "up", "down")
			for _, row := range m.Rows() {
				var line strings.Builder
				for _, tile := range row {
					line.WriteRune(topSprite(tile.Things()))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "dungeon", "Map style: forest, dungeon or ruin")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generation seed")
	cmd.Flags().IntVar(&width, "width", 60, "Map width in tiles")
	cmd.Flags().IntVar(&height, "height", 30, "Map height in tiles")
	return cmd
}

func topSprite(things []*entity.Entity) rune {
	for _, thing := range things {
		if thing.Has(entity.KindRender) {
			return thing.Render().Sprite()
		}
	}
	return ' '
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
