// Profiling:
// go build ./profile/tree
// ./tree
// go tool pprof -http=":8000" -nodefraction=0.001 ./tree cpu.pprof

package main

import (
	"github.com/JeremyLoy/config"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"

	"github.com/edwinsyarief/teien"
)

type transform struct {
	X, Y float64
}

type Config struct {
	Rounds int `config:"PROFILE_ROUNDS"`
	Iters  int `config:"PROFILE_ITERS"`
	Fanout int `config:"PROFILE_FANOUT"`
	Levels int `config:"PROFILE_LEVELS"`
}

func main() {
	cfg := Config{Rounds: 20, Iters: 200, Fanout: 8, Levels: 4}
	if err := config.FromEnv().To(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to read profile config")
	}
	log.Info().
		Int("rounds", cfg.Rounds).
		Int("iters", cfg.Iters).
		Int("fanout", cfg.Fanout).
		Int("levels", cfg.Levels).
		Msg("profiling scene tree traversal")

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	visited := run(cfg)
	p.Stop()
	log.Info().Int("visited", visited).Msg("done")
}

func run(cfg Config) int {
	visited := 0
	for range cfg.Rounds {
		s := teien.NewScene(1024)
		root := s.NewEntity("root")
		grow(root, cfg.Fanout, cfg.Levels)

		for i := range cfg.Iters {
			mode := teien.DepthFirst
			if i%2 == 1 {
				mode = teien.BreadthFirst
			}
			it := teien.NewIterator(root, mode)
			for it.Next() {
				e := it.Entity()
				if t, err := teien.GetComponent[transform](e); err == nil {
					t.Get().X += float64(e.Depth(0))
				}
				visited++
			}
		}
	}
	return visited
}

func grow(parent teien.RefEntity, fanout, levels int) {
	if levels == 0 {
		return
	}
	for range fanout {
		child := parent.Entity().EmplaceBack("node")
		teien.AddComponent(child.Entity(), transform{})
		grow(child, fanout, levels-1)
	}
}
