// Profiling:
// go build ./profile/pools
// PROFILE_MODE=mem ./pools
// go tool pprof -http=":8000" -nodefraction=0.001 ./pools mem.pprof

package main

import (
	"github.com/JeremyLoy/config"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"

	"github.com/edwinsyarief/teien"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type Config struct {
	Rounds   int    `config:"PROFILE_ROUNDS"`
	Iters    int    `config:"PROFILE_ITERS"`
	Entities int    `config:"PROFILE_ENTITIES"`
	Mode     string `config:"PROFILE_MODE"`
}

func main() {
	cfg := Config{Rounds: 50, Iters: 1000, Entities: 1000, Mode: "mem"}
	if err := config.FromEnv().To(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to read profile config")
	}
	log.Info().
		Int("rounds", cfg.Rounds).
		Int("iters", cfg.Iters).
		Int("entities", cfg.Entities).
		Str("mode", cfg.Mode).
		Msg("profiling component pool churn")

	mode := profile.MemProfileAllocs
	if cfg.Mode == "cpu" {
		mode = profile.CPUProfile
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	run(cfg.Rounds, cfg.Iters, cfg.Entities)
	p.Stop()
}

// run adds two components to a batch of entities, runs a system pass over the
// joined pools and removes every other entity, each iteration.
func run(rounds, iters, numEntities int) {
	for range rounds {
		s := teien.NewScene(numEntities)
		root := s.NewEntity("root")
		query := teien.NewFilter2[comp1, comp2](s)

		for range iters {
			for range numEntities {
				e := root.Entity().EmplaceBack("e").Entity()
				teien.AddComponent(e, comp1{V: 1})
				teien.AddComponent(e, comp2{V: 2, W: 3})
			}
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			for i, child := range root.Entity().Children() {
				if i%2 == 0 {
					child.Entity().Remove()
				}
			}
		}
	}
}
