// Command battlesim plays many seeded battles between two parties and reports how
// they ended. Parties come from a YAML scenario or from the creature database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlecore/internal/config"
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/db"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/scene/wsscene"
	"github.com/udisondev/battlecore/internal/telemetry"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BATTLECORE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}
	slog.Info("battlesim starting",
		"config", cfgPath,
		"runs", cfg.Simulation.Runs,
		"parallelism", cfg.Simulation.Parallelism,
		"vs_type", cfg.Battle.VsType)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.SampleRatio)
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				slog.Warn("telemetry shutdown failed", "error", err)
			}
		}()
		slog.Info("telemetry enabled", "endpoint", cfg.Telemetry.Endpoint)
	}

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}
	if err := data.LoadOverrides(cfg.DataOverrides); err != nil {
		return fmt.Errorf("loading data overrides: %w", err)
	}

	var repo *db.CreatureRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		version, err := db.RunMigrations(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database connected", "host", cfg.Database.Host, "db", cfg.Database.DBName, "schema", version)
		repo = database.Creatures()
	}

	ally, enemy, err := loadParties(ctx, cfg.Simulation, repo)
	if err != nil {
		return err
	}
	slog.Info("parties loaded", "ally", len(ally), "enemy", len(enemy))

	seed := cfg.Battle.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sim := newSimulator(cfg.Battle, seed)

	g, gctx := errgroup.WithContext(ctx)
	simCtx, stopSpectate := context.WithCancel(gctx)

	if cfg.Spectate.Enabled {
		hub := wsscene.NewHub(cfg.Spectate.WriteWait, cfg.Spectate.SendQueue)
		sim.scene, sim.messages = hub, hub
		srv := &http.Server{Addr: cfg.Spectate.Addr(), Handler: hub, ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			slog.Info("spectate server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("spectate server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-simCtx.Done()
			hub.Close()
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	}

	var results []runResult
	g.Go(func() error {
		defer stopSpectate()
		runCtx, cancel := context.WithTimeout(simCtx, cfg.Simulation.Timeout)
		defer cancel()
		var err error
		results, err = sim.runAll(runCtx, ally, enemy, cfg.Simulation.Runs, cfg.Simulation.Parallelism)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	s := summarize(results)
	slog.Info("simulation finished",
		"seed", seed,
		"runs", s.Runs,
		"victories", s.Victories,
		"defeats", s.Defeats,
		"draws", s.Draws,
		"capped", s.Capped,
		"win_rate", fmt.Sprintf("%.3f", s.WinRate()),
		"avg_turns", fmt.Sprintf("%.1f", s.AvgTurns))

	if cfg.Simulation.SaveResults && repo != nil && len(results) > 0 {
		last := results[len(results)-1]
		trainerID := cfg.Simulation.AllyTrainer
		if len(last.Ally) > 0 && last.Ally[0].TrainerID != 0 {
			trainerID = last.Ally[0].TrainerID
		}
		if err := repo.SaveParty(ctx, trainerID, last.Ally); err != nil {
			return fmt.Errorf("saving ally party: %w", err)
		}
		slog.Info("ally party saved", "trainer", trainerID, "run", last.Run)
	}
	return nil
}

// loadParties reads the scenario file, or the stored parties of the configured
// trainers when no scenario is set.
func loadParties(ctx context.Context, cfg config.SimulationConfig, repo *db.CreatureRepository) (ally, enemy []*model.Creature, err error) {
	sc := &Scenario{
		Ally:  PartySpec{TrainerID: cfg.AllyTrainer},
		Enemy: PartySpec{TrainerID: cfg.EnemyTrainer},
	}
	if cfg.Scenario != "" {
		if sc, err = loadScenario(cfg.Scenario); err != nil {
			return nil, nil, err
		}
	}

	var loader partyLoader
	if repo != nil {
		loader = repo
	}
	if ally, err = sc.Ally.build(ctx, loader); err != nil {
		return nil, nil, fmt.Errorf("building ally party: %w", err)
	}
	if enemy, err = sc.Enemy.build(ctx, loader); err != nil {
		return nil, nil, fmt.Errorf("building enemy party: %w", err)
	}
	return ally, enemy, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
