package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlecore/internal/config"
	"github.com/udisondev/battlecore/internal/game/battle"
	"github.com/udisondev/battlecore/internal/game/catalog"
	"github.com/udisondev/battlecore/internal/model"
)

// runResult is the outcome of one simulated battle.
type runResult struct {
	Run    int
	Seed   uint64
	Result battle.Result
	Turns  int
	// Capped is set when the battle hit max_turns and was scored as a draw.
	Capped bool
	// Ally holds the ally creatures after End copied the battle state back.
	Ally []*model.Creature
}

// simulator plays independent battles between copies of the same two parties.
type simulator struct {
	rules    battle.Rules
	maxTurns int
	seed     uint64
	hooks    *battle.Hooks

	// scene and messages are attached to run 0 only.
	scene    battle.Scene
	messages battle.MessageSink
}

func newSimulator(cfg config.BattleConfig, seed uint64) *simulator {
	return &simulator{
		rules: battle.Rules{
			VsType:             cfg.VsType,
			CriticalMultiplier: cfg.CriticalMultiplier,
			Wild:               cfg.Wild,
		},
		maxTurns: cfg.MaxTurns,
		seed:     seed,
		hooks:    catalog.NewHooks(),
	}
}

// runAll plays runs battles with at most parallelism of them at once. Each battle
// runs on a single goroutine with its own random source.
func (s *simulator) runAll(ctx context.Context, ally, enemy []*model.Creature, runs, parallelism int) ([]runResult, error) {
	results := make([]runResult, runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := range runs {
		g.Go(func() error {
			res, err := s.run(gctx, i, ally, enemy)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// run plays battle number i on deep copies of the parties.
func (s *simulator) run(ctx context.Context, i int, ally, enemy []*model.Creature) (runResult, error) {
	seed := s.seed + uint64(i)
	allyCopy := lo.Map(ally, func(c *model.Creature, _ int) *model.Creature { return c.Clone() })
	enemyCopy := lo.Map(enemy, func(c *model.Creature, _ int) *model.Creature { return c.Clone() })

	opts := []battle.Option{
		battle.WithHooks(s.hooks),
		battle.WithRNG(battle.NewRNG(seed)),
		battle.WithRules(s.rules),
	}
	if i == 0 && s.scene != nil {
		opts = append(opts, battle.WithScene(s.scene))
	}
	if i == 0 && s.messages != nil {
		opts = append(opts, battle.WithMessages(s.messages))
	}
	l, err := battle.New(allyCopy, enemyCopy, opts...)
	if err != nil {
		return runResult{}, err
	}

	res, capped, err := play(ctx, l, battle.NewRNG(^seed), s.maxTurns)
	if err != nil {
		return runResult{}, err
	}
	slog.Debug("run finished", "run", i, "seed", seed, "result", res.String(), "turns", l.Turn())
	return runResult{Run: i, Seed: seed, Result: res, Turns: l.Turn(), Capped: capped, Ally: allyCopy}, nil
}

// play drives l to its end with a random policy: every battler on the field uses a
// random move with PP left on a random foe, and fainted battlers are replaced by
// the first healthy reserve. A battle still running after maxTurns is a draw.
func play(ctx context.Context, l *battle.Logic, policy battle.RNG, maxTurns int) (battle.Result, bool, error) {
	l.Start()
	for !l.Over() && l.Turn() < maxTurns {
		if err := ctx.Err(); err != nil {
			return battle.ResultNone, false, err
		}
		if err := replaceFainted(l); err != nil {
			return battle.ResultNone, false, err
		}
		if _, err := l.ExecuteTurn(ctx, chooseActions(l, policy)); err != nil {
			if errors.Is(err, battle.ErrBattleOver) {
				break
			}
			return battle.ResultNone, false, fmt.Errorf("turn %d: %w", l.Turn(), err)
		}
	}
	capped := !l.Over()
	res := l.End()
	if capped {
		res = battle.ResultDraw
	}
	return res, capped, nil
}

func replaceFainted(l *battle.Logic) error {
	for _, b := range l.NeedsReplacement() {
		with, ok := lo.Find(l.Party(b.Bank()), func(c *battle.Battler) bool {
			return c.Alive() && !c.OnField()
		})
		if !ok {
			continue
		}
		if err := l.Switch(b, with); err != nil {
			return err
		}
	}
	return nil
}

func chooseActions(l *battle.Logic, policy battle.RNG) []battle.Action {
	var actions []battle.Action
	for bank := range 2 {
		for _, b := range l.OnField(bank) {
			if b.Dead() {
				continue
			}
			foes := l.Foes(b)
			if len(foes) == 0 {
				continue
			}
			target := foes[policy.IntN(len(foes))]
			actions = append(actions, &battle.AttackAction{
				User:           b,
				MoveIndex:      chooseMove(b, policy),
				TargetBank:     target.Bank(),
				TargetPosition: target.Position(),
			})
		}
	}
	return actions
}

// chooseMove picks a move with PP left, or 0 when none has any (the battle
// substitutes struggle).
func chooseMove(b *battle.Battler, policy battle.RNG) int {
	usable := lo.FilterMap(b.Moves(), func(m *battle.Move, i int) (int, bool) {
		return i, m.PP() > 0
	})
	if len(usable) == 0 {
		return 0
	}
	return usable[policy.IntN(len(usable))]
}

// summary aggregates the results of a simulation.
type summary struct {
	Runs      int
	Victories int
	Defeats   int
	Draws     int
	Capped    int
	AvgTurns  float64
}

func summarize(results []runResult) summary {
	s := summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	counts := lo.CountValuesBy(results, func(r runResult) battle.Result { return r.Result })
	s.Victories = counts[battle.ResultVictory]
	s.Defeats = counts[battle.ResultDefeat]
	s.Draws = counts[battle.ResultDraw]
	s.Capped = lo.CountBy(results, func(r runResult) bool { return r.Capped })
	s.AvgTurns = float64(lo.SumBy(results, func(r runResult) int { return r.Turns })) / float64(len(results))
	return s
}

// WinRate is the share of runs won by the ally party.
func (s summary) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Victories) / float64(s.Runs)
}
