package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterMoveProcedure("s_metronome", func() battle.Procedure { return metronomeProcedure{} })
}

// uncallable are the moves metronome never picks.
var uncallable = map[string]bool{
	"metronome": true,
	"struggle":  true,
	"protect":   true,
	"detect":    true,
}

// callableMoves lists the symbols metronome picks from, in sorted order so a seeded
// battle picks the same move. Moves without a registered procedure are skipped.
func callableMoves() []string {
	methods := battle.RegisteredProcedures()
	return lo.Reject(data.MoveSymbols(), func(s string, _ int) bool {
		if uncallable[s] {
			return true
		}
		tmpl := data.GetMove(s)
		return tmpl == nil || tmpl.Method == "s_struggle" || !slices.Contains(methods, tmpl.Method)
	})
}

// metronomeProcedure uses a random move in place of itself. The called move spends
// no PP and skips the usability stage; metronome itself was checked and paid.
type metronomeProcedure struct {
	battle.BasicProcedure
}

func (metronomeProcedure) Proceed(ctx context.Context, l *battle.Logic, user *battle.Battler, move *battle.Move, _, _ int) (battle.MoveResult, error) {
	if !l.CheckUsability(user, move) {
		return battle.MoveResult{User: user, Move: move, Failure: battle.FailureUsage}, nil
	}
	l.Say("use_move", "%s used %s!", user.Name(), battle.DisplayName(move.Symbol()))
	move.DecrementPP(1)

	pool := callableMoves()
	if len(pool) == 0 {
		failed(l)
		return battle.MoveResult{User: user, Move: move, Failure: battle.FailureUsage}, nil
	}
	called := move.Borrow(pool[l.RNG().IntN(len(pool))])
	slog.Debug("metronome called", "battler", user.Name(), "move", called.Symbol())

	res, err := l.UseCalledMove(ctx, user, called, 1-user.Bank(), 0)
	if err != nil {
		return res, fmt.Errorf("metronome calling %s: %w", called.Symbol(), err)
	}
	return res, nil
}
