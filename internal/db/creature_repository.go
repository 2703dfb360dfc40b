package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/battlecore/internal/model"
)

// CreatureRepository хранит партии существ тренеров.
// Партия загружается перед боем и сохраняется обратно после него.
type CreatureRepository struct {
	pool *pgxpool.Pool
}

// NewCreatureRepository создаёт новый CreatureRepository.
func NewCreatureRepository(pool *pgxpool.Pool) *CreatureRepository {
	return &CreatureRepository{pool: pool}
}

const creatureColumns = `record_id, species, form, nickname, level, ability, nature, gender,
	iv, ev, loyalty, exp, hp, status, status_count, item_holding, trainer_id, trainer_name`

// LoadParty returns the party of trainerID in slot order, with moves.
// An unknown trainer has an empty party (not an error).
func (r *CreatureRepository) LoadParty(ctx context.Context, trainerID int) ([]*model.Creature, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+creatureColumns+`
		 FROM creatures WHERE trainer_id = $1 ORDER BY party_slot`, trainerID)
	if err != nil {
		return nil, fmt.Errorf("querying party of trainer %d: %w", trainerID, err)
	}
	party, err := pgx.CollectRows(rows, scanCreature)
	if err != nil {
		return nil, fmt.Errorf("scanning party of trainer %d: %w", trainerID, err)
	}
	if len(party) == 0 {
		return nil, nil
	}

	byID := make(map[int64]*model.Creature, len(party))
	ids := make([]int64, len(party))
	for i, c := range party {
		byID[c.RecordID] = c
		ids[i] = c.RecordID
	}
	moveRows, err := r.pool.Query(ctx,
		`SELECT record_id, symbol, pp, pp_max
		 FROM creature_moves WHERE record_id = ANY($1) ORDER BY record_id, slot`, ids)
	if err != nil {
		return nil, fmt.Errorf("querying moves of trainer %d: %w", trainerID, err)
	}
	defer moveRows.Close()
	for moveRows.Next() {
		var id int64
		var slot model.MoveSlot
		if err := moveRows.Scan(&id, &slot.Symbol, &slot.PP, &slot.PPMax); err != nil {
			return nil, fmt.Errorf("scanning move of trainer %d: %w", trainerID, err)
		}
		byID[id].Moves = append(byID[id].Moves, slot)
	}
	if err := moveRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating moves of trainer %d: %w", trainerID, err)
	}

	slog.Debug("party loaded", "trainer", trainerID, "size", len(party))
	return party, nil
}

func scanCreature(row pgx.CollectableRow) (*model.Creature, error) {
	var c model.Creature
	err := row.Scan(
		&c.RecordID, &c.Species, &c.Form, &c.Nickname, &c.Level, &c.Ability, &c.Nature, &c.Gender,
		&c.IV, &c.EV, &c.Loyalty, &c.Exp, &c.HP, &c.Status, &c.StatusCount, &c.ItemHolding,
		&c.TrainerID, &c.TrainerName,
	)
	if err != nil {
		return nil, err
	}
	c.HPRate = 1
	if maxHP := c.Stats().HP; maxHP > 0 {
		c.HPRate = float64(c.HP) / float64(maxHP)
	}
	return &c, nil
}

// SaveParty writes the party of trainerID in a single transaction: each creature is
// upserted by slot and its moves are replaced. RecordID is set on new records.
// Slots past the end of party are removed.
func (r *CreatureRepository) SaveParty(ctx context.Context, trainerID int, party []*model.Creature) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for trainer %d: %w", trainerID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "trainer", trainerID, "error", err)
		}
	}()

	for slot, c := range party {
		if err := saveCreatureTx(ctx, tx, trainerID, slot, c); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM creatures WHERE trainer_id = $1 AND party_slot >= $2`,
		trainerID, len(party)); err != nil {
		return fmt.Errorf("trimming party of trainer %d: %w", trainerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit party of trainer %d: %w", trainerID, err)
	}
	slog.Debug("party saved", "trainer", trainerID, "size", len(party))
	return nil
}

func saveCreatureTx(ctx context.Context, tx pgx.Tx, trainerID, slot int, c *model.Creature) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO creatures (trainer_id, party_slot, species, form, nickname, level, ability,
			nature, gender, iv, ev, loyalty, exp, hp, status, status_count, item_holding, trainer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (trainer_id, party_slot) DO UPDATE SET
			species = EXCLUDED.species, form = EXCLUDED.form, nickname = EXCLUDED.nickname,
			level = EXCLUDED.level, ability = EXCLUDED.ability, nature = EXCLUDED.nature,
			gender = EXCLUDED.gender, iv = EXCLUDED.iv, ev = EXCLUDED.ev,
			loyalty = EXCLUDED.loyalty, exp = EXCLUDED.exp, hp = EXCLUDED.hp,
			status = EXCLUDED.status, status_count = EXCLUDED.status_count,
			item_holding = EXCLUDED.item_holding, trainer_name = EXCLUDED.trainer_name,
			updated_at = now()
		RETURNING record_id`,
		trainerID, slot, c.Species, c.Form, c.Nickname, c.Level, c.Ability,
		c.Nature, c.Gender, c.IV, c.EV, c.Loyalty, c.Exp, c.HP, c.Status, c.StatusCount,
		c.ItemHolding, c.TrainerName,
	).Scan(&c.RecordID)
	if err != nil {
		return fmt.Errorf("saving %s in slot %d of trainer %d: %w", c.Species, slot, trainerID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM creature_moves WHERE record_id = $1`, c.RecordID); err != nil {
		return fmt.Errorf("clearing moves of creature %d: %w", c.RecordID, err)
	}
	if len(c.Moves) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, m := range c.Moves {
		batch.Queue(`INSERT INTO creature_moves (record_id, slot, symbol, pp, pp_max) VALUES ($1, $2, $3, $4, $5)`,
			c.RecordID, i, m.Symbol, m.PP, m.PPMax)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("saving moves of creature %d: %w", c.RecordID, err)
	}
	c.TrainerID = trainerID
	return nil
}
