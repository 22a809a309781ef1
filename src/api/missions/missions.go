// Package missions is the assignment engine: it owns mission and target
// state transitions and the invariants between cats, missions and targets.
package missions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/whiskerworks/spycat/src/api/types"
)

const (
	minTargets = 1
	maxTargets = 3
)

type TargetInput struct {
	Name      string
	Country   string
	Notes     string
	Completed bool
}

type Engine struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// lockForUpdate takes row locks on MySQL. SQLite (tests) serializes
// writing transactions on its own and rejects FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func withTargets(db *gorm.DB) *gorm.DB {
	return db.Preload("Targets", func(db *gorm.DB) *gorm.DB {
		return db.Order("targets.id ASC")
	})
}

// Create persists a mission and its 1-3 targets as one transaction.
// Target names must be unique within the mission; the request is checked
// up front and the database's unique index backs it up.
func (e *Engine) Create(ctx context.Context, targets []TargetInput) (*types.Mission, error) {
	if len(targets) < minTargets || len(targets) > maxTargets {
		return nil, fmt.Errorf("%w: mission needs between %d and %d targets, got %d",
			types.ErrValidation, minTargets, maxTargets, len(targets))
	}
	seen := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		if _, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate target name: %s", types.ErrValidation, t.Name)
		}
		seen[t.Name] = struct{}{}
	}

	var mission types.Mission
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mission = types.Mission{Completed: false}
		if err := tx.Create(&mission).Error; err != nil {
			return err
		}
		for _, t := range targets {
			target := types.Target{
				MissionID: mission.ID,
				Name:      t.Name,
				Country:   t.Country,
				Notes:     t.Notes,
				Completed: t.Completed,
			}
			if err := tx.Create(&target).Error; err != nil {
				return err
			}
			mission.Targets = append(mission.Targets, target)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

func (e *Engine) Get(ctx context.Context, id uint) (*types.Mission, error) {
	var mission types.Mission
	err := withTargets(e.db.WithContext(ctx)).First(&mission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: mission %d", types.ErrNotFound, id)
		}
		return nil, err
	}
	return &mission, nil
}

func (e *Engine) List(ctx context.Context) ([]types.Mission, error) {
	var missions []types.Mission
	if err := withTargets(e.db.WithContext(ctx)).Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

// Delete removes an unassigned mission and all of its targets in one
// transaction. The cascade is explicit rather than left to the schema.
func (e *Engine) Delete(ctx context.Context, id uint) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mission types.Mission
		if err := lockForUpdate(tx).First(&mission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: mission %d", types.ErrNotFound, id)
			}
			return err
		}
		if mission.CatID != nil {
			return fmt.Errorf("%w: mission %d is assigned to a cat and cannot be deleted",
				types.ErrConflict, id)
		}
		if err := tx.Where("mission_id = ?", id).Delete(&types.Target{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mission).Error
	})
}

// Assign gives the mission to the cat. The unassigned-mission and
// one-active-mission-per-cat checks run inside one transaction under row
// locks, so two concurrent assignments for the same cat cannot both pass.
func (e *Engine) Assign(ctx context.Context, missionID, catID uint) (*types.Mission, error) {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mission types.Mission
		if err := lockForUpdate(tx).First(&mission, missionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: mission %d", types.ErrNotFound, missionID)
			}
			return err
		}
		if mission.CatID != nil {
			return fmt.Errorf("%w: mission %d is already assigned to a cat", types.ErrConflict, missionID)
		}

		var cat types.Cat
		if err := tx.First(&cat, catID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: cat %d", types.ErrNotFound, catID)
			}
			return err
		}

		var active []types.Mission
		if err := lockForUpdate(tx).
			Where("cat_id = ? AND completed = ?", catID, false).
			Find(&active).Error; err != nil {
			return err
		}
		if len(active) > 0 {
			return fmt.Errorf("%w: cat %d already has an active mission", types.ErrConflict, catID)
		}

		return tx.Model(&mission).Update("cat_id", catID).Error
	})
	if err != nil {
		return nil, err
	}
	return e.Get(ctx, missionID)
}
