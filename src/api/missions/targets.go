package missions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/whiskerworks/spycat/src/api/types"
)

// SetTargetCompleted flips a target's completion flag and recomputes the
// owning mission's completion in the same transaction. Reopening a closed
// target is allowed and un-completes the mission.
func (e *Engine) SetTargetCompleted(ctx context.Context, missionID, targetID uint, completed bool) (*types.Target, error) {
	var target types.Target
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, t, err := missionAndTarget(tx, missionID, targetID)
		if err != nil {
			return err
		}
		target = *t
		if err := tx.Model(&target).Update("completed", completed).Error; err != nil {
			return err
		}
		return recomputeCompletion(tx, missionID)
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// UpdateTargetNotes rewrites a target's notes. Notes freeze as soon as the
// target or its mission is completed.
func (e *Engine) UpdateTargetNotes(ctx context.Context, missionID, targetID uint, notes string) (*types.Target, error) {
	if notes == "" {
		return nil, fmt.Errorf("%w: notes must not be empty", types.ErrValidation)
	}
	var target types.Target
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, t, err := missionAndTarget(tx, missionID, targetID)
		if err != nil {
			return err
		}
		if m.Completed || t.Completed {
			return fmt.Errorf("%w: notes are frozen because target or mission is completed",
				types.ErrConflict)
		}
		target = *t
		return tx.Model(&target).Update("notes", notes).Error
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// missionAndTarget resolves the pair under the mission's row lock. A target
// that exists but belongs to another mission reads as not found.
func missionAndTarget(tx *gorm.DB, missionID, targetID uint) (*types.Mission, *types.Target, error) {
	var mission types.Mission
	if err := lockForUpdate(tx).First(&mission, missionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: mission %d", types.ErrNotFound, missionID)
		}
		return nil, nil, err
	}
	var target types.Target
	if err := tx.Where("id = ? AND mission_id = ?", targetID, missionID).
		First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: target %d not in mission %d", types.ErrNotFound, targetID, missionID)
		}
		return nil, nil, err
	}
	return &mission, &target, nil
}

// recomputeCompletion derives mission.completed from the full current
// target set. It is never set from request input.
func recomputeCompletion(tx *gorm.DB, missionID uint) error {
	var targets []types.Target
	if err := tx.Where("mission_id = ?", missionID).Find(&targets).Error; err != nil {
		return err
	}
	completed := len(targets) > 0
	for _, t := range targets {
		if !t.Completed {
			completed = false
			break
		}
	}
	return tx.Model(&types.Mission{}).
		Where("id = ?", missionID).
		Update("completed", completed).Error
}
