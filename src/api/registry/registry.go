// Package registry manages agent (cat) records.
package registry

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/whiskerworks/spycat/src/api/catapi"
	"github.com/whiskerworks/spycat/src/api/types"
)

type Registry struct {
	db     *gorm.DB
	breeds *catapi.Client
}

func New(db *gorm.DB, breeds *catapi.Client) *Registry {
	return &Registry{db: db, breeds: breeds}
}

// Create validates the breed against the external catalog before
// persisting. A catalog outage fails the whole call; there are no retries.
func (r *Registry) Create(ctx context.Context, name string, years int, breed string, salary float64) (*types.Cat, error) {
	known, err := r.breeds.FetchBreedNames(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := known[breed]; !ok {
		return nil, fmt.Errorf("%w: unknown cat breed: %s", types.ErrValidation, breed)
	}

	cat := &types.Cat{
		Name:              name,
		YearsOfExperience: years,
		Breed:             breed,
		Salary:            salary,
	}
	if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

func (r *Registry) Get(ctx context.Context, id uint) (*types.Cat, error) {
	var cat types.Cat
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cat %d", types.ErrNotFound, id)
		}
		return nil, err
	}
	return &cat, nil
}

func (r *Registry) List(ctx context.Context) ([]types.Cat, error) {
	var cats []types.Cat
	if err := r.db.WithContext(ctx).Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *Registry) UpdateSalary(ctx context.Context, id uint, salary float64) (*types.Cat, error) {
	cat, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(cat).Update("salary", salary).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes the cat unconditionally. Missions referencing it are
// left to the database's foreign key policy.
func (r *Registry) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&types.Cat{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: cat %d", types.ErrNotFound, id)
	}
	return nil
}
