package repository

import (
	"context"
	"encoding/json"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const checklistsBucket = "checklists"

// ChecklistBoltRepository is the degraded-mode checklist store. ListByRepairID
// is a full-bucket filter; the local file never grows past one shop's data,
// so no secondary index is kept.
type ChecklistBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IChecklistRepository = (*ChecklistBoltRepository)(nil)

func NewChecklistBoltRepository(db *bolt.DB) (*ChecklistBoltRepository, error) {
	if err := ensureBucket(db, checklistsBucket); err != nil {
		return nil, err
	}
	return &ChecklistBoltRepository{db: db}, nil
}

func (r *ChecklistBoltRepository) Create(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	return r.put(c)
}

func (r *ChecklistBoltRepository) Save(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	return r.put(c)
}

func (r *ChecklistBoltRepository) put(c entities.Checklist) (entities.Checklist, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return entities.Checklist{}, err
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(checklistsBucket)).Put([]byte(c.ID), data)
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	return c, nil
}

func (r *ChecklistBoltRepository) GetByID(ctx context.Context, id string) (entities.Checklist, error) {
	var c entities.Checklist
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(checklistsBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &c)
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	return c, nil
}

func (r *ChecklistBoltRepository) ListAll(ctx context.Context) ([]entities.Checklist, error) {
	checklists := []entities.Checklist{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(checklistsBucket)).ForEach(func(k, v []byte) error {
			var c entities.Checklist
			if err := json.Unmarshal(v, &c); err != nil {
				return err
			}
			checklists = append(checklists, c)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return checklists, nil
}

func (r *ChecklistBoltRepository) ListByRepairID(ctx context.Context, repairID string) ([]entities.Checklist, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entities.Checklist{}
	for _, c := range all {
		if c.RepairID == repairID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (r *ChecklistBoltRepository) Delete(ctx context.Context, id string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(checklistsBucket)).Delete([]byte(id))
	})
}
