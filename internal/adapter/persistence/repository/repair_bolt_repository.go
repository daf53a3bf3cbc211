package repository

import (
	"context"
	"encoding/json"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const repairsBucket = "repairs"

// RepairBoltRepository persists Repair aggregates in a local BoltDB file. It
// is the degraded-mode store behind the fallback decorator: the shop floor
// keeps working while DynamoDB is unreachable, off a single file on disk.
//
// Records are JSON documents keyed by repair id, in the same whole-document
// model the DynamoDB repository uses.
type RepairBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IRepairRepository = (*RepairBoltRepository)(nil)

func NewRepairBoltRepository(db *bolt.DB) (*RepairBoltRepository, error) {
	if err := ensureBucket(db, repairsBucket); err != nil {
		return nil, err
	}
	return &RepairBoltRepository{db: db}, nil
}

func ensureBucket(db *bolt.DB, name string) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
}

func (r *RepairBoltRepository) Create(ctx context.Context, rep entities.Repair) (entities.Repair, error) {
	return r.put(rep)
}

func (r *RepairBoltRepository) Save(ctx context.Context, rep entities.Repair) (entities.Repair, error) {
	return r.put(rep)
}

func (r *RepairBoltRepository) put(rep entities.Repair) (entities.Repair, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return entities.Repair{}, err
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(repairsBucket)).Put([]byte(rep.ID), data)
	})
	if err != nil {
		return entities.Repair{}, err
	}
	return rep, nil
}

func (r *RepairBoltRepository) GetByID(ctx context.Context, id string) (entities.Repair, error) {
	var rep entities.Repair
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(repairsBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &rep)
	})
	if err != nil {
		return entities.Repair{}, err
	}
	return rep, nil
}

func (r *RepairBoltRepository) ListAll(ctx context.Context) ([]entities.Repair, error) {
	repairs := []entities.Repair{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(repairsBucket)).ForEach(func(k, v []byte) error {
			var rep entities.Repair
			if err := json.Unmarshal(v, &rep); err != nil {
				return err
			}
			repairs = append(repairs, rep)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return repairs, nil
}

func (r *RepairBoltRepository) Delete(ctx context.Context, id string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(repairsBucket)).Delete([]byte(id))
	})
}
