package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const ordersBucket = "orders"

// ErrOrderExists is returned by CreateWithRepair when the order id or the
// repair link already exists at commit time.
var ErrOrderExists = errors.New("order already exists")

// OrderBoltRepository is the degraded-mode order store. CreateWithRepair gets
// its atomicity for free: both bucket writes happen inside one Bolt
// read-write transaction.
type OrderBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IOrderRepository = (*OrderBoltRepository)(nil)

func NewOrderBoltRepository(db *bolt.DB) (*OrderBoltRepository, error) {
	for _, bucket := range []string{ordersBucket, repairsBucket} {
		if err := ensureBucket(db, bucket); err != nil {
			return nil, err
		}
	}
	return &OrderBoltRepository{db: db}, nil
}

func (r *OrderBoltRepository) CreateWithRepair(ctx context.Context, o entities.Order, rep entities.Repair) (entities.Order, error) {
	orderData, err := json.Marshal(o)
	if err != nil {
		return entities.Order{}, err
	}
	repairData, err := json.Marshal(rep)
	if err != nil {
		return entities.Order{}, err
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		orders := tx.Bucket([]byte(ordersBucket))
		if orders.Get([]byte(o.ID)) != nil {
			return ErrOrderExists
		}

		repairs := tx.Bucket([]byte(repairsBucket))
		if stored := repairs.Get([]byte(rep.ID)); stored != nil {
			var existing entities.Repair
			if err := json.Unmarshal(stored, &existing); err != nil {
				return err
			}
			if existing.OrderID != "" {
				return ErrOrderExists
			}
		}

		if err := orders.Put([]byte(o.ID), orderData); err != nil {
			return err
		}
		return repairs.Put([]byte(rep.ID), repairData)
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderBoltRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var o entities.Order
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(ordersBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &o)
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderBoltRepository) GetByRepairID(ctx context.Context, repairID string) (entities.Order, error) {
	var found entities.Order
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ordersBucket)).ForEach(func(k, v []byte) error {
			if found.ID != "" {
				return nil
			}
			var o entities.Order
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			if o.RepairID == repairID {
				found = o
			}
			return nil
		})
	})
	if err != nil {
		return entities.Order{}, err
	}
	return found, nil
}

func (r *OrderBoltRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ordersBucket)).ForEach(func(k, v []byte) error {
			var o entities.Order
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			orders = append(orders, o)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
