package repository

import (
	"context"
	"errors"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersRepairIDIndex    = "repair_id-index"
)

type orderItem struct {
	ID       string `dynamodbav:"id"`
	RepairID string `dynamodbav:"repair_id"`

	EmittedAt string `dynamodbav:"emitted_at"`
	EmittedBy string `dynamodbav:"emitted_by,omitempty"`

	Observations      string `dynamodbav:"observations,omitempty"`
	CustomerReceived  bool   `dynamodbav:"customer_received"`
	CustomerSignature string `dynamodbav:"customer_signature,omitempty"`

	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	PaymentStatus string `dynamodbav:"payment_status,omitempty"`
}

// OrderDynamoRepository persists pickup orders (ORs) in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: repair_id-index (PK: repair_id)
//
// CreateWithRepair also writes the repairs table: both puts go through one
// TransactWriteItems call with a not-exists condition on the order, so an OR
// can never exist unlinked and a repair can never be linked twice.

type OrderDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	repairsTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		repairsTableName: getenvDefault("REPAIRS_TABLE", defaultRepairsTableName),
	}
}

func (r *OrderDynamoRepository) CreateWithRepair(ctx context.Context, o entities.Order, rep entities.Repair) (entities.Order, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	repairAV, err := attributevalue.MarshalMap(toRepairItem(rep))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.repairsTableName),
					Item:      repairAV,
					// The repair must still be unlinked at commit time. Protects
					// against two emissions racing on different instances.
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#order_id)"),
					ExpressionAttributeNames: map[string]string{
						"#id":       "id",
						"#order_id": "order_id",
					},
				},
			},
		},
	})
	if err != nil {
		// A canceled transaction with a conditional failure means the order id
		// or the repair link already exists. That is a domain outcome, not an
		// availability problem, and must not be retried elsewhere.
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.Order{}, ErrOrderExists
				}
			}
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByRepairID(ctx context.Context, repairID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersRepairIDIndex),
		KeyConditionExpression: aws.String("repair_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: repairID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                o.ID,
		RepairID:          o.RepairID,
		EmittedAt:         formatTime(o.EmittedAt),
		EmittedBy:         o.EmittedBy,
		Observations:      o.Observations,
		CustomerReceived:  o.CustomerReceived,
		CustomerSignature: o.CustomerSignature,
		PaymentID:         o.PaymentID,
		PaymentStatus:     o.PaymentStatus,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                it.ID,
		RepairID:          it.RepairID,
		EmittedAt:         parseTime(it.EmittedAt),
		EmittedBy:         it.EmittedBy,
		Observations:      it.Observations,
		CustomerReceived:  it.CustomerReceived,
		CustomerSignature: it.CustomerSignature,
		PaymentID:         it.PaymentID,
		PaymentStatus:     it.PaymentStatus,
	}
}
