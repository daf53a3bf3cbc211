package repository

import (
	"context"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRepairsTableName = "repairs"

type repairBudgetItem struct {
	Amount      float64 `dynamodbav:"amount"`
	Description string  `dynamodbav:"description"`
	Status      string  `dynamodbav:"status"`
}

type repairWarrantyItem struct {
	Period     string `dynamodbav:"period"`
	ValidUntil string `dynamodbav:"valid_until"`
	Coverage   string `dynamodbav:"coverage"`
}

type repairHistoryItem struct {
	Timestamp string `dynamodbav:"timestamp"`
	Action    string `dynamodbav:"action"`
	Status    string `dynamodbav:"status"`
}

type repairMessageItem struct {
	Type    string `dynamodbav:"type"`
	Content string `dynamodbav:"content"`
	SentAt  string `dynamodbav:"sent_at"`
}

type repairItem struct {
	ID string `dynamodbav:"id"`

	DeviceName         string `dynamodbav:"device_name"`
	DeviceModel        string `dynamodbav:"device_model"`
	DeviceIMEI         string `dynamodbav:"device_imei"`
	ProblemDescription string `dynamodbav:"problem_description"`

	CustomerName    string `dynamodbav:"customer_name"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	CustomerCPF     string `dynamodbav:"customer_cpf"`
	CustomerAddress string `dynamodbav:"customer_address"`
	CustomerEmail   string `dynamodbav:"customer_email"`

	Status string `dynamodbav:"status"`

	Budget      *repairBudgetItem   `dynamodbav:"budget,omitempty"`
	CompletedAt string              `dynamodbav:"completed_at,omitempty"`
	Warranty    *repairWarrantyItem `dynamodbav:"warranty,omitempty"`

	OrderID        string `dynamodbav:"order_id,omitempty"`
	OrderEmittedAt string `dynamodbav:"order_emitted_at,omitempty"`

	ChecklistIDs          []string `dynamodbav:"checklists,omitempty"`
	InitialChecklistID    string   `dynamodbav:"initial_checklist_id,omitempty"`
	ConclusionChecklistID string   `dynamodbav:"conclusion_checklist_id,omitempty"`

	History  []repairHistoryItem `dynamodbav:"history"`
	Messages []repairMessageItem `dynamodbav:"messages"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RepairDynamoRepository persists Repair aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The aggregate is stored as one document and Save replaces it whole. The
// use-case layer serializes concurrent mutations per repair id, so a plain
// PutItem is safe here.

type RepairDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairRepository = (*RepairDynamoRepository)(nil)

func NewRepairDynamoRepository(ddb *dynamodb.Client) *RepairDynamoRepository {
	return &RepairDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPAIRS_TABLE", defaultRepairsTableName),
	}
}

func (r *RepairDynamoRepository) Create(ctx context.Context, rep entities.Repair) (entities.Repair, error) {
	it := toRepairItem(rep)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Repair{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Repair{}, err
	}
	return rep, nil
}

func (r *RepairDynamoRepository) GetByID(ctx context.Context, id string) (entities.Repair, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Repair{}, err
	}
	if len(out.Item) == 0 {
		return entities.Repair{}, nil
	}

	var it repairItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Repair{}, err
	}
	return fromRepairItem(it), nil
}

func (r *RepairDynamoRepository) ListAll(ctx context.Context) ([]entities.Repair, error) {
	repairs := []entities.Repair{}

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
			var it repairItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			repairs = append(repairs, fromRepairItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return repairs, nil
}

func (r *RepairDynamoRepository) Save(ctx context.Context, rep entities.Repair) (entities.Repair, error) {
	it := toRepairItem(rep)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Repair{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Repair{}, err
	}
	return rep, nil
}

func (r *RepairDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRepairItem(r entities.Repair) repairItem {
	it := repairItem{
		ID:                 r.ID,
		DeviceName:         r.DeviceName,
		DeviceModel:        r.DeviceModel,
		DeviceIMEI:         r.DeviceIMEI,
		ProblemDescription: r.ProblemDescription,

		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerCPF:     r.CustomerCPF,
		CustomerAddress: r.CustomerAddress,
		CustomerEmail:   r.CustomerEmail,

		Status: string(r.Status),

		CompletedAt:    formatTimePtr(r.CompletedAt),
		OrderID:        r.OrderID,
		OrderEmittedAt: formatTimePtr(r.OrderEmittedAt),

		ChecklistIDs:          r.ChecklistIDs,
		InitialChecklistID:    r.InitialChecklistID,
		ConclusionChecklistID: r.ConclusionChecklistID,

		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),
	}

	if r.Budget != nil {
		it.Budget = &repairBudgetItem{
			Amount:      r.Budget.Amount,
			Description: r.Budget.Description,
			Status:      string(r.Budget.Status),
		}
	}
	if r.Warranty != nil {
		it.Warranty = &repairWarrantyItem{
			Period:     r.Warranty.Period,
			ValidUntil: formatTime(r.Warranty.ValidUntil),
			Coverage:   r.Warranty.Coverage,
		}
	}

	it.History = make([]repairHistoryItem, 0, len(r.History))
	for _, h := range r.History {
		it.History = append(it.History, repairHistoryItem{
			Timestamp: formatTime(h.Timestamp),
			Action:    h.Action,
			Status:    string(h.Status),
		})
	}
	it.Messages = make([]repairMessageItem, 0, len(r.Messages))
	for _, m := range r.Messages {
		it.Messages = append(it.Messages, repairMessageItem{
			Type:    string(m.Type),
			Content: m.Content,
			SentAt:  formatTime(m.SentAt),
		})
	}
	return it
}

func fromRepairItem(it repairItem) entities.Repair {
	r := entities.Repair{
		ID:                 it.ID,
		DeviceName:         it.DeviceName,
		DeviceModel:        it.DeviceModel,
		DeviceIMEI:         it.DeviceIMEI,
		ProblemDescription: it.ProblemDescription,

		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		CustomerCPF:     it.CustomerCPF,
		CustomerAddress: it.CustomerAddress,
		CustomerEmail:   it.CustomerEmail,

		Status: entities.RepairStatus(it.Status),

		CompletedAt:    parseTimePtr(it.CompletedAt),
		OrderID:        it.OrderID,
		OrderEmittedAt: parseTimePtr(it.OrderEmittedAt),

		ChecklistIDs:          it.ChecklistIDs,
		InitialChecklistID:    it.InitialChecklistID,
		ConclusionChecklistID: it.ConclusionChecklistID,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}

	if it.Budget != nil {
		r.Budget = &entities.Budget{
			Amount:      it.Budget.Amount,
			Description: it.Budget.Description,
			Status:      entities.BudgetStatus(it.Budget.Status),
		}
	}
	if it.Warranty != nil {
		r.Warranty = &entities.Warranty{
			Period:     it.Warranty.Period,
			ValidUntil: parseTime(it.Warranty.ValidUntil),
			Coverage:   it.Warranty.Coverage,
		}
	}

	r.History = make([]entities.HistoryEntry, 0, len(it.History))
	for _, h := range it.History {
		r.History = append(r.History, entities.HistoryEntry{
			Timestamp: parseTime(h.Timestamp),
			Action:    h.Action,
			Status:    entities.RepairStatus(h.Status),
		})
	}
	r.Messages = make([]entities.Message, 0, len(it.Messages))
	for _, m := range it.Messages {
		r.Messages = append(r.Messages, entities.Message{
			Type:    entities.MessageType(m.Type),
			Content: m.Content,
			SentAt:  parseTime(m.SentAt),
		})
	}
	return r
}
