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

const (
	defaultChecklistsTableName = "checklists"
	checklistsRepairIDIndex    = "repair_id-index"
)

type checklistItem struct {
	ID       string `dynamodbav:"id"`
	Type     string `dynamodbav:"type"`
	RepairID string `dynamodbav:"repair_id"`

	Photos map[string]string `dynamodbav:"photos,omitempty"`
	Tests  map[string]bool   `dynamodbav:"tests,omitempty"`

	Signature         string `dynamodbav:"signature,omitempty"`
	SignatureSignedAt string `dynamodbav:"signature_signed_at,omitempty"`

	CreatedAt string `dynamodbav:"timestamp"`
}

// ChecklistDynamoRepository persists Checklist records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: repair_id-index (PK: repair_id)

type ChecklistDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistRepository = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb *dynamodb.Client) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLISTS_TABLE", defaultChecklistsTableName),
	}
}

func (r *ChecklistDynamoRepository) Create(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	it := toChecklistItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Checklist{}, err
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
		return entities.Checklist{}, err
	}
	return c, nil
}

func (r *ChecklistDynamoRepository) GetByID(ctx context.Context, id string) (entities.Checklist, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checklist{}, nil
	}

	var it checklistItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Checklist{}, err
	}
	return fromChecklistItem(it), nil
}

func (r *ChecklistDynamoRepository) ListAll(ctx context.Context) ([]entities.Checklist, error) {
	checklists := []entities.Checklist{}

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
			var it checklistItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			checklists = append(checklists, fromChecklistItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return checklists, nil
}

func (r *ChecklistDynamoRepository) ListByRepairID(ctx context.Context, repairID string) ([]entities.Checklist, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checklistsRepairIDIndex),
		KeyConditionExpression: aws.String("repair_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: repairID},
		},
	})
	if err != nil {
		return nil, err
	}

	checklists := make([]entities.Checklist, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checklistItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		checklists = append(checklists, fromChecklistItem(it))
	}
	return checklists, nil
}

func (r *ChecklistDynamoRepository) Save(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	it := toChecklistItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Checklist{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	return c, nil
}

func (r *ChecklistDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toChecklistItem(c entities.Checklist) checklistItem {
	return checklistItem{
		ID:                c.ID,
		Type:              string(c.Type),
		RepairID:          c.RepairID,
		Photos:            c.Photos,
		Tests:             c.Tests,
		Signature:         c.Signature,
		SignatureSignedAt: formatTimePtr(c.SignatureSignedAt),
		CreatedAt:         formatTime(c.CreatedAt),
	}
}

func fromChecklistItem(it checklistItem) entities.Checklist {
	return entities.Checklist{
		ID:                it.ID,
		Type:              entities.ChecklistType(it.Type),
		RepairID:          it.RepairID,
		Photos:            it.Photos,
		Tests:             it.Tests,
		Signature:         it.Signature,
		SignatureSignedAt: parseTimePtr(it.SignatureSignedAt),
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
