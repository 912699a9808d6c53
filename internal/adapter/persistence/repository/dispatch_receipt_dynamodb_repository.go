package repository

import (
	"context"
	"encoding/json"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReceiptsTableName = "dispatch_receipts"
	receiptsJobIDIndex       = "job_id-index"
)

type dispatchReceiptItem struct {
	ID                  string  `dynamodbav:"id"`
	JobID               string  `dynamodbav:"job_id"`
	SessionID           string  `dynamodbav:"session_id"`
	PaymentMethod       string  `dynamodbav:"payment_method"`
	Amount              float64 `dynamodbav:"amount"`
	ServicesPerformed   string  `dynamodbav:"services_performed,omitempty"`
	PlatformResponseRaw string  `dynamodbav:"platform_response_raw,omitempty"`
	CreatedAt           string  `dynamodbav:"created_at"`
}

// DispatchReceiptDynamoRepository persists DispatchReceipt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type DispatchReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDispatchReceiptRepository = (*DispatchReceiptDynamoRepository)(nil)

func NewDispatchReceiptDynamoRepository(ddb *dynamodb.Client) *DispatchReceiptDynamoRepository {
	return &DispatchReceiptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
	}
}

func (r *DispatchReceiptDynamoRepository) Create(ctx context.Context, receipt entities.DispatchReceipt) (entities.DispatchReceipt, error) {
	it, err := toDispatchReceiptItem(receipt)
	if err != nil {
		return entities.DispatchReceipt{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DispatchReceipt{}, err
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
		return entities.DispatchReceipt{}, err
	}
	return receipt, nil
}

func (r *DispatchReceiptDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.DispatchReceipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receiptsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DispatchReceipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it dispatchReceiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDispatchReceiptItem(it))
	}
	return items, nil
}

func toDispatchReceiptItem(receipt entities.DispatchReceipt) (dispatchReceiptItem, error) {
	services := ""
	if len(receipt.ServicesPerformed) > 0 {
		b, err := json.Marshal(receipt.ServicesPerformed)
		if err != nil {
			return dispatchReceiptItem{}, err
		}
		services = string(b)
	}
	return dispatchReceiptItem{
		ID:                  receipt.ID,
		JobID:               receipt.JobID,
		SessionID:           receipt.SessionID,
		PaymentMethod:       string(receipt.PaymentMethod),
		Amount:              receipt.Amount,
		ServicesPerformed:   services,
		PlatformResponseRaw: string(receipt.PlatformResponseRaw),
		CreatedAt:           receipt.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDispatchReceiptItem(it dispatchReceiptItem) entities.DispatchReceipt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	var services []entities.PerformedService
	if it.ServicesPerformed != "" {
		_ = json.Unmarshal([]byte(it.ServicesPerformed), &services)
	}

	var raw json.RawMessage
	if it.PlatformResponseRaw != "" {
		raw = json.RawMessage(it.PlatformResponseRaw)
	}

	return entities.DispatchReceipt{
		ID:                  it.ID,
		JobID:               it.JobID,
		SessionID:           it.SessionID,
		PaymentMethod:       entities.PaymentMethod(it.PaymentMethod),
		Amount:              it.Amount,
		ServicesPerformed:   services,
		PlatformResponseRaw: raw,
		CreatedAt:           createdAt,
	}
}
