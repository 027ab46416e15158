package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentIntentsTableName = "payment_intents"

type paymentIntentItem struct {
	Reference           string            `dynamodbav:"reference"`
	Amount              int64             `dynamodbav:"amount"`
	Currency            string            `dynamodbav:"currency"`
	PayerEmail          string            `dynamodbav:"payer_email,omitempty"`
	Purpose             string            `dynamodbav:"purpose"`
	TargetID            string            `dynamodbav:"target_id"`
	Provider            string            `dynamodbav:"provider"`
	Status              string            `dynamodbav:"status"`
	Receipt             string            `dynamodbav:"receipt,omitempty"`
	FailureReason       string            `dynamodbav:"failure_reason,omitempty"`
	Metadata            map[string]string `dynamodbav:"metadata,omitempty"`
	ProviderResponseRaw string            `dynamodbav:"provider_response_raw,omitempty"`
	CreatedAt           string            `dynamodbav:"created_at"`
	UpdatedAt           string            `dynamodbav:"updated_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	it := toPaymentIntentItem(intent)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	// References are unique by contract; a duplicate Put is a bug upstream.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "reference",
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return intent, nil
}

func (r *PaymentIntentDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) MarkSucceededIfPending(ctx context.Context, reference, receipt string) (bool, error) {
	return r.markIfPending(ctx, reference, string(entities.IntentStatusSuccess), receipt, "")
}

func (r *PaymentIntentDynamoRepository) MarkFailedIfPending(ctx context.Context, reference, reason string) (bool, error) {
	return r.markIfPending(ctx, reference, string(entities.IntentStatusFailed), "", reason)
}

// markIfPending is the single-writer guard: the conditional expression closes
// the race between two concurrent first deliveries of the same verdict.
func (r *PaymentIntentDynamoRepository) markIfPending(ctx context.Context, reference, status, receipt, reason string) (bool, error) {
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: status},
		":pending": &types.AttributeValueMemberS{Value: string(entities.IntentStatusPending)},
		":now":     &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	update := "SET #status = :status, updated_at = :now"
	if receipt != "" {
		update += ", receipt = :receipt"
		values[":receipt"] = &types.AttributeValueMemberS{Value: receipt}
	}
	if reason != "" {
		update += ", failure_reason = :reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	return paymentIntentItem{
		Reference:           p.Reference,
		Amount:              p.Amount,
		Currency:            p.Currency,
		PayerEmail:          p.PayerEmail,
		Purpose:             string(p.Purpose),
		TargetID:            p.TargetID,
		Provider:            string(p.Provider),
		Status:              string(p.Status),
		Receipt:             p.Receipt,
		Metadata:            p.Metadata,
		ProviderResponseRaw: string(p.ProviderResponseRaw),
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentIntent{
		Reference:           it.Reference,
		Amount:              it.Amount,
		Currency:            it.Currency,
		PayerEmail:          it.PayerEmail,
		Purpose:             entities.IntentPurpose(it.Purpose),
		TargetID:            it.TargetID,
		Provider:            entities.PaymentProvider(it.Provider),
		Status:              entities.IntentStatus(it.Status),
		Receipt:             it.Receipt,
		Metadata:            it.Metadata,
		ProviderResponseRaw: json.RawMessage(it.ProviderResponseRaw),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
