package repository

import (
	"context"
	"errors"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	ItemID     string `dynamodbav:"item_id"`
	ItemType   string `dynamodbav:"item_type"`
	Amount     int64  `dynamodbav:"amount"`
	PaymentRef string `dynamodbav:"payment_reference,omitempty"`
	IsPaid     bool   `dynamodbav:"is_paid"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
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

func (r *OrderDynamoRepository) MarkPaidIfUnpaid(ctx context.Context, id, reference string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET is_paid = :paid, #status = :paidStatus, payment_reference = :ref"),
		ConditionExpression: aws.String("attribute_exists(#id) AND is_paid = :unpaid"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberBOOL{Value: true},
			":unpaid":     &types.AttributeValueMemberBOOL{Value: false},
			":paidStatus": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
			":ref":        &types.AttributeValueMemberS{Value: reference},
		},
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

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Order{
		ID:         it.ID,
		UserID:     it.UserID,
		ItemID:     it.ItemID,
		ItemType:   it.ItemType,
		Amount:     it.Amount,
		PaymentRef: it.PaymentRef,
		IsPaid:     it.IsPaid,
		Status:     entities.OrderStatus(it.Status),
		CreatedAt:  createdAt,
	}
}
