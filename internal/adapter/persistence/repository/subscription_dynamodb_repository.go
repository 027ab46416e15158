package repository

import (
	"context"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSubscriptionsTableName = "subscriptions"

type subscriptionItem struct {
	UserID         string `dynamodbav:"user_id"`
	Tier           string `dynamodbav:"tier"`
	Status         string `dynamodbav:"status"`
	StartDate      string `dynamodbav:"start_date"`
	EndDate        string `dynamodbav:"end_date"`
	LastPaymentRef string `dynamodbav:"last_payment_reference,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string), one subscription row per user

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	it := toSubscriptionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		UserID:         s.UserID,
		Tier:           s.Tier,
		Status:         string(s.Status),
		StartDate:      s.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:        s.EndDate.UTC().Format(time.RFC3339Nano),
		LastPaymentRef: s.LastPaymentRef,
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Subscription{
		UserID:         it.UserID,
		Tier:           it.Tier,
		Status:         entities.SubscriptionStatus(it.Status),
		StartDate:      startDate,
		EndDate:        endDate,
		LastPaymentRef: it.LastPaymentRef,
		UpdatedAt:      updatedAt,
	}
}
