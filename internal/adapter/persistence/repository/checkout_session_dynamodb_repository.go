package repository

import (
	"context"
	"time"

	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutSessionsTableName = "checkout_sessions"

type checkoutSessionItem struct {
	ID          string `dynamodbav:"id"`
	Provider    string `dynamodbav:"provider"`
	PriceID     string `dynamodbav:"price_id"`
	ClientKey   string `dynamodbav:"client_key,omitempty"`
	CheckoutURL string `dynamodbav:"checkout_url"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CheckoutSessionDynamoRepository keeps an audit trail of the checkout
// sessions the store created.
//
// Table requirements:
//   - PK: id (string)

type CheckoutSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionDynamoRepository)(nil)

// NewCheckoutSessionDynamoRepository writes to tableName, or to
// checkout_sessions when it is empty.
func NewCheckoutSessionDynamoRepository(ddb *dynamodb.Client, tableName string) *CheckoutSessionDynamoRepository {
	if tableName == "" {
		tableName = defaultCheckoutSessionsTableName
	}
	return &CheckoutSessionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *CheckoutSessionDynamoRepository) Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	av, err := attributevalue.MarshalMap(toCheckoutSessionItem(s))
	if err != nil {
		return entities.CheckoutSession{}, err
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
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (r *CheckoutSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutSession{}, nil
	}

	var it checkoutSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutSession{}, err
	}
	return fromCheckoutSessionItem(it), nil
}

func toCheckoutSessionItem(s entities.CheckoutSession) checkoutSessionItem {
	return checkoutSessionItem{
		ID:          s.ID,
		Provider:    string(s.Provider),
		PriceID:     s.PriceID,
		ClientKey:   s.ClientKey,
		CheckoutURL: s.CheckoutURL,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCheckoutSessionItem(it checkoutSessionItem) entities.CheckoutSession {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CheckoutSession{
		ID:          it.ID,
		Provider:    entities.CheckoutProvider(it.Provider),
		PriceID:     it.PriceID,
		ClientKey:   it.ClientKey,
		CheckoutURL: it.CheckoutURL,
		CreatedAt:   createdAt,
	}
}
