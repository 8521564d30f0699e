package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ignite_shop/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo answers the DynamoDB JSON protocol with canned bodies and
// records what the client sent.
type fakeDynamo struct {
	mu       sync.Mutex
	targets  []string
	requests []map[string]any
	status   int
	body     string
}

func (f *fakeDynamo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var req map[string]any
	_ = json.Unmarshal(raw, &req)

	f.mu.Lock()
	f.targets = append(f.targets, r.Header.Get("X-Amz-Target"))
	f.requests = append(f.requests, req)
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func newTestDynamoRepository(t *testing.T, fake *fakeDynamo) *CheckoutSessionDynamoRepository {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	ddb := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		RetryMaxAttempts: 1,
	})
	return NewCheckoutSessionDynamoRepository(ddb, "shop-checkouts")
}

func TestCheckoutSessionItem_AttributeNames(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	av, err := attributevalue.MarshalMap(toCheckoutSessionItem(entities.CheckoutSession{
		ID:          "cs_1",
		Provider:    entities.CheckoutProviderStripe,
		PriceID:     "price_1",
		CheckoutURL: "https://pay.example/cs_1",
		CreatedAt:   created,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := av["id"].(*types.AttributeValueMemberS)
	if !ok || id.Value != "cs_1" {
		t.Fatalf("expected string partition key id, got %#v", av["id"])
	}
	if _, ok := av["client_key"]; ok {
		t.Fatalf("expected empty client_key to be omitted")
	}
	if got := av["created_at"].(*types.AttributeValueMemberS).Value; got != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected created_at: %s", got)
	}
}

func TestNewCheckoutSessionDynamoRepository_TableName(t *testing.T) {
	if r := NewCheckoutSessionDynamoRepository(nil, ""); r.tableName != "checkout_sessions" {
		t.Fatalf("expected default table, got %s", r.tableName)
	}
	if r := NewCheckoutSessionDynamoRepository(nil, "shop-checkouts"); r.tableName != "shop-checkouts" {
		t.Fatalf("expected configured table, got %s", r.tableName)
	}
}

func TestCheckoutSessionDynamoRepository_Create(t *testing.T) {
	session := entities.CheckoutSession{
		ID:          "cs_1",
		Provider:    entities.CheckoutProviderStripe,
		PriceID:     "price_1",
		ClientKey:   "client-1",
		CheckoutURL: "https://pay.example/cs_1",
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("conditional put", func(t *testing.T) {
		fake := &fakeDynamo{body: "{}"}
		repo := newTestDynamoRepository(t, fake)

		got, err := repo.Create(context.Background(), session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "cs_1" {
			t.Fatalf("unexpected session: %+v", got)
		}

		if len(fake.targets) != 1 || fake.targets[0] != "DynamoDB_20120810.PutItem" {
			t.Fatalf("expected one PutItem, got %v", fake.targets)
		}
		req := fake.requests[0]
		if req["TableName"] != "shop-checkouts" {
			t.Fatalf("unexpected table: %v", req["TableName"])
		}
		if req["ConditionExpression"] != "attribute_not_exists(#id)" {
			t.Fatalf("expected put guarded against overwrites, got %v", req["ConditionExpression"])
		}
		names, _ := req["ExpressionAttributeNames"].(map[string]any)
		if names["#id"] != "id" {
			t.Fatalf("unexpected attribute names: %v", req["ExpressionAttributeNames"])
		}
		item, _ := req["Item"].(map[string]any)
		id, _ := item["id"].(map[string]any)
		if id["S"] != "cs_1" {
			t.Fatalf("unexpected item id: %v", item["id"])
		}
	})

	t.Run("existing id is rejected", func(t *testing.T) {
		fake := &fakeDynamo{
			status: http.StatusBadRequest,
			body:   `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`,
		}
		repo := newTestDynamoRepository(t, fake)

		_, err := repo.Create(context.Background(), session)
		var conflict *types.ConditionalCheckFailedException
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConditionalCheckFailedException, got %v", err)
		}
	})
}

func TestCheckoutSessionDynamoRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fake := &fakeDynamo{body: `{"Item":{
			"id":{"S":"cs_1"},
			"provider":{"S":"stripe"},
			"price_id":{"S":"price_1"},
			"client_key":{"S":"client-1"},
			"checkout_url":{"S":"https://pay.example/cs_1"},
			"created_at":{"S":"2024-05-01T12:00:00Z"}}}`}
		repo := newTestDynamoRepository(t, fake)

		got, err := repo.GetByID(context.Background(), "cs_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.CheckoutSession{
			ID:          "cs_1",
			Provider:    entities.CheckoutProviderStripe,
			PriceID:     "price_1",
			ClientKey:   "client-1",
			CheckoutURL: "https://pay.example/cs_1",
			CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}
		if got != want {
			t.Fatalf("unexpected session:\n got %+v\nwant %+v", got, want)
		}

		if fake.targets[0] != "DynamoDB_20120810.GetItem" {
			t.Fatalf("expected GetItem, got %v", fake.targets)
		}
		req := fake.requests[0]
		if req["ConsistentRead"] != true || req["TableName"] != "shop-checkouts" {
			t.Fatalf("unexpected request: %v", req)
		}
		key, _ := req["Key"].(map[string]any)
		id, _ := key["id"].(map[string]any)
		if id["S"] != "cs_1" {
			t.Fatalf("unexpected key: %v", req["Key"])
		}
	})

	t.Run("missing item is a zero session", func(t *testing.T) {
		repo := newTestDynamoRepository(t, &fakeDynamo{body: "{}"})

		got, err := repo.GetByID(context.Background(), "cs_missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (entities.CheckoutSession{}) {
			t.Fatalf("expected zero session, got %+v", got)
		}
	})
}
