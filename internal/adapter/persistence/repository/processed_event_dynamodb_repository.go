package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"efipay-shopify-bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type processedEventItem struct {
	Fingerprint string `dynamodbav:"fingerprint"`
	ProcessedAt string `dynamodbav:"processed_at"`
}

// ProcessedEventDynamoRepository is the opt-in idempotency ledger: one item
// per reconciled payment, written with an atomic check-and-set so that two
// concurrent deliveries of the same event cannot both win.
//
// Table requirements:
//   - PK: fingerprint (string)
//
// Enabled by setting RECONCILER_LEDGER_TABLE; unset deployments run with
// NoopProcessedEventStore and rely on the already-paid check alone, matching
// the original behavior of the bridge.

type ProcessedEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessedEventStore = (*ProcessedEventDynamoRepository)(nil)

// LedgerTableFromEnv returns the configured ledger table name, empty when
// the ledger is disabled.
func LedgerTableFromEnv() string {
	return strings.TrimSpace(os.Getenv("RECONCILER_LEDGER_TABLE"))
}

func NewProcessedEventDynamoRepository(ddb *dynamodb.Client, tableName string) *ProcessedEventDynamoRepository {
	return &ProcessedEventDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProcessedEventDynamoRepository) MarkProcessed(ctx context.Context, fingerprint string) (bool, error) {
	it := processedEventItem{
		Fingerprint: fingerprint,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#fp)"),
		ExpressionAttributeNames: map[string]string{
			"#fp": "fingerprint",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NoopProcessedEventStore is the ledger used when no table is configured:
// every event looks new, and idempotency rests on the already-paid check.
type NoopProcessedEventStore struct{}

var _ interfaces.IProcessedEventStore = (*NoopProcessedEventStore)(nil)

func (NoopProcessedEventStore) MarkProcessed(context.Context, string) (bool, error) {
	return true, nil
}
