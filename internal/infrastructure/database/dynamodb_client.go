package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client backing the opt-in
// processed-event ledger. Credentials come from the default AWS chain
// (env, shared config, task/instance role); AWS_REGION defaults to
// us-east-1.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
	)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
