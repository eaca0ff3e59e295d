package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/diegoclair/slack-send-later/internal/domain"
)

// Client is a DynamoDB client bound to the two tables the app uses.
type Client struct {
	db               *dynamodb.Client
	messagesTable    string
	credentialsTable string
}

func New(ctx context.Context, cfg config.DynamoDBConfig) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	db := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Client{
		db:               db,
		messagesTable:    cfg.MessagesTable,
		credentialsTable: cfg.CredentialsTable,
	}, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
