package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
)

// instance implements DataManager on top of DynamoDB
type instance struct {
	client         *Client
	messageRepo    contract.MessageRepo
	credentialRepo contract.CredentialRepo
}

func NewInstance(c *Client) contract.DataManager {
	return &instance{
		client:         c,
		messageRepo:    newMessageRepository(c.db, c.messagesTable),
		credentialRepo: newCredentialRepository(c.db, c.credentialsTable),
	}
}

func (i *instance) Message() contract.MessageRepo {
	return i.messageRepo
}

func (i *instance) Credential() contract.CredentialRepo {
	return i.credentialRepo
}

func (i *instance) Ping(ctx context.Context) error {
	_, err := i.client.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(i.client.messagesTable),
	})
	if err != nil {
		return storeErr("describe messages table", err)
	}
	return nil
}

// Close is a no-op, the SDK client holds no connections that need releasing.
func (i *instance) Close() error {
	return nil
}
