package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	teamUserIndex = "team_user_index"
	teamIDIndex   = "team_id_index"

	tableWaitTimeout = 2 * time.Minute
)

// CreateTables creates the messages and credentials tables when they do not exist yet
// and waits until both are active.
func (c *Client) CreateTables(ctx context.Context) error {
	inputs := []*dynamodb.CreateTableInput{
		messagesTableInput(c.messagesTable),
		credentialsTableInput(c.credentialsTable),
	}

	for _, in := range inputs {
		_, err := c.db.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		if err != nil && !errors.As(err, &inUse) {
			return fmt.Errorf("failed to create table %s: %w", aws.ToString(in.TableName), err)
		}

		waiter := dynamodb.NewTableExistsWaiter(c.db)
		err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableWaitTimeout)
		if err != nil {
			return fmt.Errorf("failed waiting for table %s: %w", aws.ToString(in.TableName), err)
		}
	}

	return nil
}

func messagesTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("day_bucket"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("sort_key"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("team_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("user_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("day_bucket"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("sort_key"), KeyType: types.KeyTypeRange},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(teamUserIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("team_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("user_id"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
			{
				IndexName: aws.String(teamIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("team_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}
}

func credentialsTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("team_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("user_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("team_id"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("user_id"), KeyType: types.KeyTypeRange},
		},
	}
}
