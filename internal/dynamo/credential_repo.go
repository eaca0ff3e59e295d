package dynamo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
)

type credentialItem struct {
	TeamID      string    `dynamodbav:"team_id"`
	UserID      string    `dynamodbav:"user_id"`
	AccessToken string    `dynamodbav:"access_token"`
	State       string    `dynamodbav:"state"`
	CreatedAt   time.Time `dynamodbav:"created_at,unixtime"`
	UpdatedAt   time.Time `dynamodbav:"updated_at,unixtime"`
}

type credentialRepository struct {
	db    *dynamodb.Client
	table string
}

func newCredentialRepository(db *dynamodb.Client, table string) contract.CredentialRepo {
	return &credentialRepository{db: db, table: table}
}

func credentialKey(teamID, userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"team_id": &types.AttributeValueMemberS{Value: teamID},
		"user_id": &types.AttributeValueMemberS{Value: userID},
	}
}

func (r *credentialRepository) Get(ctx context.Context, teamID, userID string) (*entity.Credential, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            credentialKey(teamID, userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storeErr("get credential", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
	}

	return &entity.Credential{
		TeamID:      item.TeamID,
		UserID:      item.UserID,
		AccessToken: item.AccessToken,
		State:       entity.CredentialState(item.State),
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}, nil
}

func (r *credentialRepository) Upsert(ctx context.Context, cred *entity.Credential) error {
	now := time.Now().UTC()
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = now
	}
	cred.UpdatedAt = now

	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              credentialKey(cred.TeamID, cred.UserID),
		UpdateExpression: aws.String("SET access_token = :t, #st = :s, updated_at = :u, created_at = if_not_exists(created_at, :c)"),
		ExpressionAttributeNames: map[string]string{
			"#st": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: cred.AccessToken},
			":s": &types.AttributeValueMemberS{Value: string(cred.State)},
			":u": &types.AttributeValueMemberN{Value: strconv.FormatInt(cred.UpdatedAt.Unix(), 10)},
			":c": &types.AttributeValueMemberN{Value: strconv.FormatInt(cred.CreatedAt.Unix(), 10)},
		},
	})
	if err != nil {
		return storeErr("upsert credential", err)
	}

	return nil
}
