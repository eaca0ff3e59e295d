package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
)

// messageItem is the stored shape of a scheduled message.
type messageItem struct {
	DayBucket string    `dynamodbav:"day_bucket"`
	SortKey   string    `dynamodbav:"sort_key"`
	ID        string    `dynamodbav:"id"`
	DeliverAt string    `dynamodbav:"deliver_at"`
	TeamID    string    `dynamodbav:"team_id"`
	UserID    string    `dynamodbav:"user_id"`
	ChannelID string    `dynamodbav:"channel_id"`
	Payload   string    `dynamodbav:"payload"`
	State     string    `dynamodbav:"state"`
	CreatedAt time.Time `dynamodbav:"created_at,unixtime"`
	UpdatedAt time.Time `dynamodbav:"updated_at,unixtime"`
}

func toMessageItem(msg *entity.ScheduledMessage) (messageItem, error) {
	payload, err := entity.EncodePayload(msg.Payload)
	if err != nil {
		return messageItem{}, err
	}

	return messageItem{
		DayBucket: msg.DayBucket,
		SortKey:   msg.SortKey,
		ID:        msg.ID,
		DeliverAt: domain.FormatISO(msg.DeliverAt),
		TeamID:    msg.TeamID,
		UserID:    msg.UserID,
		ChannelID: msg.ChannelID,
		Payload:   payload,
		State:     string(msg.State),
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}, nil
}

func (i messageItem) toEntity() (*entity.ScheduledMessage, error) {
	deliverAt, err := time.Parse(domain.ISOLayout, i.DeliverAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deliver_at %q: %w", i.DeliverAt, err)
	}
	payload, err := entity.DecodePayload(i.Payload)
	if err != nil {
		return nil, err
	}

	return &entity.ScheduledMessage{
		DayBucket: i.DayBucket,
		SortKey:   i.SortKey,
		ID:        i.ID,
		DeliverAt: deliverAt,
		TeamID:    i.TeamID,
		UserID:    i.UserID,
		ChannelID: i.ChannelID,
		Payload:   payload,
		State:     entity.MessageState(i.State),
		CreatedAt: i.CreatedAt.UTC(),
		UpdatedAt: i.UpdatedAt.UTC(),
	}, nil
}

func messageKey(dayBucket, sortKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"day_bucket": &types.AttributeValueMemberS{Value: dayBucket},
		"sort_key":   &types.AttributeValueMemberS{Value: sortKey},
	}
}

type messageRepository struct {
	db    *dynamodb.Client
	table string
}

func newMessageRepository(db *dynamodb.Client, table string) contract.MessageRepo {
	return &messageRepository{db: db, table: table}
}

func (r *messageRepository) Create(ctx context.Context, msg *entity.ScheduledMessage) error {
	item, err := toMessageItem(msg)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduled message: %w", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(sort_key)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("message key %s already exists: %w", msg.SortKey, domain.ErrConditionFailed)
		}
		return storeErr("create scheduled message", err)
	}

	return nil
}

// ListByOwner reads the team_user_index. Index reads are eventually consistent, so a
// message created a moment ago may be missing from the result.
func (r *messageRepository) ListByOwner(ctx context.Context, teamID, userID string) ([]*entity.ScheduledMessage, error) {
	return r.query(ctx, "list messages by owner", &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(teamUserIndex),
		KeyConditionExpression: aws.String("team_id = :team AND user_id = :user"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":team": &types.AttributeValueMemberS{Value: teamID},
			":user": &types.AttributeValueMemberS{Value: userID},
		},
	})
}

func (r *messageRepository) ListByOwnerAndID(ctx context.Context, teamID, userID, id string) ([]*entity.ScheduledMessage, error) {
	return r.query(ctx, "list messages by id", &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(teamIDIndex),
		KeyConditionExpression: aws.String("team_id = :team AND id = :id"),
		FilterExpression:       aws.String("user_id = :user"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":team": &types.AttributeValueMemberS{Value: teamID},
			":id":   &types.AttributeValueMemberS{Value: id},
			":user": &types.AttributeValueMemberS{Value: userID},
		},
	})
}

func (r *messageRepository) QueryDue(ctx context.Context, dayBucket string, asOf time.Time) ([]*entity.ScheduledMessage, error) {
	return r.query(ctx, "query due messages", &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		ConsistentRead:         aws.Bool(true),
		KeyConditionExpression: aws.String("day_bucket = :bucket AND sort_key <= :upper"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bucket": &types.AttributeValueMemberS{Value: dayBucket},
			":upper":  &types.AttributeValueMemberS{Value: domain.DueUpperBound(asOf)},
		},
	})
}

func (r *messageRepository) query(ctx context.Context, op string, in *dynamodb.QueryInput) ([]*entity.ScheduledMessage, error) {
	var messages []*entity.ScheduledMessage

	p := dynamodb.NewQueryPaginator(r.db, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeErr(op, err)
		}

		var items []messageItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scheduled messages: %w", err)
		}
		for _, item := range items {
			msg, err := item.toEntity()
			if err != nil {
				return nil, err
			}
			messages = append(messages, msg)
		}
	}

	return messages, nil
}

func (r *messageRepository) Delete(ctx context.Context, dayBucket, sortKey string) error {
	out, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.table),
		Key:          messageKey(dayBucket, sortKey),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return storeErr("delete scheduled message", err)
	}
	if len(out.Attributes) == 0 {
		return domain.ErrMessageNotFound
	}

	return nil
}

func (r *messageRepository) CancelPending(ctx context.Context, id, dayBucket, sortKey string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 messageKey(dayBucket, sortKey),
		ConditionExpression: aws.String("#id = :id AND #st = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#st": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":      &types.AttributeValueMemberS{Value: id},
			":pending": &types.AttributeValueMemberS{Value: string(entity.MessageStatePending)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return domain.ErrConditionFailed
		}
		return storeErr("cancel scheduled message", err)
	}

	return nil
}

func (r *messageRepository) MarkDelivered(ctx context.Context, id, dayBucket, sortKey string) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 messageKey(dayBucket, sortKey),
		ConditionExpression: aws.String("#id = :id AND #st = :pending"),
		UpdateExpression:    aws.String("SET #st = :delivered, updated_at = :u"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#st": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":        &types.AttributeValueMemberS{Value: id},
			":pending":   &types.AttributeValueMemberS{Value: string(entity.MessageStatePending)},
			":delivered": &types.AttributeValueMemberS{Value: string(entity.MessageStateDelivered)},
			":u":         &types.AttributeValueMemberN{Value: strconv.FormatInt(time.Now().Unix(), 10)},
		},
	})
	if err != nil {
		// someone else claimed it, or it is gone
		if isConditionFailed(err) {
			return domain.ErrConditionFailed
		}
		return storeErr("mark message delivered", err)
	}

	return nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
