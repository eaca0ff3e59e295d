package dynamo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageItem_Attributes(t *testing.T) {
	created := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	msg := &entity.ScheduledMessage{
		DayBucket: "2024-03-02",
		SortKey:   "2024-03-02T14:00:00.000Z,abc123",
		ID:        "abc123",
		DeliverAt: time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
		TeamID:    "T123456789",
		UserID:    "U123456789",
		ChannelID: "C123456789",
		Payload:   entity.Payload{ChannelID: "C123456789", Text: "notes tomorrow at 9am", CleanText: "notes"},
		State:     entity.MessageStatePending,
		CreatedAt: created,
		UpdatedAt: created,
	}

	item, err := toMessageItem(msg)
	require.NoError(t, err)
	av, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)

	// key and index attributes must be plain strings
	for _, name := range []string{"day_bucket", "sort_key", "team_id", "user_id", "id", "state"} {
		require.IsType(t, &types.AttributeValueMemberS{}, av[name], name)
	}
	assert.Equal(t, "2024-03-02T14:00:00.000Z", av["deliver_at"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "1709305200", av["created_at"].(*types.AttributeValueMemberN).Value)

	var back messageItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &back))
	got, err := back.toEntity()
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestMessageItem_BadDeliverAt(t *testing.T) {
	_, err := messageItem{DeliverAt: "tomorrow", Payload: "{}"}.toEntity()
	assert.Error(t, err)
}

func TestTableInputs(t *testing.T) {
	in := messagesTableInput("messages")
	assert.Equal(t, "messages", aws.ToString(in.TableName))
	require.Len(t, in.GlobalSecondaryIndexes, 2)
	assert.Equal(t, teamUserIndex, aws.ToString(in.GlobalSecondaryIndexes[0].IndexName))
	assert.Equal(t, teamIDIndex, aws.ToString(in.GlobalSecondaryIndexes[1].IndexName))
	assert.Equal(t, types.KeyTypeHash, in.KeySchema[0].KeyType)
	assert.Equal(t, "day_bucket", aws.ToString(in.KeySchema[0].AttributeName))

	creds := credentialsTableInput("tokens")
	assert.Equal(t, "user_id", aws.ToString(creds.KeySchema[1].AttributeName))
}
