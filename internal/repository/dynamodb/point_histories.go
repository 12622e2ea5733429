package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/baharkarakas/points-backend/internal/models"
)

const seqCounterAttr = "next_seq"

// Insert appends one history entry under the next global sequence number.
func (s *pointHistories) Insert(ctx context.Context, userID, amount int64, typ models.TransactionType, timeMillis int64) (models.PointHistory, error) {
	seq, err := s.nextSeq(ctx)
	if err != nil {
		return models.PointHistory{}, err
	}

	h := models.PointHistory{ID: seq, UserID: userID, Amount: amount, Type: typ, TimeMillis: timeMillis}
	item, err := attributevalue.MarshalMap(h)
	if err != nil {
		return models.PointHistory{}, fmt.Errorf("failed to marshal point history: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.HistoriesTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(seq)"),
	})
	if err != nil {
		return models.PointHistory{}, fmt.Errorf("failed to put point history in DynamoDB: %w", err)
	}
	return h, nil
}

func (s *pointHistories) nextSeq(ctx context.Context) (int64, error) {
	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.HistoriesTableName),
		Key: map[string]types.AttributeValue{
			"user_id": numberAV(0),
			"seq":     numberAV(0),
		},
		UpdateExpression: aws.String("ADD #next :one"),
		ExpressionAttributeNames: map[string]string{
			"#next": seqCounterAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAV(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to advance history sequence: %w", err)
	}

	var seq int64
	if err := attributevalue.Unmarshal(out.Attributes[seqCounterAttr], &seq); err != nil {
		return 0, fmt.Errorf("failed to unmarshal history sequence: %w", err)
	}
	return seq, nil
}

// SelectAllByUserID returns every entry of a user in sequence order.
func (s *pointHistories) SelectAllByUserID(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.HistoriesTableName),
		KeyConditionExpression: aws.String("user_id = :uid AND seq > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":  numberAV(userID),
			":zero": numberAV(0),
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	}

	out := []models.PointHistory{}
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query point histories: %w", err)
		}

		var page []models.PointHistory
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal point histories: %w", err)
		}
		out = append(out, page...)

		if len(result.LastEvaluatedKey) == 0 {
			return out, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}
