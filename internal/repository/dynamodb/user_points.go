package dynamodb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/baharkarakas/points-backend/internal/models"
	repo "github.com/baharkarakas/points-backend/internal/repository"
)

func numberAV(n int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

// SelectByID reads the balance item of a user.
func (s *userPoints) SelectByID(ctx context.Context, id int64) (models.UserPoint, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.PointsTableName),
		Key:            map[string]types.AttributeValue{"id": numberAV(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("failed to get user point from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return models.UserPoint{}, repo.ErrNotFound
	}

	var up models.UserPoint
	if err := attributevalue.UnmarshalMap(result.Item, &up); err != nil {
		return models.UserPoint{}, fmt.Errorf("failed to unmarshal user point: %w", err)
	}
	return up, nil
}

// InsertOrUpdate overwrites the balance item of a user.
func (s *userPoints) InsertOrUpdate(ctx context.Context, id, point int64) (models.UserPoint, error) {
	up := models.UserPoint{ID: id, Point: point, UpdateMillis: time.Now().UnixMilli()}
	item, err := attributevalue.MarshalMap(up)
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("failed to marshal user point: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.PointsTableName),
		Item:      item,
	})
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("failed to put user point in DynamoDB: %w", err)
	}
	return up, nil
}

// Delete removes the balance item of a user.
func (s *userPoints) Delete(ctx context.Context, id int64) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.PointsTableName),
		Key:       map[string]types.AttributeValue{"id": numberAV(id)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete user point from DynamoDB: %w", err)
	}
	return nil
}
