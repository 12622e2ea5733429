// Package dynamodb stores points, histories and audit logs in AWS DynamoDB.
//
// Tables:
//
//	points     PK id (N)
//	histories  PK user_id (N), SK seq (N)
//	audit      PK id (S)
//
// History sequence numbers come from a counter item kept in the histories
// table under user_id=0, seq=0. Real entries always have seq > 0.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	repo "github.com/baharkarakas/points-backend/internal/repository"
)

// DynamoDBAPI is the subset of *dynamodb.Client the store needs.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Store implements the repository interfaces on DynamoDB.
type Store struct {
	Client             DynamoDBAPI
	PointsTableName    string
	HistoriesTableName string
	AuditLogsTableName string
}

func New(client DynamoDBAPI, pointsTable, historiesTable, auditTable string) *Store {
	return &Store{
		Client:             client,
		PointsTableName:    pointsTable,
		HistoriesTableName: historiesTable,
		AuditLogsTableName: auditTable,
	}
}

func NewRepositories(client DynamoDBAPI, pointsTable, historiesTable, auditTable string) repo.Repositories {
	s := New(client, pointsTable, historiesTable, auditTable)
	return repo.Repositories{
		UserPoints:     (*userPoints)(s),
		PointHistories: (*pointHistories)(s),
		AuditLogs:      (*auditLogs)(s),
	}
}

type (
	userPoints     Store
	pointHistories Store
	auditLogs      Store
)

var (
	_ repo.UserPoints     = (*userPoints)(nil)
	_ repo.PointHistories = (*pointHistories)(nil)
	_ repo.AuditLogs      = (*auditLogs)(nil)
)
