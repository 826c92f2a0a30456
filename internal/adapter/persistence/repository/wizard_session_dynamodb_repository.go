package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"interior_estimator/internal/domain/wizard"
	"interior_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type sessionTableAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type wizardSessionItem struct {
	ID        string `dynamodbav:"id"`
	Version   int64  `dynamodbav:"version"`
	State     string `dynamodbav:"state"`
	Snapshot  string `dynamodbav:"snapshot"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// WizardSessionDynamoRepository persists wizard snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB removes expired items lazily, so reads check expires_at too.
type WizardSessionDynamoRepository struct {
	ddb       sessionTableAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IWizardSessionRepository = (*WizardSessionDynamoRepository)(nil)

func NewWizardSessionDynamoRepository(ddb sessionTableAPI, tableName string, ttl time.Duration) *WizardSessionDynamoRepository {
	return &WizardSessionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *WizardSessionDynamoRepository) Create(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	it, err := r.toItem(s)
	if err != nil {
		return wizard.Session{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return wizard.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return wizard.Session{}, ErrSessionAlreadyExists
		}
		return wizard.Session{}, err
	}
	return s, nil
}

func (r *WizardSessionDynamoRepository) GetByID(ctx context.Context, id string) (wizard.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return wizard.Session{}, err
	}
	if len(out.Item) == 0 {
		return wizard.Session{}, nil
	}
	return r.fromAttributes(out.Item)
}

// Save overwrites the snapshot of an existing session and extends its TTL. The
// write is conditional on the stored version matching s.Version.
func (r *WizardSessionDynamoRepository) Save(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	expected := s.Version
	s.Version++
	it, err := r.toItem(s)
	if err != nil {
		return wizard.Session{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #version = :version, #state = :state, #snapshot = :snapshot, #updated_at = :updated_at, #expires_at = :expires_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
			":version":    &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Version, 10)},
			":state":      &types.AttributeValueMemberS{Value: it.State},
			":snapshot":   &types.AttributeValueMemberS{Value: it.Snapshot},
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
			":expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(it.ExpiresAt, 10)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#version":    "version",
			"#state":      "state",
			"#snapshot":   "snapshot",
			"#updated_at": "updated_at",
			"#expires_at": "expires_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// A live item that failed the check was written by someone else.
			if len(cfe.Item) > 0 {
				if old, err := r.fromAttributes(cfe.Item); err == nil && old.ID == "" {
					return wizard.Session{}, nil
				}
				return wizard.Session{}, wizard.ErrStaleSession
			}
			return wizard.Session{}, nil
		}
		return wizard.Session{}, err
	}
	if len(out.Attributes) == 0 {
		return wizard.Session{}, nil
	}
	return r.fromAttributes(out.Attributes)
}

func (r *WizardSessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *WizardSessionDynamoRepository) toItem(s wizard.Session) (wizardSessionItem, error) {
	snapshot, err := encodeSession(s)
	if err != nil {
		return wizardSessionItem{}, err
	}
	it := wizardSessionItem{
		ID:        s.ID,
		Version:   s.Version,
		Snapshot:  string(snapshot),
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
	if s.Wizard != nil {
		it.State = string(s.Wizard.State)
	}
	if r.ttl > 0 {
		it.ExpiresAt = r.now().Add(r.ttl).Unix()
	}
	return it, nil
}

func (r *WizardSessionDynamoRepository) fromAttributes(av map[string]types.AttributeValue) (wizard.Session, error) {
	var it wizardSessionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return wizard.Session{}, err
	}
	if it.ExpiresAt > 0 && it.ExpiresAt <= r.now().Unix() {
		return wizard.Session{}, nil
	}
	s, err := decodeSession([]byte(it.Snapshot))
	if err != nil {
		return wizard.Session{}, err
	}
	s.ID = it.ID
	s.Version = it.Version
	s.CreatedAt = parseTime(it.CreatedAt)
	s.UpdatedAt = parseTime(it.UpdatedAt)
	return s, nil
}
