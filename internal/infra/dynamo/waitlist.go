package dynamo

import (
	"context"
	"sort"

	"equipment-checkout/internal/domain/waitlist"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/pkg/errs"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type WaitlistRegistry struct {
	client     dynamodbiface.DynamoDBAPI
	tables     Tables
	consistent bool
}

func NewWaitlistRegistry(client dynamodbiface.DynamoDBAPI, tables Tables, consistentRead bool) *WaitlistRegistry {
	return &WaitlistRegistry{
		client:     client,
		tables:     tables,
		consistent: consistentRead,
	}
}

func userKey(userID string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		attrUserID: {S: aws.String(userID)},
	}
}

func (r *WaitlistRegistry) HasEntry(ctx context.Context, userID string) (bool, error) {
	out, err := r.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Waitlist),
		Key:            userKey(userID),
		ConsistentRead: aws.Bool(r.consistent),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to get waitlist entry", err)
	}
	return len(out.Item) > 0, nil
}

func (r *WaitlistRegistry) Add(ctx context.Context, entry *waitlist.Entry) error {
	item, err := dynamodbattribute.MarshalMap(newWaitlistItem(entry))
	if err != nil {
		return infra.WrapRepoErr("failed to marshal waitlist entry", err)
	}

	_, err = r.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Waitlist),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#eid)"),
		ExpressionAttributeNames: map[string]*string{
			"#eid": aws.String(attrUserID),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return errs.Mark(infra.WrapRepoErr("user already on waitlist", err, infra.KindConditionFailed), errs.ErrAlreadyOnWaitlist)
		}
		return infra.WrapRepoErr("failed to put waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRegistry) Remove(ctx context.Context, userID string) error {
	_, err := r.client.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tables.Waitlist),
		Key:                 userKey(userID),
		ConditionExpression: aws.String("attribute_exists(#eid)"),
		ExpressionAttributeNames: map[string]*string{
			"#eid": aws.String(attrUserID),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return errs.Mark(infra.WrapRepoErr("user not on waitlist", err, infra.KindNotFound), errs.ErrNotOnWaitlist)
		}
		return infra.WrapRepoErr("failed to delete waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRegistry) List(ctx context.Context) ([]*waitlist.Entry, error) {
	var items []waitlistItem
	var unmarshalErr error
	err := r.client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.tables.Waitlist),
		ConsistentRead: aws.Bool(r.consistent),
	}, func(page *dynamodb.ScanOutput, _ bool) bool {
		var batch []waitlistItem
		if unmarshalErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &batch); unmarshalErr != nil {
			return false
		}
		items = append(items, batch...)
		return true
	})
	if err == nil {
		err = unmarshalErr
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan waitlist", err)
	}

	result := make([]*waitlist.Entry, len(items))
	for i, item := range items {
		result[i] = item.toDomain()
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].RequestedAt().Equal(result[j].RequestedAt()) {
			return result[i].UserID() < result[j].UserID()
		}
		return result[i].RequestedAt().Before(result[j].RequestedAt())
	})
	return result, nil
}
