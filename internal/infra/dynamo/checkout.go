package dynamo

import (
	"context"
	"sort"

	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/pkg/errs"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

const releaseAttempts = 3

// CheckoutLedger stores one item per checked out resource, keyed by bb. A marker
// item per user in the meta table is written in the same transaction, so both
// "resource free" and "user holds nothing" are conditions of a single write.
type CheckoutLedger struct {
	client     dynamodbiface.DynamoDBAPI
	tables     Tables
	consistent bool
}

func NewCheckoutLedger(client dynamodbiface.DynamoDBAPI, tables Tables, consistentRead bool) *CheckoutLedger {
	return &CheckoutLedger{
		client:     client,
		tables:     tables,
		consistent: consistentRead,
	}
}

func (l *CheckoutLedger) HasActiveCheckout(ctx context.Context, userID string) (bool, error) {
	out, err := l.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(l.tables.Meta),
		Key:            userMarkerKey(userID),
		ConsistentRead: aws.Bool(l.consistent),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to get checkout marker", err)
	}
	return len(out.Item) > 0, nil
}

func (l *CheckoutLedger) IsCheckedOut(ctx context.Context, id resource.ID) (bool, error) {
	item, err := l.get(ctx, id)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

func (l *CheckoutLedger) ActiveCount(ctx context.Context) (int, error) {
	count := 0
	err := l.client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(l.tables.Checkouts),
		Select:         aws.String(dynamodb.SelectCount),
		ConsistentRead: aws.Bool(l.consistent),
	}, func(page *dynamodb.ScanOutput, _ bool) bool {
		count += int(aws.Int64Value(page.Count))
		return true
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count checkouts", err)
	}
	return count, nil
}

func (l *CheckoutLedger) Reserve(ctx context.Context, rec *checkout.Record) error {
	item, err := dynamodbattribute.MarshalMap(newCheckoutItem(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to marshal checkout", err)
	}
	marker, err := dynamodbattribute.MarshalMap(metaItem{Name: userMarkerPrefix + rec.UserID(), Value: int64(rec.ResourceID())})
	if err != nil {
		return infra.WrapRepoErr("failed to marshal checkout marker", err)
	}

	_, err = l.client.TransactWriteItemsWithContext(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []*dynamodb.TransactWriteItem{
			{Put: &dynamodb.Put{
				TableName:           aws.String(l.tables.Checkouts),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(#bb)"),
				ExpressionAttributeNames: map[string]*string{
					"#bb": aws.String(attrResource),
				},
			}},
			{Put: &dynamodb.Put{
				TableName:           aws.String(l.tables.Meta),
				Item:                marker,
				ConditionExpression: aws.String("attribute_not_exists(#name)"),
				ExpressionAttributeNames: map[string]*string{
					"#name": aws.String(attrMetaKey),
				},
			}},
		},
	})
	if err == nil {
		return nil
	}

	if failed, ok := canceledReasons(err); ok && len(failed) == 2 {
		switch {
		case failed[0]:
			return errs.Mark(infra.WrapRepoErr("resource already checked out", err, infra.KindConditionFailed), errs.ErrResourceUnavailable)
		case failed[1]:
			return errs.Mark(infra.WrapRepoErr("user already holds a checkout", err, infra.KindConditionFailed), errs.ErrAlreadyCheckedOut)
		}
	}
	return infra.WrapRepoErr("failed to write checkout", err)
}

// Release deletes the checkout and its user marker, conditioned on the holder
// read just before. A holder change between read and delete is retried.
func (l *CheckoutLedger) Release(ctx context.Context, id resource.ID) (*checkout.Record, error) {
	for attempt := 0; attempt < releaseAttempts; attempt++ {
		current, err := l.get(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, errs.Mark(infra.NewRepoErr(infra.KindNotFound, "no active checkout for resource"), errs.ErrNotCheckedOut)
		}

		_, err = l.client.TransactWriteItemsWithContext(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []*dynamodb.TransactWriteItem{
				{Delete: &dynamodb.Delete{
					TableName:           aws.String(l.tables.Checkouts),
					Key:                 resourceKey(current.ResourceID),
					ConditionExpression: aws.String("#eid = :eid"),
					ExpressionAttributeNames: map[string]*string{
						"#eid": aws.String(attrUserID),
					},
					ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
						":eid": {S: aws.String(current.UserID)},
					},
				}},
				{Delete: &dynamodb.Delete{
					TableName: aws.String(l.tables.Meta),
					Key:       userMarkerKey(current.UserID),
				}},
			},
		})
		if err == nil {
			return current.toDomain(), nil
		}
		if failed, ok := canceledReasons(err); !ok || len(failed) == 0 || !failed[0] {
			return nil, infra.WrapRepoErr("failed to delete checkout", err)
		}
	}

	return nil, infra.NewRepoErr(infra.KindConditionFailed, "checkout holder kept changing during release")
}

func (l *CheckoutLedger) FindByResource(ctx context.Context, id resource.ID) (*checkout.Record, error) {
	item, err := l.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.Mark(infra.NewRepoErr(infra.KindNotFound, "no active checkout for resource"), errs.ErrNotCheckedOut)
	}
	return item.toDomain(), nil
}

func (l *CheckoutLedger) List(ctx context.Context) ([]*checkout.Record, error) {
	var items []checkoutItem
	var unmarshalErr error
	err := l.client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(l.tables.Checkouts),
		ConsistentRead: aws.Bool(l.consistent),
	}, func(page *dynamodb.ScanOutput, _ bool) bool {
		var batch []checkoutItem
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
		return nil, infra.WrapRepoErr("failed to scan checkouts", err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ResourceID < items[j].ResourceID })
	result := make([]*checkout.Record, len(items))
	for i, item := range items {
		result[i] = item.toDomain()
	}
	return result, nil
}

func (l *CheckoutLedger) get(ctx context.Context, id resource.ID) (*checkoutItem, error) {
	out, err := l.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(l.tables.Checkouts),
		Key:            resourceKey(id.Int()),
		ConsistentRead: aws.Bool(l.consistent),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get checkout", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var item checkoutItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal checkout", err)
	}
	return &item, nil
}
