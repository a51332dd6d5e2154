package dynamo

import (
	"context"
	"sort"
	"strconv"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/infra"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// AuditLog allocates ids with an atomic ADD on a counter item in the meta
// table, then writes the entry under that id.
type AuditLog struct {
	client     dynamodbiface.DynamoDBAPI
	tables     Tables
	consistent bool
}

func NewAuditLog(client dynamodbiface.DynamoDBAPI, tables Tables, consistentRead bool) *AuditLog {
	return &AuditLog{
		client:     client,
		tables:     tables,
		consistent: consistentRead,
	}
}

func (a *AuditLog) Append(ctx context.Context, entry *auditlog.Entry) (int64, error) {
	logID, err := a.nextID(ctx)
	if err != nil {
		return 0, err
	}

	item, err := dynamodbattribute.MarshalMap(newAuditLogItem(logID, entry))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to marshal audit log", err)
	}

	_, err = a.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(a.tables.AuditLog),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]*string{
			"#id": aws.String(attrLogID),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return 0, infra.WrapRepoErr("audit log id already used", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to put audit log", err)
	}
	return logID, nil
}

func (a *AuditLog) nextID(ctx context.Context) (int64, error) {
	out, err := a.client.UpdateItemWithContext(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(a.tables.Meta),
		Key: map[string]*dynamodb.AttributeValue{
			attrMetaKey: {S: aws.String(logCounterName)},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]*string{
			"#v": aws.String(attrMetaValue),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":one": {N: aws.String("1")},
		},
		ReturnValues: aws.String(dynamodb.ReturnValueUpdatedNew),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate audit log id", err)
	}

	v, ok := out.Attributes[attrMetaValue]
	if !ok || v.N == nil {
		return 0, infra.NewRepoErr(infra.KindDBFailure, "counter update returned no value")
	}
	id, err := strconv.ParseInt(aws.StringValue(v.N), 10, 64)
	if err != nil {
		return 0, infra.WrapRepoErr("counter value is not an integer", err)
	}
	return id, nil
}

func (a *AuditLog) List(ctx context.Context, afterID int64, limit int) ([]*auditlog.Entry, error) {
	var items []auditLogItem
	var unmarshalErr error
	err := a.client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(a.tables.AuditLog),
		ConsistentRead:   aws.Bool(a.consistent),
		FilterExpression: aws.String("#id > :after"),
		ExpressionAttributeNames: map[string]*string{
			"#id": aws.String(attrLogID),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":after": {N: aws.String(strconv.FormatInt(afterID, 10))},
		},
	}, func(page *dynamodb.ScanOutput, _ bool) bool {
		var batch []auditLogItem
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
		return nil, infra.WrapRepoErr("failed to scan audit logs", err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].LogID < items[j].LogID })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	result := make([]*auditlog.Entry, 0, len(items))
	for _, item := range items {
		entry, err := item.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt audit log item", err)
		}
		result = append(result, entry)
	}
	return result, nil
}
