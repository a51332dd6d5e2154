package dynamo

import (
	"errors"
	"time"

	"equipment-checkout/internal/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// Attribute names follow the tables of the deployment this service replaces.
const (
	attrResource   = "bb"
	attrUserID     = "eid"
	attrLogID      = "log_id"
	attrMetaKey    = "name"
	attrMetaValue  = "value"
	logCounterName = "log_id"

	// marker items in the meta table that make user ids unique across checkouts
	userMarkerPrefix = "checkout-user#"

	timeLayout = time.RFC3339Nano
)

// Tables names the DynamoDB tables the stores use.
type Tables struct {
	Checkouts string
	Waitlist  string
	AuditLog  string
	Meta      string
}

func TablesFromConfig(cfg config.DynamoConfig) Tables {
	return Tables{
		Checkouts: cfg.CheckoutTable,
		Waitlist:  cfg.WaitlistTable,
		AuditLog:  cfg.AuditLogTable,
		Meta:      cfg.MetaTable,
	}
}

func NewClient(cfg config.DynamoConfig) (dynamodbiface.DynamoDBAPI, error) {
	awsCfg := aws.NewConfig().WithRegion(cfg.Region)
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.New(sess), nil
}

func isConditionFailed(err error) bool {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return aerr.Code() == dynamodb.ErrCodeConditionalCheckFailedException
	}
	return false
}

// canceledReasons reports, per transact item, whether its condition failed.
func canceledReasons(err error) ([]bool, bool) {
	var tce *dynamodb.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	failed := make([]bool, len(tce.CancellationReasons))
	for i, r := range tce.CancellationReasons {
		failed[i] = r != nil && aws.StringValue(r.Code) == "ConditionalCheckFailed"
	}
	return failed, true
}

func userMarkerKey(userID string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		attrMetaKey: {S: aws.String(userMarkerPrefix + userID)},
	}
}

func resourceKey(id int) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		attrResource: {N: aws.String(itoa(id))},
	}
}
