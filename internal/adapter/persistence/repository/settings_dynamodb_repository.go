package repository

import (
	"context"
	"errors"

	"webstore_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppSettingsTableName = "app_settings"

// SettingsDynamoRepository persists application settings (notably the
// generated webhook secret) as plain key/value items.
//
// Table requirements:
//   - PK: key (string)

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APP_SETTINGS_TABLE", defaultAppSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	value, ok := out.Item["value"].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil
	}
	return value.Value, nil
}

// PutIfAbsent writes the value only when the key does not exist yet. Losing
// the conditional write to a concurrent caller is not an error: the first
// stored value wins and subsequent reads return it.
func (r *SettingsDynamoRepository) PutIfAbsent(ctx context.Context, key, value string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"key":   &types.AttributeValueMemberS{Value: key},
			"value": &types.AttributeValueMemberS{Value: value},
		},
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "key",
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil
		}
		return err
	}
	return nil
}
