package repository

import (
	"context"

	"webstore_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewaySettingsTableName = "gateway_settings"

type gatewayConfigItem struct {
	Driver string            `dynamodbav:"driver"`
	Values map[string]string `dynamodbav:"values"`
}

// GatewayConfigDynamoRepository persists the per-gateway key/value settings.
//
// Table requirements:
//   - PK: driver (string)
//
// Exactly one row exists per gateway driver; the Mercado Pago row is keyed by
// the fixed driver name.

type GatewayConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb *dynamodb.Client) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_SETTINGS_TABLE", defaultGatewaySettingsTableName),
	}
}

func (r *GatewayConfigDynamoRepository) GetValues(ctx context.Context, driver string) (map[string]string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"driver": &types.AttributeValueMemberS{Value: driver},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Values, nil
}

func (r *GatewayConfigDynamoRepository) PutValues(ctx context.Context, driver string, values map[string]string) error {
	av, err := attributevalue.MarshalMap(gatewayConfigItem{Driver: driver, Values: values})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
