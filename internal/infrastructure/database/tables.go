package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableCreator is the part of *dynamodb.Client needed to bootstrap tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// AutoCreateTablesEnabled reads DYNAMODB_AUTO_CREATE_TABLES (default false).
func AutoCreateTablesEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv("DYNAMODB_AUTO_CREATE_TABLES"))
	return err == nil && v
}

// EnsureTables creates every missing table with a string "id" hash key and
// on-demand billing. Tables that already exist are left untouched.
func EnsureTables(ctx context.Context, ddb TableCreator, tables ...string) error {
	for _, table := range tables {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(table),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", table, err)
		}
		log.Printf("[database][dynamodb] table created name=%s", table)
	}
	return nil
}
