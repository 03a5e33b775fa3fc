package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanRDS lists RDS database instances.
func (p *Provider) scanRDS(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var marker *string

	for {
		output, err := p.rdsClient.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}

		for _, instance := range output.DBInstances {
			resources = append(resources, p.convertRDSInstance(instance))
		}

		if output.Marker == nil {
			break
		}
		marker = output.Marker
	}

	return resources, nil
}

func (p *Provider) convertRDSInstance(instance rdstypes.DBInstance) resource.Resource {
	identifier := awssdk.ToString(instance.DBInstanceIdentifier)

	r := p.newResource(identifier, inventory.CategoryRDS, awssdk.ToString(instance.DBInstanceStatus), identifier)
	r.CreatedAt = timeValue(instance.InstanceCreateTime)
	r.Attrs["engine"] = awssdk.ToString(instance.Engine)
	r.Attrs["engine_version"] = awssdk.ToString(instance.EngineVersion)
	r.Attrs["instance_class"] = awssdk.ToString(instance.DBInstanceClass)
	r.Attrs["storage_gb"] = formatInt32(instance.AllocatedStorage)
	r.Attrs["multi_az"] = formatBool(instance.MultiAZ)
	if instance.Endpoint != nil {
		r.Attrs["endpoint"] = awssdk.ToString(instance.Endpoint.Address)
	}
	return r
}

// scanDynamoDB lists DynamoDB tables. ListTables returns bare names, so each
// table needs a DescribeTable for its attributes.
func (p *Provider) scanDynamoDB(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var startTable *string

	for {
		output, err := p.ddbClient.ListTables(ctx, &dynamodb.ListTablesInput{ExclusiveStartTableName: startTable})
		if err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}

		for _, tableName := range output.TableNames {
			describeOutput, err := p.ddbClient.DescribeTable(ctx, &dynamodb.DescribeTableInput{
				TableName: awssdk.String(tableName),
			})
			if err != nil {
				return nil, fmt.Errorf("describe table %s: %w", tableName, err)
			}
			resources = append(resources, p.convertDynamoDBTable(describeOutput.Table))
		}

		if output.LastEvaluatedTableName == nil {
			break
		}
		startTable = output.LastEvaluatedTableName
	}

	return resources, nil
}

func (p *Provider) convertDynamoDBTable(table *ddbtypes.TableDescription) resource.Resource {
	tableName := awssdk.ToString(table.TableName)

	r := p.newResource(tableName, inventory.CategoryDynamoDB, string(table.TableStatus), tableName)
	r.CreatedAt = timeValue(table.CreationDateTime)
	r.Attrs["item_count"] = formatInt64(table.ItemCount)
	r.Attrs["size_bytes"] = formatInt64(table.TableSizeBytes)

	billingMode := string(ddbtypes.BillingModeProvisioned)
	if table.BillingModeSummary != nil {
		billingMode = string(table.BillingModeSummary.BillingMode)
	}
	r.Attrs["billing_mode"] = billingMode
	return r
}
