package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanEKS lists EKS clusters. ListClusters returns bare names, so each
// cluster needs a DescribeCluster for its attributes.
func (p *Provider) scanEKS(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		listOutput, err := p.eksClient.ListClusters(ctx, &eks.ListClustersInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("list clusters: %w", err)
		}

		for _, clusterName := range listOutput.Clusters {
			describeOutput, err := p.eksClient.DescribeCluster(ctx, &eks.DescribeClusterInput{
				Name: awssdk.String(clusterName),
			})
			if err != nil {
				return nil, fmt.Errorf("describe cluster %s: %w", clusterName, err)
			}
			resources = append(resources, p.convertEKSCluster(describeOutput.Cluster))
		}

		if listOutput.NextToken == nil {
			break
		}
		nextToken = listOutput.NextToken
	}

	return resources, nil
}

func (p *Provider) convertEKSCluster(cluster *ekstypes.Cluster) resource.Resource {
	r := p.newResource(awssdk.ToString(cluster.Arn), inventory.CategoryEKS, string(cluster.Status), awssdk.ToString(cluster.Name))
	r.CreatedAt = timeValue(cluster.CreatedAt)
	for key, value := range cluster.Tags {
		r.Labels[key] = value
	}
	r.Attrs["version"] = awssdk.ToString(cluster.Version)
	r.Attrs["endpoint"] = awssdk.ToString(cluster.Endpoint)
	r.Attrs["platform_version"] = awssdk.ToString(cluster.PlatformVersion)
	if cluster.ResourcesVpcConfig != nil {
		r.Attrs["vpc_id"] = awssdk.ToString(cluster.ResourcesVpcConfig.VpcId)
	}
	return r
}
