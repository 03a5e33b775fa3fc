package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanS3 lists S3 buckets. The listing is account-wide; each bucket's own
// region comes from GetBucketLocation.
func (p *Provider) scanS3(ctx context.Context) ([]resource.Resource, error) {
	output, err := p.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	resources := make([]resource.Resource, 0, len(output.Buckets))
	for _, bucket := range output.Buckets {
		resources = append(resources, p.convertS3Bucket(ctx, bucket))
	}

	return resources, nil
}

func (p *Provider) convertS3Bucket(ctx context.Context, bucket s3types.Bucket) resource.Resource {
	bucketName := awssdk.ToString(bucket.Name)

	r := p.newResource(bucketName, inventory.CategoryS3, "active", bucketName)
	r.CreatedAt = timeValue(bucket.CreationDate)
	r.Region = p.bucketRegion(ctx, bucket.Name)
	return r
}

// bucketRegion resolves a bucket's region. An empty LocationConstraint
// means us-east-1; a lookup failure falls back to the provider region.
func (p *Provider) bucketRegion(ctx context.Context, bucketName *string) string {
	output, err := p.s3Client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: bucketName})
	if err != nil {
		return p.region
	}
	if output.LocationConstraint == "" {
		return "us-east-1"
	}
	return string(output.LocationConstraint)
}

// scanECR lists ECR repositories.
func (p *Provider) scanECR(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		output, err := p.ecrClient.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe repositories: %w", err)
		}

		for _, repo := range output.Repositories {
			resources = append(resources, p.convertECRRepository(repo))
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

func (p *Provider) convertECRRepository(repo ecrtypes.Repository) resource.Resource {
	r := p.newResource(awssdk.ToString(repo.RepositoryArn), inventory.CategoryECR, "active", awssdk.ToString(repo.RepositoryName))
	r.CreatedAt = timeValue(repo.CreatedAt)
	r.Attrs["uri"] = awssdk.ToString(repo.RepositoryUri)
	return r
}
