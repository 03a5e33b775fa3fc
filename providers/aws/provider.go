// Package aws lists account resources through the AWS SDK.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/yairfalse/kirja/config"
	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// Provider lists resources in one AWS region. S3 and Route53 listings are
// account-wide regardless of the region the provider was built for.
type Provider struct {
	region    string
	accountID string

	// AWS clients (interfaces for testability)
	ec2Client     EC2API
	asgClient     AutoScalingAPI
	rdsClient     RDSAPI
	ddbClient     DynamoDBAPI
	eksClient     EKSAPI
	s3Client      S3API
	ecrClient     ECRAPI
	lambdaClient  LambdaAPI
	elbClient     ELBAPI
	route53Client Route53API
	sqsClient     SQSAPI
}

// New builds a provider from static credentials and verifies them against
// STS. A rejected key pair surfaces as *AuthError.
func New(ctx context.Context, creds *config.Credentials, region string) (*Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	accountID, err := verifyCredentials(ctx, sts.NewFromConfig(awsCfg))
	if err != nil {
		return nil, err
	}

	return &Provider{
		region:        region,
		accountID:     accountID,
		ec2Client:     ec2.NewFromConfig(awsCfg),
		asgClient:     autoscaling.NewFromConfig(awsCfg),
		rdsClient:     rds.NewFromConfig(awsCfg),
		ddbClient:     dynamodb.NewFromConfig(awsCfg),
		eksClient:     eks.NewFromConfig(awsCfg),
		s3Client:      s3.NewFromConfig(awsCfg),
		ecrClient:     ecr.NewFromConfig(awsCfg),
		lambdaClient:  lambda.NewFromConfig(awsCfg),
		elbClient:     elasticloadbalancingv2.NewFromConfig(awsCfg),
		route53Client: route53.NewFromConfig(awsCfg),
		sqsClient:     sqs.NewFromConfig(awsCfg),
	}, nil
}

// verifyCredentials makes one cheap authenticated call and returns the
// account ID it resolves to.
func verifyCredentials(ctx context.Context, client STSAPI) (string, error) {
	identity, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		if isAuthDenied(err) {
			return "", &AuthError{Err: err}
		}
		return "", fmt.Errorf("verify credentials: %w", err)
	}
	return awssdk.ToString(identity.Account), nil
}

// Region returns the region this provider scans.
func (p *Provider) Region() string {
	return p.region
}

// AccountID returns the account the credentials resolve to.
func (p *Provider) AccountID() string {
	return p.accountID
}

// Scan lists all resources of one category. Auth-shaped API failures are
// classified as *AuthError; everything else is returned wrapped.
func (p *Provider) Scan(ctx context.Context, category string) ([]resource.Resource, error) {
	fn, ok := p.scanners()[category]
	if !ok {
		return nil, fmt.Errorf("unsupported category %q", category)
	}

	resources, err := fn(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return resources, nil
}

func (p *Provider) scanners() map[string]func(context.Context) ([]resource.Resource, error) {
	return map[string]func(context.Context) ([]resource.Resource, error){
		inventory.CategoryEC2:         p.scanEC2,
		inventory.CategoryEBS:         p.scanEBSVolumes,
		inventory.CategoryEBSSnapshot: p.scanSnapshots,
		inventory.CategoryASG:         p.scanASG,
		inventory.CategoryRDS:         p.scanRDS,
		inventory.CategoryDynamoDB:    p.scanDynamoDB,
		inventory.CategoryEKS:         p.scanEKS,
		inventory.CategoryS3:          p.scanS3,
		inventory.CategoryECR:         p.scanECR,
		inventory.CategoryLambda:      p.scanLambda,
		inventory.CategoryELB:         p.scanELB,
		inventory.CategoryRoute53:     p.scanRoute53,
		inventory.CategorySQS:         p.scanSQS,
	}
}
