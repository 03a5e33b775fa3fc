package aws

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockELBClient struct {
	DescribeLoadBalancersFunc func(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error)
}

func (m *mockELBClient) DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error) {
	return m.DescribeLoadBalancersFunc(ctx, params, optFns...)
}

func TestScanELB(t *testing.T) {
	mock := &mockELBClient{
		DescribeLoadBalancersFunc: func(_ context.Context, _ *elasticloadbalancingv2.DescribeLoadBalancersInput, _ ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error) {
			return &elasticloadbalancingv2.DescribeLoadBalancersOutput{
				LoadBalancers: []elbtypes.LoadBalancer{
					{
						LoadBalancerArn:  awssdk.String("arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/web/abc"),
						LoadBalancerName: awssdk.String("web"),
						DNSName:          awssdk.String("web-123.us-east-1.elb.amazonaws.com"),
						Type:             elbtypes.LoadBalancerTypeEnumApplication,
						Scheme:           elbtypes.LoadBalancerSchemeEnumInternetFacing,
						VpcId:            awssdk.String("vpc-0abc"),
						State:            &elbtypes.LoadBalancerState{Code: elbtypes.LoadBalancerStateEnumActive},
					},
				},
			}, nil
		},
	}

	p := &Provider{region: "us-east-1", elbClient: mock}
	resources, err := p.scanELB(context.Background())

	require.NoError(t, err)
	require.Len(t, resources, 1)

	r := resources[0]
	assert.Equal(t, "web", r.Name)
	assert.Equal(t, "active", r.Status)
	assert.Equal(t, "web-123.us-east-1.elb.amazonaws.com", r.Attrs["dns_name"])
	assert.Equal(t, "application", r.Attrs["type"])
	assert.Equal(t, "internet-facing", r.Attrs["scheme"])
	assert.Equal(t, "vpc-0abc", r.Attrs["vpc_id"])
}

type mockRoute53Client struct {
	ListHostedZonesFunc func(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
}

func (m *mockRoute53Client) ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
	return m.ListHostedZonesFunc(ctx, params, optFns...)
}

func TestScanRoute53(t *testing.T) {
	mock := &mockRoute53Client{
		ListHostedZonesFunc: func(_ context.Context, _ *route53.ListHostedZonesInput, _ ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
			return &route53.ListHostedZonesOutput{
				HostedZones: []r53types.HostedZone{
					{
						Id:                     awssdk.String("/hostedzone/Z0400Y1234"),
						Name:                   awssdk.String("example.com."),
						ResourceRecordSetCount: awssdk.Int64(14),
						Config:                 &r53types.HostedZoneConfig{PrivateZone: false},
					},
				},
			}, nil
		},
	}

	p := &Provider{region: "us-east-1", route53Client: mock}
	resources, err := p.scanRoute53(context.Background())

	require.NoError(t, err)
	require.Len(t, resources, 1)

	r := resources[0]
	assert.Equal(t, "Z0400Y1234", r.ID)
	assert.Equal(t, "example.com.", r.Name)
	assert.Equal(t, "14", r.Attrs["record_count"])
	assert.Equal(t, "false", r.Attrs["private"])
}

func TestScanRoute53_Truncated(t *testing.T) {
	calls := 0
	mock := &mockRoute53Client{
		ListHostedZonesFunc: func(_ context.Context, params *route53.ListHostedZonesInput, _ ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
			calls++
			if params.Marker == nil {
				return &route53.ListHostedZonesOutput{
					HostedZones: []r53types.HostedZone{{Id: awssdk.String("/hostedzone/Z1")}},
					IsTruncated: true,
					NextMarker:  awssdk.String("Z1"),
				}, nil
			}
			return &route53.ListHostedZonesOutput{
				HostedZones: []r53types.HostedZone{{Id: awssdk.String("/hostedzone/Z2")}},
			}, nil
		},
	}

	p := &Provider{region: "us-east-1", route53Client: mock}
	resources, err := p.scanRoute53(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, resources, 2)
	assert.Equal(t, "Z1", resources[0].ID)
	assert.Equal(t, "Z2", resources[1].ID)
}
