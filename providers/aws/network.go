package aws

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanELB lists ELBv2 load balancers.
func (p *Provider) scanELB(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var marker *string

	for {
		output, err := p.elbClient.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("describe load balancers: %w", err)
		}

		for _, lb := range output.LoadBalancers {
			resources = append(resources, p.convertLoadBalancer(lb))
		}

		if output.NextMarker == nil {
			break
		}
		marker = output.NextMarker
	}

	return resources, nil
}

func (p *Provider) convertLoadBalancer(lb elbtypes.LoadBalancer) resource.Resource {
	status := ""
	if lb.State != nil {
		status = string(lb.State.Code)
	}

	r := p.newResource(awssdk.ToString(lb.LoadBalancerArn), inventory.CategoryELB, status, awssdk.ToString(lb.LoadBalancerName))
	r.CreatedAt = timeValue(lb.CreatedTime)
	r.Attrs["dns_name"] = awssdk.ToString(lb.DNSName)
	r.Attrs["type"] = string(lb.Type)
	r.Attrs["scheme"] = string(lb.Scheme)
	r.Attrs["vpc_id"] = awssdk.ToString(lb.VpcId)
	return r
}

// scanRoute53 lists hosted zones. The listing is account-wide.
func (p *Provider) scanRoute53(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var marker *string

	for {
		output, err := p.route53Client.ListHostedZones(ctx, &route53.ListHostedZonesInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("list hosted zones: %w", err)
		}

		for _, zone := range output.HostedZones {
			resources = append(resources, p.convertHostedZone(zone))
		}

		if !output.IsTruncated {
			break
		}
		marker = output.NextMarker
	}

	return resources, nil
}

func (p *Provider) convertHostedZone(zone r53types.HostedZone) resource.Resource {
	// Zone IDs come back as "/hostedzone/Z123"; keep just the ID part.
	zoneID := strings.TrimPrefix(awssdk.ToString(zone.Id), "/hostedzone/")

	r := p.newResource(zoneID, inventory.CategoryRoute53, "active", awssdk.ToString(zone.Name))
	r.Attrs["record_count"] = formatInt64(zone.ResourceRecordSetCount)

	private := false
	if zone.Config != nil {
		private = zone.Config.PrivateZone
	}
	r.Attrs["private"] = fmt.Sprintf("%t", private)
	return r
}
