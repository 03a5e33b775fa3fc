package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanEC2 lists EC2 instances.
func (p *Provider) scanEC2(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		output, err := p.ec2Client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				resources = append(resources, p.convertEC2Instance(instance))
			}
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

func (p *Provider) convertEC2Instance(instance ec2types.Instance) resource.Resource {
	status := ""
	if instance.State != nil {
		status = string(instance.State.Name)
	}

	r := p.newResource(awssdk.ToString(instance.InstanceId), inventory.CategoryEC2, status, extractNameTag(instance.Tags))
	r.Labels = ec2TagsToLabels(instance.Tags)
	r.CreatedAt = timeValue(instance.LaunchTime)
	r.Attrs["instance_type"] = string(instance.InstanceType)
	r.Attrs["os"] = awssdk.ToString(instance.PlatformDetails)
	r.Attrs["private_ip"] = awssdk.ToString(instance.PrivateIpAddress)
	r.Attrs["public_ip"] = awssdk.ToString(instance.PublicIpAddress)
	r.Attrs["vpc_id"] = awssdk.ToString(instance.VpcId)
	r.Attrs["subnet_id"] = awssdk.ToString(instance.SubnetId)
	if instance.Placement != nil {
		r.Attrs["az"] = awssdk.ToString(instance.Placement.AvailabilityZone)
	}
	return r
}

// scanASG lists Auto Scaling Groups.
func (p *Provider) scanASG(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		output, err := p.asgClient.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe auto scaling groups: %w", err)
		}

		for _, asg := range output.AutoScalingGroups {
			resources = append(resources, p.convertASG(asg))
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

func (p *Provider) convertASG(asg asgtypes.AutoScalingGroup) resource.Resource {
	status := "active"
	if awssdk.ToInt32(asg.DesiredCapacity) == 0 {
		status = "stopped"
	}

	r := p.newResource(awssdk.ToString(asg.AutoScalingGroupARN), inventory.CategoryASG, status, awssdk.ToString(asg.AutoScalingGroupName))
	r.CreatedAt = timeValue(asg.CreatedTime)
	r.Attrs["desired"] = formatInt32(asg.DesiredCapacity)
	r.Attrs["min"] = formatInt32(asg.MinSize)
	r.Attrs["max"] = formatInt32(asg.MaxSize)
	r.Attrs["instances"] = fmt.Sprintf("%d", len(asg.Instances))
	return r
}

// scanLambda lists Lambda functions.
func (p *Provider) scanLambda(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var marker *string

	for {
		output, err := p.lambdaClient.ListFunctions(ctx, &lambda.ListFunctionsInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}

		for _, function := range output.Functions {
			resources = append(resources, p.convertLambdaFunction(function))
		}

		if output.NextMarker == nil {
			break
		}
		marker = output.NextMarker
	}

	return resources, nil
}

func (p *Provider) convertLambdaFunction(function lambdatypes.FunctionConfiguration) resource.Resource {
	r := p.newResource(awssdk.ToString(function.FunctionArn), inventory.CategoryLambda, string(function.State), awssdk.ToString(function.FunctionName))
	r.Attrs["runtime"] = string(function.Runtime)
	r.Attrs["memory_mb"] = formatInt32(function.MemorySize)
	r.Attrs["timeout_s"] = formatInt32(function.Timeout)
	r.Attrs["handler"] = awssdk.ToString(function.Handler)
	r.Attrs["last_modified"] = awssdk.ToString(function.LastModified)
	return r
}
