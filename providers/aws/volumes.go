package aws

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanEBSVolumes lists EBS volumes.
func (p *Provider) scanEBSVolumes(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		output, err := p.ec2Client.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe volumes: %w", err)
		}

		for _, volume := range output.Volumes {
			resources = append(resources, p.convertEBSVolume(volume))
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

func (p *Provider) convertEBSVolume(volume ec2types.Volume) resource.Resource {
	r := p.newResource(awssdk.ToString(volume.VolumeId), inventory.CategoryEBS, string(volume.State), extractNameTag(volume.Tags))
	r.Labels = ec2TagsToLabels(volume.Tags)
	r.CreatedAt = timeValue(volume.CreateTime)
	r.Attrs["size_gb"] = formatInt32(volume.Size)
	r.Attrs["volume_type"] = string(volume.VolumeType)
	r.Attrs["encrypted"] = formatBool(volume.Encrypted)
	r.Attrs["attached_to"] = volumeAttachments(volume.Attachments)
	return r
}

// volumeAttachments joins attached instance IDs for a single cell.
func volumeAttachments(attachments []ec2types.VolumeAttachment) string {
	if len(attachments) == 0 {
		return ""
	}
	ids := make([]string, len(attachments))
	for i, att := range attachments {
		ids[i] = awssdk.ToString(att.InstanceId)
	}
	return strings.Join(ids, ",")
}

// scanSnapshots lists EBS snapshots owned by this account.
func (p *Provider) scanSnapshots(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		output, err := p.ec2Client.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{
			OwnerIds:  []string{"self"},
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("describe snapshots: %w", err)
		}

		for _, snapshot := range output.Snapshots {
			resources = append(resources, p.convertSnapshot(snapshot))
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

func (p *Provider) convertSnapshot(snapshot ec2types.Snapshot) resource.Resource {
	r := p.newResource(awssdk.ToString(snapshot.SnapshotId), inventory.CategoryEBSSnapshot, string(snapshot.State), extractNameTag(snapshot.Tags))
	r.Labels = ec2TagsToLabels(snapshot.Tags)
	r.CreatedAt = timeValue(snapshot.StartTime)
	r.Attrs["volume_id"] = awssdk.ToString(snapshot.VolumeId)
	r.Attrs["size_gb"] = formatInt32(snapshot.VolumeSize)
	r.Attrs["encrypted"] = formatBool(snapshot.Encrypted)
	r.Attrs["description"] = awssdk.ToString(snapshot.Description)
	return r
}
