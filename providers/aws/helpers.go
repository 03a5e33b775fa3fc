package aws

import (
	"strconv"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/yairfalse/kirja/pkg/resource"
)

// newResource creates a record with the common fields filled in.
func (p *Provider) newResource(id, typ, status, name string) resource.Resource {
	return resource.Resource{
		ID:      id,
		Type:    typ,
		Region:  p.region,
		Account: p.accountID,
		Name:    name,
		Status:  status,
		Labels:  make(map[string]string),
		Attrs:   make(map[string]string),
	}
}

// ec2TagsToLabels flattens an EC2-style tag slice into a map.
func ec2TagsToLabels(tags []ec2types.Tag) map[string]string {
	labels := make(map[string]string, len(tags))
	for _, tag := range tags {
		labels[awssdk.ToString(tag.Key)] = awssdk.ToString(tag.Value)
	}
	return labels
}

// extractNameTag returns the Name tag value or "".
func extractNameTag(tags []ec2types.Tag) string {
	for _, tag := range tags {
		if awssdk.ToString(tag.Key) == "Name" {
			return awssdk.ToString(tag.Value)
		}
	}
	return ""
}

// timeValue safely dereferences a *time.Time.
func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func formatInt32(v *int32) string {
	return strconv.FormatInt(int64(awssdk.ToInt32(v)), 10)
}

func formatInt64(v *int64) string {
	return strconv.FormatInt(awssdk.ToInt64(v), 10)
}

func formatBool(v *bool) string {
	return strconv.FormatBool(awssdk.ToBool(v))
}
