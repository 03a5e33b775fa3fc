package aws

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
)

func TestNewResource(t *testing.T) {
	p := &Provider{region: "eu-west-1", accountID: "123456789012"}

	r := p.newResource("i-0abc", "ec2", "running", "web")

	assert.Equal(t, "i-0abc", r.ID)
	assert.Equal(t, "ec2", r.Type)
	assert.Equal(t, "eu-west-1", r.Region)
	assert.Equal(t, "123456789012", r.Account)
	assert.NotNil(t, r.Labels)
	assert.NotNil(t, r.Attrs)
}

func TestExtractNameTag(t *testing.T) {
	tags := []ec2types.Tag{
		{Key: awssdk.String("Team"), Value: awssdk.String("platform")},
		{Key: awssdk.String("Name"), Value: awssdk.String("web-server")},
	}

	assert.Equal(t, "web-server", extractNameTag(tags))
	assert.Equal(t, "", extractNameTag(nil))
}

func TestEC2TagsToLabels(t *testing.T) {
	tags := []ec2types.Tag{
		{Key: awssdk.String("Env"), Value: awssdk.String("prod")},
		{Key: awssdk.String("Team"), Value: awssdk.String("data")},
	}

	labels := ec2TagsToLabels(tags)

	assert.Len(t, labels, 2)
	assert.Equal(t, "prod", labels["Env"])
	assert.Equal(t, "data", labels["Team"])
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "7", formatInt32(awssdk.Int32(7)))
	assert.Equal(t, "0", formatInt32(nil))
	assert.Equal(t, "9000000000", formatInt64(awssdk.Int64(9000000000)))
	assert.Equal(t, "true", formatBool(awssdk.Bool(true)))
	assert.Equal(t, "false", formatBool(nil))
}
