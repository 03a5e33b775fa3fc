package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/pkg/resource"
)

// scanSQS lists SQS queues.
func (p *Provider) scanSQS(ctx context.Context) ([]resource.Resource, error) {
	var resources []resource.Resource
	var nextToken *string

	for {
		output, err := p.sqsClient.ListQueues(ctx, &sqs.ListQueuesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("list queues: %w", err)
		}

		for _, queueURL := range output.QueueUrls {
			r := p.newResource(queueURL, inventory.CategorySQS, "active", queueNameFromURL(queueURL))
			resources = append(resources, r)
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

// queueNameFromURL extracts the queue name from its URL
// (https://sqs.<region>.amazonaws.com/<account>/<name>).
func queueNameFromURL(queueURL string) string {
	idx := strings.LastIndex(queueURL, "/")
	if idx < 0 || idx == len(queueURL)-1 {
		return queueURL
	}
	return queueURL[idx+1:]
}
