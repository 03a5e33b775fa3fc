package inventory

import (
	"fmt"
	"strings"

	"github.com/yairfalse/kirja/pkg/resource"
)

// Category names, used both as CLI filter values and as the dispatch key
// passed to Source.Scan.
const (
	CategoryEC2         = "ec2"
	CategoryEBS         = "ebs"
	CategoryEBSSnapshot = "ebs-snapshot"
	CategoryASG         = "asg"
	CategoryRDS         = "rds"
	CategoryDynamoDB    = "dynamodb"
	CategoryEKS         = "eks"
	CategoryS3          = "s3"
	CategoryECR         = "ecr"
	CategoryLambda      = "lambda"
	CategoryELB         = "elb"
	CategoryRoute53     = "route53"
	CategorySQS         = "sqs"
)

// Column maps one resource field or attribute to a workbook column.
type Column struct {
	Header string
	Value  func(r resource.Resource) string
}

// Category describes one resource class: its workbook sheet and columns.
// Global categories return account-wide listings and are scanned once,
// not per region.
type Category struct {
	Name    string
	Sheet   string
	Global  bool
	Columns []Column
}

func attr(key string) func(resource.Resource) string {
	return func(r resource.Resource) string { return r.Attr(key) }
}

func id(r resource.Resource) string      { return r.ID }
func name(r resource.Resource) string    { return r.Name }
func region(r resource.Resource) string  { return r.Region }
func status(r resource.Resource) string  { return r.Status }
func created(r resource.Resource) string { return r.Created() }

// Categories returns the full category table in sheet order.
func Categories() []Category {
	return []Category{
		{
			Name:  CategoryEC2,
			Sheet: "EC2",
			Columns: []Column{
				{"Name", name},
				{"Instance ID", id},
				{"Type", attr("instance_type")},
				{"OS", attr("os")},
				{"Region", region},
				{"State", status},
				{"Private IP", attr("private_ip")},
				{"Public IP", attr("public_ip")},
				{"Launched", created},
			},
		},
		{
			Name:  CategoryEBS,
			Sheet: "EC2-Volumes",
			Columns: []Column{
				{"Volume ID", id},
				{"Size (GiB)", attr("size_gb")},
				{"Type", attr("volume_type")},
				{"State", status},
				{"Region", region},
				{"Attached To", attr("attached_to")},
				{"Encrypted", attr("encrypted")},
				{"Created", created},
			},
		},
		{
			Name:  CategoryEBSSnapshot,
			Sheet: "EC2-Snapshots",
			Columns: []Column{
				{"Snapshot ID", id},
				{"Volume ID", attr("volume_id")},
				{"Volume Size (GiB)", attr("size_gb")},
				{"State", status},
				{"Region", region},
				{"Encrypted", attr("encrypted")},
				{"Started", created},
			},
		},
		{
			Name:  CategoryASG,
			Sheet: "ASG",
			Columns: []Column{
				{"Name", name},
				{"Desired", attr("desired")},
				{"Min", attr("min")},
				{"Max", attr("max")},
				{"Instances", attr("instances")},
				{"State", status},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:  CategoryRDS,
			Sheet: "RDS",
			Columns: []Column{
				{"DB Instance Identifier", id},
				{"DB Engine", attr("engine")},
				{"Engine Version", attr("engine_version")},
				{"Class", attr("instance_class")},
				{"Status", status},
				{"Multi-AZ", attr("multi_az")},
				{"Storage (GiB)", attr("storage_gb")},
				{"Endpoint", attr("endpoint")},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:  CategoryDynamoDB,
			Sheet: "DynamoDB",
			Columns: []Column{
				{"Table Name", id},
				{"Status", status},
				{"Items", attr("item_count")},
				{"Size (Bytes)", attr("size_bytes")},
				{"Billing Mode", attr("billing_mode")},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:  CategoryEKS,
			Sheet: "EKS",
			Columns: []Column{
				{"Cluster Name", name},
				{"Version", attr("version")},
				{"Status", status},
				{"Endpoint", attr("endpoint")},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:   CategoryS3,
			Sheet:  "S3-Buckets",
			Global: true,
			Columns: []Column{
				{"Bucket Name", id},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:  CategoryECR,
			Sheet: "ECR",
			Columns: []Column{
				{"Repository Name", name},
				{"URI", attr("uri")},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:  CategoryLambda,
			Sheet: "Lambda",
			Columns: []Column{
				{"Function Name", name},
				{"Runtime", attr("runtime")},
				{"Memory (MB)", attr("memory_mb")},
				{"Timeout (s)", attr("timeout_s")},
				{"State", status},
				{"Region", region},
				{"Last Modified", attr("last_modified")},
			},
		},
		{
			Name:  CategoryELB,
			Sheet: "ELB",
			Columns: []Column{
				{"Name", name},
				{"DNS Name", attr("dns_name")},
				{"Type", attr("type")},
				{"Scheme", attr("scheme")},
				{"State", status},
				{"VPC", attr("vpc_id")},
				{"Region", region},
				{"Created", created},
			},
		},
		{
			Name:   CategoryRoute53,
			Sheet:  "Route53",
			Global: true,
			Columns: []Column{
				{"Zone Name", name},
				{"Zone ID", id},
				{"Private", attr("private")},
				{"Records", attr("record_count")},
			},
		},
		{
			Name:  CategorySQS,
			Sheet: "SQS",
			Columns: []Column{
				{"Queue Name", name},
				{"Queue URL", id},
				{"Region", region},
			},
		},
	}
}

// Lookup resolves a list of category names, preserving table order.
// An empty list means all categories.
func Lookup(names []string) ([]Category, error) {
	all := Categories()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(strings.ToLower(n))
		if n == "" {
			continue
		}
		found := false
		for _, c := range all {
			if c.Name == n {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown category %q", n)
		}
		wanted[n] = true
	}

	var selected []Category
	for _, c := range all {
		if wanted[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
