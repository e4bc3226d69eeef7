package cfn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// DescribeStackResourcesAPI はスタックのリソース取得に必要なCloudFormation APIのサブセット
type DescribeStackResourcesAPI interface {
	DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error)
}

// ResourceTypeSubnet はサブネットのCloudFormationリソースタイプ
const ResourceTypeSubnet = "AWS::EC2::Subnet"

// StackResource はスタック内リソースの識別子と状態
type StackResource struct {
	LogicalId    string
	PhysicalId   string
	Type         string
	Status       string
	StatusReason string
}
