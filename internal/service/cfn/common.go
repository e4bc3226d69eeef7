package cfn

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// GetStackResources はスタックからリソース一覧を取得する関数
func GetStackResources(ctx context.Context, cfnClient DescribeStackResourcesAPI, stackName string) ([]StackResource, error) {
	if stackName == "" {
		return nil, fmt.Errorf("スタック名が指定されていません")
	}

	resp, err := cfnClient.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("CloudFormationスタック '%s' のリソース取得に失敗: %w", stackName, err)
	}

	resources := make([]StackResource, 0, len(resp.StackResources))
	for _, r := range resp.StackResources {
		resources = append(resources, StackResource{
			LogicalId:    awssdk.ToString(r.LogicalResourceId),
			PhysicalId:   awssdk.ToString(r.PhysicalResourceId),
			Type:         awssdk.ToString(r.ResourceType),
			Status:       string(r.ResourceStatus),
			StatusReason: awssdk.ToString(r.ResourceStatusReason),
		})
	}
	return resources, nil
}
