package cfn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// GetFailedSubnetsFromStack はスタック削除で DELETE_FAILED になったサブネットを返す
// 該当がなければ空スライスを返す（エラーではない）
func GetFailedSubnetsFromStack(ctx context.Context, cfnClient DescribeStackResourcesAPI, stackName string) ([]StackResource, error) {
	resources, err := GetStackResources(ctx, cfnClient, stackName)
	if err != nil {
		return nil, err
	}
	return FilterResources(resources, ResourceTypeSubnet, string(types.ResourceStatusDeleteFailed)), nil
}

// FilterResources はタイプとステータスが一致し、物理IDを持つリソースだけを返す
func FilterResources(resources []StackResource, resourceType, status string) []StackResource {
	matched := []StackResource{}
	for _, r := range resources {
		if r.Type != resourceType || r.Status != status || r.PhysicalId == "" {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// PhysicalIds はリソースの物理IDを順序を保って返す
func PhysicalIds(resources []StackResource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.PhysicalId)
	}
	return ids
}
