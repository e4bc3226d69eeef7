package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteSecurityGroups は "default" 以外のセキュリティグループを削除する
func (c *Cleaner) deleteSecurityGroups(ctx context.Context) []common.Result {
	paginator := ec2.NewDescribeSecurityGroupsPaginator(c.client, &ec2.DescribeSecurityGroupsInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterVpcId, c.opts.VpcId)},
	})
	groups, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeSecurityGroupsOutput) []types.SecurityGroup {
		return o.SecurityGroups
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceSecurityGroup, err)}
	}

	var results []common.Result
	for _, sg := range groups {
		groupId := aws.ToString(sg.GroupId)
		if aws.ToString(sg.GroupName) == DefaultSecurityGroupName {
			c.out.Printf(common.TagSkip, "Default SG: %s", groupId)
			results = append(results, common.Skipped(common.ResourceSecurityGroup, groupId, "default"))
			continue
		}

		c.out.Printf(common.TagDelete, "Deleting SG: %s", groupId)
		_, err := c.client.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
			GroupId: aws.String(groupId),
		})
		results = append(results, c.out.Record("delete", common.ResourceSecurityGroup, groupId, err, common.TagWarn))
	}
	return results
}
