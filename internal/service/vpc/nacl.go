package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteNetworkAcls はデフォルト以外のネットワークACLを削除する
func (c *Cleaner) deleteNetworkAcls(ctx context.Context) []common.Result {
	paginator := ec2.NewDescribeNetworkAclsPaginator(c.client, &ec2.DescribeNetworkAclsInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterVpcId, c.opts.VpcId)},
	})
	acls, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeNetworkAclsOutput) []types.NetworkAcl {
		return o.NetworkAcls
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceNetworkACL, err)}
	}

	var results []common.Result
	for _, acl := range acls {
		aclId := aws.ToString(acl.NetworkAclId)
		if aws.ToBool(acl.IsDefault) {
			c.out.Printf(common.TagSkip, "Default NACL: %s", aclId)
			results = append(results, common.Skipped(common.ResourceNetworkACL, aclId, "default"))
			continue
		}

		c.out.Printf(common.TagDelete, "Deleting NACL: %s", aclId)
		_, err := c.client.DeleteNetworkAcl(ctx, &ec2.DeleteNetworkAclInput{
			NetworkAclId: aws.String(aclId),
		})
		results = append(results, c.out.Record("delete", common.ResourceNetworkACL, aclId, err, common.TagWarn))
	}
	return results
}
