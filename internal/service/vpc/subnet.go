package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteSubnets はVPC内のサブネットを削除する
func (c *Cleaner) deleteSubnets(ctx context.Context) []common.Result {
	paginator := ec2.NewDescribeSubnetsPaginator(c.client, &ec2.DescribeSubnetsInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterVpcId, c.opts.VpcId)},
	})
	subnets, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeSubnetsOutput) []types.Subnet {
		return o.Subnets
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceSubnet, err)}
	}

	results := make([]common.Result, 0, len(subnets))
	for _, subnet := range subnets {
		results = append(results, ec2svc.DeleteSubnet(ctx, c.client, c.out, aws.ToString(subnet.SubnetId), common.TagWarn))
	}
	return results
}
