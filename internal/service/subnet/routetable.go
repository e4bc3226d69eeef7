package subnet

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// disassociateRouteTables はサブネットへのメインでない関連付けを解除する
func (c *Cleaner) disassociateRouteTables(ctx context.Context, subnetId string) []common.Result {
	c.out.Printf(common.TagInfo, "Checking route table associations in %s...", subnetId)
	paginator := ec2.NewDescribeRouteTablesPaginator(c.clients.EC2, &ec2.DescribeRouteTablesInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterAssociationSubnetId, subnetId)},
	})
	tables, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeRouteTablesOutput) []types.RouteTable {
		return o.RouteTables
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceRouteTableAssoc, err)}
	}

	var results []common.Result
	for _, rt := range tables {
		for _, assoc := range ec2svc.NonMainAssociations(rt, subnetId) {
			results = append(results, ec2svc.DisassociateRouteTable(ctx, c.clients.EC2, c.out, aws.ToString(assoc.RouteTableAssociationId)))
		}
	}
	return results
}
