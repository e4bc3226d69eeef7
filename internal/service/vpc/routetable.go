package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteRouteTables はメイン以外の関連付けを解除し、メインでないルートテーブルを削除する
// メインの関連付けを持つテーブルはVPCと一緒に消えるので残す
func (c *Cleaner) deleteRouteTables(ctx context.Context) []common.Result {
	paginator := ec2.NewDescribeRouteTablesPaginator(c.client, &ec2.DescribeRouteTablesInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterVpcId, c.opts.VpcId)},
	})
	tables, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeRouteTablesOutput) []types.RouteTable {
		return o.RouteTables
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceRouteTable, err)}
	}

	var results []common.Result
	for _, rt := range tables {
		rtId := aws.ToString(rt.RouteTableId)
		for _, assoc := range ec2svc.NonMainAssociations(rt, "") {
			results = append(results, ec2svc.DisassociateRouteTable(ctx, c.client, c.out, aws.ToString(assoc.RouteTableAssociationId)))
		}

		if ec2svc.HasMainAssociation(rt) {
			c.out.Printf(common.TagSkip, "Main route table: %s", rtId)
			results = append(results, common.Skipped(common.ResourceRouteTable, rtId, "main"))
			continue
		}

		c.out.Printf(common.TagDelete, "Deleting route table: %s", rtId)
		_, err := c.client.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{
			RouteTableId: aws.String(rtId),
		})
		results = append(results, c.out.Record("delete", common.ResourceRouteTable, rtId, err, common.TagWarn))
	}
	return results
}
