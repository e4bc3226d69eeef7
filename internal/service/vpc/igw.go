package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteInternetGateways はVPCにアタッチされたインターネットゲートウェイをデタッチして削除する
func (c *Cleaner) deleteInternetGateways(ctx context.Context) []common.Result {
	paginator := ec2.NewDescribeInternetGatewaysPaginator(c.client, &ec2.DescribeInternetGatewaysInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterAttachmentVpcId, c.opts.VpcId)},
	})
	igws, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeInternetGatewaysOutput) []types.InternetGateway {
		return o.InternetGateways
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceInternetGateway, err)}
	}

	var results []common.Result
	for _, igw := range igws {
		igwId := aws.ToString(igw.InternetGatewayId)
		c.out.Printf(common.TagDelete, "Detaching and deleting IGW: %s", igwId)

		_, err := c.client.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
			InternetGatewayId: aws.String(igwId),
			VpcId:             aws.String(c.opts.VpcId),
		})
		// デタッチ済み・削除済みなら削除に進む
		if err != nil && !common.IsNotFound(err) {
			results = append(results, c.out.Record("detach", common.ResourceInternetGateway, igwId, err, common.TagWarn))
			continue
		}

		_, err = c.client.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
			InternetGatewayId: aws.String(igwId),
		})
		results = append(results, c.out.Record("delete", common.ResourceInternetGateway, igwId, err, common.TagWarn))
	}
	return results
}
