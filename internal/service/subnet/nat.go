package subnet

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteNatGateways はサブネット内のNAT Gatewayを削除し、deleted になるまで待つ
func (c *Cleaner) deleteNatGateways(ctx context.Context, subnetId string) ([]common.Result, error) {
	c.out.Printf(common.TagInfo, "Checking for NAT Gateways in %s...", subnetId)
	paginator := ec2.NewDescribeNatGatewaysPaginator(c.clients.EC2, &ec2.DescribeNatGatewaysInput{
		Filter: []types.Filter{ec2svc.Filter(ec2svc.FilterSubnetId, subnetId)},
	})
	gateways, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeNatGatewaysOutput) []types.NatGateway {
		return o.NatGateways
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceNatGateway, err)}, nil
	}

	var results []common.Result
	for _, nat := range gateways {
		natId := aws.ToString(nat.NatGatewayId)
		if nat.State == types.NatGatewayStateDeleted {
			c.out.Printf(common.TagSkip, common.AlreadyGoneFormat, common.ResourceNatGateway, natId)
			results = append(results, common.Skipped(common.ResourceNatGateway, natId, common.KindNotFound.String()))
			continue
		}

		c.out.Printf(common.TagDelete, "NAT Gateway: %s", natId)
		_, err := c.clients.EC2.DeleteNatGateway(ctx, &ec2.DeleteNatGatewayInput{
			NatGatewayId: aws.String(natId),
		})
		if err != nil {
			results = append(results, c.out.Record("delete", common.ResourceNatGateway, natId, err, common.TagWarn))
			continue
		}

		if err := c.waitNatGatewayDeleted(ctx, natId); err != nil {
			c.out.Printf(common.TagError, "NAT Gateway %s was not deleted: %v", natId, err)
			results = append(results, common.Failed(common.ResourceNatGateway, natId, err))
			if stopsSubnet(err) {
				return results, err
			}
			continue
		}
		c.out.Printf(common.TagDone, "NAT Gateway %s deleted.", natId)
		results = append(results, common.Result{Resource: common.ResourceNatGateway, ID: natId, Outcome: common.OutcomeDeleted})
	}
	return results, nil
}

// waitNatGatewayDeleted はNAT Gatewayが deleted になるまでポーリングする
// 見つからなくなった場合も削除済みとみなす
func (c *Cleaner) waitNatGatewayDeleted(ctx context.Context, natId string) error {
	opts := common.PollOptions{
		Interval: c.opts.PollInterval,
		Timeout:  c.opts.WaitTimeout,
	}
	return common.PollUntil(ctx, opts, func(ctx context.Context) (bool, error) {
		resp, err := c.clients.EC2.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{
			NatGatewayIds: []string{natId},
		})
		if err != nil {
			if common.IsNotFound(err) {
				return true, nil
			}
			return false, err
		}
		if len(resp.NatGateways) == 0 {
			return true, nil
		}

		state := resp.NatGateways[0].State
		if state == types.NatGatewayStateDeleted {
			return true, nil
		}
		c.out.Printf(common.TagWait, "NAT Gateway %s still in %s state...", natId, state)
		return false, nil
	})
}
