package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ekscleanup/internal/service/common"
)

// releaseElasticIps はアカウント内の未関連付けのElastic IPを解放する
// 解放は互いに独立しているので並列に実行する
func (c *Cleaner) releaseElasticIps(ctx context.Context) []common.Result {
	resp, err := c.client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceElasticIP, err)}
	}

	var results []common.Result
	var targets []string
	for _, addr := range resp.Addresses {
		allocationId := aws.ToString(addr.AllocationId)
		if allocationId == "" {
			continue
		}
		if associationId := aws.ToString(addr.AssociationId); associationId != "" {
			c.out.Printf(common.TagSkip, "EIP %s still associated (AssociationId: %s)", allocationId, associationId)
			results = append(results, common.Skipped(common.ResourceElasticIP, allocationId, "associated"))
			continue
		}
		targets = append(targets, allocationId)
	}

	released := common.ProcessAll(c.opts.MaxWorkers, targets, func(allocationId string) common.Result {
		return c.releaseAddress(ctx, allocationId)
	})
	return append(results, released...)
}

func (c *Cleaner) releaseAddress(ctx context.Context, allocationId string) common.Result {
	if err := c.limiter.Wait(ctx); err != nil {
		return common.Failed(common.ResourceElasticIP, allocationId, err)
	}
	c.out.Printf(common.TagDelete, "Releasing EIP: %s", allocationId)
	_, err := c.client.ReleaseAddress(ctx, &ec2.ReleaseAddressInput{
		AllocationId: aws.String(allocationId),
	})
	return c.out.Record("release", common.ResourceElasticIP, allocationId, err, common.TagWarn)
}
