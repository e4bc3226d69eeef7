package subnet

import (
	"context"

	"ekscleanup/internal/service/common"
	"ekscleanup/internal/service/elb"
)

// deleteLoadBalancerFor はENIを使っているロードバランサーを1つだけ削除する
// Classic を優先し、見つからずENIの説明がALB/NLBを指していればそちらを探す
// Classic の一覧取得に失敗してもALB/NLBの検索は行う
func (c *Cleaner) deleteLoadBalancerFor(ctx context.Context, subnetId, eniId, description string) ([]common.Result, error) {
	resource := common.ResourceLoadBalancer
	lb, found, err := elb.FindClassicInSubnet(ctx, c.clients.ELB, subnetId)
	if !found {
		if lbType, name, ok := elb.ParseENIDescription(description); ok {
			if err != nil {
				c.out.Printf(common.TagWarn, "Could not list classic ELBs for ENI %s: %v", eniId, err)
			}
			resource = common.ResourceLoadBalancerV2
			lb, found, err = elb.FindV2InSubnet(ctx, c.clients.ELBV2, subnetId, lbType, name)
		}
	}
	if err != nil {
		c.out.Printf(common.TagWarn, "Failed to delete ELB for ENI %s: %v", eniId, err)
		return []common.Result{common.Failed(resource, "-", err)}, nil
	}
	if !found {
		c.out.Printf(common.TagInfo, "No load balancer in %s uses ENI %s.", subnetId, eniId)
		return nil, nil
	}

	c.out.Printf(common.TagDelete, "Deleting %s (%s): %s", resource, lb.Type, lb.Name)
	if lb.ARN == "" {
		err = elb.DeleteClassic(ctx, c.clients.ELB, lb.Name)
	} else {
		err = elb.DeleteV2(ctx, c.clients.ELBV2, lb.ARN)
	}
	res := c.out.Record("delete", resource, lb.Name, err, common.TagWarn)
	if err != nil {
		return []common.Result{res}, nil
	}

	if err := c.out.Pause(ctx, c.opts.LoadBalancerSettle, "ロードバランサー削除の反映待ち"); err != nil {
		return []common.Result{res}, err
	}
	return []common.Result{res}, nil
}
