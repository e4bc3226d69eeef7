package subnet

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteNetworkInterfaces はサブネット内のENIを、使っているリソースごと削除する
func (c *Cleaner) deleteNetworkInterfaces(ctx context.Context, subnetId string) ([]common.Result, error) {
	c.out.Printf(common.TagInfo, "Checking for network interfaces in %s...", subnetId)
	paginator := ec2.NewDescribeNetworkInterfacesPaginator(c.clients.EC2, &ec2.DescribeNetworkInterfacesInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterSubnetId, subnetId)},
	})
	enis, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeNetworkInterfacesOutput) []types.NetworkInterface {
		return o.NetworkInterfaces
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceNetworkInterface, err)}, nil
	}

	var results []common.Result
	for _, eni := range enis {
		eniResults, err := c.deleteNetworkInterface(ctx, subnetId, eni)
		results = append(results, eniResults...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// deleteNetworkInterface は1つのENIについて
// ロードバランサー削除、インスタンス終了またはデタッチ、ENI削除の順に行う
func (c *Cleaner) deleteNetworkInterface(ctx context.Context, subnetId string, eni types.NetworkInterface) ([]common.Result, error) {
	eniId := aws.ToString(eni.NetworkInterfaceId)
	description := aws.ToString(eni.Description)
	var results []common.Result

	if c.lbENI.Match(description) {
		c.out.Printf(common.TagInfo, "ENI %s is associated with an ELB (%s). Attempting to delete related ELB.", eniId, description)
		lbResults, err := c.deleteLoadBalancerFor(ctx, subnetId, eniId, description)
		results = append(results, lbResults...)
		if err != nil {
			return results, err
		}
	}

	if att := eni.Attachment; att != nil {
		if instanceId := aws.ToString(att.InstanceId); instanceId != "" {
			c.out.Printf(common.TagInfo, "ENI %s is attached to instance %s.", eniId, instanceId)
			res := ec2svc.TerminateInstance(ctx, c.clients.EC2, c.out, instanceId, ec2svc.TerminateOptions{
				Timeout:  c.opts.WaitTimeout,
				Interval: c.opts.PollInterval,
			})
			results = append(results, res)
			if stopsSubnet(res.Err) {
				return results, res.Err
			}
			if err := c.out.Pause(ctx, c.opts.InstanceSettle, "インスタンス終了の反映待ち"); err != nil {
				return results, err
			}
		} else {
			_, err := c.clients.EC2.DetachNetworkInterface(ctx, &ec2.DetachNetworkInterfaceInput{
				AttachmentId: att.AttachmentId,
				Force:        aws.Bool(true),
			})
			switch {
			case err == nil:
				if err := c.out.Pause(ctx, c.opts.DetachSettle, "デタッチの反映待ち"); err != nil {
					return results, err
				}
			case !common.IsNotFound(err):
				// デタッチできないENIは削除もできないので残す
				c.out.Printf(common.TagWarn, "Could not detach ENI %s: %v", eniId, err)
				return append(results, common.Failed(common.ResourceNetworkInterface, eniId, err)), nil
			}
		}
	}

	c.out.Printf(common.TagDelete, "ENI: %s", eniId)
	_, err := c.clients.EC2.DeleteNetworkInterface(ctx, &ec2.DeleteNetworkInterfaceInput{
		NetworkInterfaceId: aws.String(eniId),
	})
	return append(results, c.out.Record("delete", common.ResourceNetworkInterface, eniId, err, common.TagWarn)), nil
}
