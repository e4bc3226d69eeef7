package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ekscleanup/internal/service/common"
)

// deleteVpc はVPC本体を削除する
// 依存リソースが残っている場合は失敗ではなく blocked として報告する
func (c *Cleaner) deleteVpc(ctx context.Context) []common.Result {
	vpcId := c.opts.VpcId
	c.out.Printf(common.TagFinal, "Attempting to delete VPC: %s", vpcId)

	_, err := c.client.DeleteVpc(ctx, &ec2.DeleteVpcInput{
		VpcId: aws.String(vpcId),
	})

	res := common.Result{Resource: common.ResourceVpc, ID: vpcId, Err: err}
	switch kind := common.ClassifyError(err); kind {
	case common.KindNone:
		c.out.Printf(common.TagSuccess, "VPC %s deleted.", vpcId)
		res.Outcome = common.OutcomeDeleted
	case common.KindDependency:
		c.out.Printf(common.TagBlocked, "VPC %s still has dependencies.", vpcId)
		res.Outcome = common.OutcomeBlocked
		res.Reason = kind.String()
	case common.KindNotFound:
		c.out.Printf(common.TagSkip, "VPC %s already deleted.", vpcId)
		res.Outcome = common.OutcomeSkipped
		res.Reason = kind.String()
	default:
		c.out.Printf(common.TagError, "Failed to delete VPC %s: %v", vpcId, err)
		res.Outcome = common.OutcomeFailed
		res.Reason = kind.String()
	}
	return []common.Result{res}
}
