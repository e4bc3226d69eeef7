package vpc

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"

	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// deleteVpcEndpoints はVPC内のVPCエンドポイントを削除する
func (c *Cleaner) deleteVpcEndpoints(ctx context.Context) []common.Result {
	paginator := ec2.NewDescribeVpcEndpointsPaginator(c.client, &ec2.DescribeVpcEndpointsInput{
		Filters: []types.Filter{ec2svc.Filter(ec2svc.FilterVpcId, c.opts.VpcId)},
	})
	endpoints, err := ec2svc.CollectPages(ctx, paginator, func(o *ec2.DescribeVpcEndpointsOutput) []types.VpcEndpoint {
		return o.VpcEndpoints
	})
	if err != nil {
		return []common.Result{c.out.ListFailed(common.ResourceVpcEndpoint, err)}
	}

	var results []common.Result
	for _, ep := range endpoints {
		endpointId := aws.ToString(ep.VpcEndpointId)
		if isGoneState(string(ep.State)) {
			c.out.Printf(common.TagSkip, "VPC endpoint %s is already %s.", endpointId, strings.ToLower(string(ep.State)))
			results = append(results, common.Skipped(common.ResourceVpcEndpoint, endpointId, strings.ToLower(string(ep.State))))
			continue
		}

		c.out.Printf(common.TagDelete, "Deleting VPC endpoint: %s", endpointId)
		out, err := c.client.DeleteVpcEndpoints(ctx, &ec2.DeleteVpcEndpointsInput{
			VpcEndpointIds: []string{endpointId},
		})
		if err == nil {
			err = unsuccessfulError(out.Unsuccessful)
		}
		results = append(results, c.out.Record("delete", common.ResourceVpcEndpoint, endpointId, err, common.TagWarn))
	}
	return results
}

func isGoneState(state string) bool {
	return strings.EqualFold(state, "deleting") || strings.EqualFold(state, "deleted")
}

// unsuccessfulError はバッチ削除APIが返す個別失敗をAPIエラーとして扱えるように変換する
func unsuccessfulError(items []types.UnsuccessfulItem) error {
	if len(items) == 0 {
		return nil
	}
	// 1件ずつ削除しているので先頭だけ見ればよい
	item := items[0]
	if item.Error == nil {
		return errors.New("unsuccessful without error detail")
	}
	return &smithy.GenericAPIError{
		Code:    aws.ToString(item.Error.Code),
		Message: aws.ToString(item.Error.Message),
	}
}
