package ec2

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
)

// TerminateOptions はインスタンス終了待ちの設定
type TerminateOptions struct {
	Timeout     time.Duration // 終了待ちの上限時間
	Interval    time.Duration // ポーリングの初回間隔
	MaxInterval time.Duration // ポーリングの最長間隔（0なら Interval の8倍）
}

// TerminateInstance はEC2インスタンスを終了し、terminated になるまで待つ
func TerminateInstance(ctx context.Context, client TerminateInstancesAPI, out *common.Reporter, instanceId string, opts TerminateOptions) common.Result {
	out.Printf(common.TagInfo, "Terminating EC2 instance: %s", instanceId)
	_, err := client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceId},
	})
	if err != nil {
		return out.Record("terminate", common.ResourceInstance, instanceId, err, common.TagError)
	}

	out.Printf(common.TagWait, "Waiting for instance %s to terminate...", instanceId)
	if err := waitTerminated(ctx, client, out, instanceId, opts); err != nil {
		out.Printf(common.TagError, "Instance %s did not terminate: %v", instanceId, err)
		return common.Failed(common.ResourceInstance, instanceId, err)
	}

	out.Printf(common.TagDone, "Instance %s terminated.", instanceId)
	return common.Result{Resource: common.ResourceInstance, ID: instanceId, Outcome: common.OutcomeDeleted}
}

// waitTerminated はインスタンスが terminated になるまでポーリングする
// 上限時間を過ぎた場合は ErrWaitTimeout を包んだエラーを返す
func waitTerminated(ctx context.Context, client TerminateInstancesAPI, out *common.Reporter, instanceId string, opts TerminateOptions) error {
	pollOpts := common.PollOptions{
		Interval:    opts.Interval,
		MaxInterval: opts.MaxInterval,
		Timeout:     opts.Timeout,
	}
	return common.PollUntil(ctx, pollOpts, func(ctx context.Context) (bool, error) {
		resp, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
			InstanceIds: []string{instanceId},
		})
		if err != nil {
			// 終了後しばらくすると見つからなくなる
			if common.IsNotFound(err) {
				return true, nil
			}
			return false, err
		}

		state, ok := instanceState(resp)
		if !ok || state == types.InstanceStateNameTerminated {
			return true, nil
		}
		out.Printf(common.TagWait, "Instance %s still in %s state...", instanceId, state)
		return false, nil
	})
}

func instanceState(resp *ec2.DescribeInstancesOutput) (types.InstanceStateName, bool) {
	for _, r := range resp.Reservations {
		for _, inst := range r.Instances {
			if inst.State != nil {
				return inst.State.Name, true
			}
		}
	}
	return "", false
}
