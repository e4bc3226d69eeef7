package subnet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ekscleanup/internal/service/cfn"
	"ekscleanup/internal/service/common"
	ec2svc "ekscleanup/internal/service/ec2"
)

// Cleaner はスタック削除で DELETE_FAILED になったサブネットを、
// 依存リソースを外してから削除する
type Cleaner struct {
	clients ClientSet
	out     *common.Reporter
	opts    Options
	lbENI   *common.Matcher
}

// NewCleaner はCleanerを作成する
// 待機時間の未指定はデフォルト値で補う（待ち時間系の0はそのまま0として扱う）
func NewCleaner(clients ClientSet, out *common.Reporter, opts Options) (*Cleaner, error) {
	if opts.StackName == "" {
		return nil, fmt.Errorf("スタック名が指定されていません")
	}
	if opts.LoadBalancerENIPattern == "" {
		opts.LoadBalancerENIPattern = DefaultLoadBalancerENIPattern
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = DefaultWaitTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	matcher, err := common.CompilePattern(opts.LoadBalancerENIPattern)
	if err != nil {
		return nil, fmt.Errorf("ENIパターン '%s' が不正です: %w", opts.LoadBalancerENIPattern, err)
	}

	return &Cleaner{
		clients: clients,
		out:     out,
		opts:    opts,
		lbENI:   matcher,
	}, nil
}

// Run は DELETE_FAILED のサブネットを順に処理する
// スタックの取得に失敗した場合と、待機がタイムアウトした場合はエラーを返す
func (c *Cleaner) Run(ctx context.Context) (common.Report, error) {
	var report common.Report

	failed, err := c.FailedSubnets(ctx)
	if err != nil {
		return report, err
	}
	if len(failed) == 0 {
		c.out.Printf(common.TagDone, "No DELETE_FAILED subnets found.")
		return report, nil
	}

	subnetIds := cfn.PhysicalIds(failed)
	c.out.Printf(common.TagInfo, "Subnets to process: %s", strings.Join(subnetIds, ", "))

	var unfinished []string
	for _, subnetId := range subnetIds {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%s の処理前に中断しました: %w", subnetId, err)
		}

		c.out.Println()
		c.out.Println(fmt.Sprintf("=== Processing %s ===", subnetId))

		results, err := c.cleanupSubnet(ctx, subnetId)
		report.Add(results...)
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return report, err
		}
		// タイムアウトしたサブネットは残りの手順を飛ばして次へ
		c.out.Printf(common.TagError, "Gave up on subnet %s: %v", subnetId, err)
		unfinished = append(unfinished, subnetId)
	}

	if len(unfinished) > 0 {
		return report, fmt.Errorf("%w: %d件のサブネットが未完了です: %s",
			common.ErrWaitTimeout, len(unfinished), strings.Join(unfinished, ", "))
	}
	return report, nil
}

// FailedSubnets はスタック内の DELETE_FAILED のサブネットを返す
func (c *Cleaner) FailedSubnets(ctx context.Context) ([]cfn.StackResource, error) {
	c.out.Printf(common.TagInfo, "Searching DELETE_FAILED subnets in stack: %s", c.opts.StackName)
	return cfn.GetFailedSubnetsFromStack(ctx, c.clients.Cfn, c.opts.StackName)
}

// cleanupSubnet は1つのサブネットについて依存リソースの削除からサブネット削除までを行う
// 返すエラーは待機のタイムアウトかキャンセルのみ
func (c *Cleaner) cleanupSubnet(ctx context.Context, subnetId string) ([]common.Result, error) {
	var results []common.Result

	natResults, err := c.deleteNatGateways(ctx, subnetId)
	results = append(results, natResults...)
	if err != nil {
		return results, err
	}

	eniResults, err := c.deleteNetworkInterfaces(ctx, subnetId)
	results = append(results, eniResults...)
	if err != nil {
		return results, err
	}

	results = append(results, c.disassociateRouteTables(ctx, subnetId)...)

	res := ec2svc.DeleteSubnet(ctx, c.clients.EC2, c.out, subnetId, common.TagError)
	if res.Outcome == common.OutcomeDeleted {
		c.out.Printf(common.TagSuccess, "Subnet %s deleted.", subnetId)
	}
	return append(results, res), nil
}

// stopsSubnet はサブネットの処理を打ち切るべきエラーか判定する
func stopsSubnet(err error) bool {
	switch common.ClassifyError(err) {
	case common.KindTimeout, common.KindCanceled:
		return true
	default:
		return false
	}
}
