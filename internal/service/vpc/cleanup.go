package vpc

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"ekscleanup/internal/service/common"
)

// Cleaner はVPCの依存リソースを依存順に削除し、最後にVPC本体を削除する
type Cleaner struct {
	client  EC2API
	out     *common.Reporter
	opts    Options
	limiter *rate.Limiter
}

type stage struct {
	name string
	run  func(ctx context.Context) []common.Result
}

// NewCleaner はCleanerを作成する
func NewCleaner(client EC2API, out *common.Reporter, opts Options) *Cleaner {
	if opts.MaxWorkers < 1 {
		opts.MaxWorkers = 1
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	return &Cleaner{
		client:  client,
		out:     out,
		opts:    opts,
		limiter: rate.NewLimiter(limit, opts.MaxWorkers),
	}
}

// Run は全ステージを順に実行する
// 個々のリソースの失敗は結果に記録するだけで、エラーとしては返さない
func (c *Cleaner) Run(ctx context.Context) (common.Report, error) {
	var report common.Report
	if err := validateOptions(c.opts); err != nil {
		return report, err
	}

	// 依存される側ほど後ろ
	stages := []stage{
		{common.ResourceElasticIP, c.releaseElasticIps},
		{common.ResourceVpcEndpoint, c.deleteVpcEndpoints},
		{common.ResourceInternetGateway, c.deleteInternetGateways},
		{common.ResourceRouteTable, c.deleteRouteTables},
		{common.ResourceSubnet, c.deleteSubnets},
		{common.ResourceNetworkACL, c.deleteNetworkAcls},
		{common.ResourceSecurityGroup, c.deleteSecurityGroups},
		{common.ResourceVpc, c.deleteVpc},
	}

	c.out.Printf(common.TagStart, "Cleaning up VPC: %s", c.opts.VpcId)
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%s の削除前に中断しました: %w", s.name, err)
		}
		report.Add(s.run(ctx)...)
	}
	return report, nil
}

// validateOptions はオプションのバリデーションを行います
func validateOptions(opts Options) error {
	if opts.VpcId == "" {
		return fmt.Errorf("VPC IDが指定されていません")
	}
	if !strings.HasPrefix(opts.VpcId, "vpc-") {
		return fmt.Errorf("VPC IDの形式が不正です: %s", opts.VpcId)
	}
	return nil
}
