package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// Clients AwsClients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	cfn   *cloudformation.Client
	ec2   *ec2.Client
	elb   *elasticloadbalancing.Client
	elbv2 *elasticloadbalancingv2.Client
}

// NewAwsClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewAwsClients(ctx context.Context, awsCtx *Context) (*Clients, error) {
	cfg, err := awsCtx.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// Region は実際に使われるリージョンを返す
func (c *Clients) Region() string {
	return c.cfg.Region
}

// Cfn は遅延初期化でCloudFormationクライアントを取得
func (c *Clients) Cfn() *cloudformation.Client {
	if c.cfn == nil {
		c.cfn = cloudformation.NewFromConfig(c.cfg)
	}
	return c.cfn
}

// Ec2 は遅延初期化でEC2クライアントを取得
func (c *Clients) Ec2() *ec2.Client {
	if c.ec2 == nil {
		c.ec2 = ec2.NewFromConfig(c.cfg)
	}
	return c.ec2
}

// Elb は遅延初期化でClassic ELBクライアントを取得
func (c *Clients) Elb() *elasticloadbalancing.Client {
	if c.elb == nil {
		c.elb = elasticloadbalancing.NewFromConfig(c.cfg)
	}
	return c.elb
}

// ElbV2 は遅延初期化でELBv2（ALB/NLB）クライアントを取得
func (c *Clients) ElbV2() *elasticloadbalancingv2.Client {
	if c.elbv2 == nil {
		c.elbv2 = elasticloadbalancingv2.NewFromConfig(c.cfg)
	}
	return c.elbv2
}
