package subnet

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ekscleanup/internal/service/cfn"
	ec2svc "ekscleanup/internal/service/ec2"
	"ekscleanup/internal/service/elb"
)

// EC2API はサブネット削除で使うEC2 APIのサブセット（*ec2.Client が満たす）
type EC2API interface {
	ec2svc.DeleteSubnetAPI
	ec2svc.DisassociateRouteTableAPI
	ec2svc.TerminateInstancesAPI

	DescribeNatGateways(ctx context.Context, params *ec2.DescribeNatGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNatGatewaysOutput, error)
	DeleteNatGateway(ctx context.Context, params *ec2.DeleteNatGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNatGatewayOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
	DetachNetworkInterface(ctx context.Context, params *ec2.DetachNetworkInterfaceInput, optFns ...func(*ec2.Options)) (*ec2.DetachNetworkInterfaceOutput, error)
	DeleteNetworkInterface(ctx context.Context, params *ec2.DeleteNetworkInterfaceInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNetworkInterfaceOutput, error)
	DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error)
}

// ClientSet はサブネット削除で使うクライアント一式
type ClientSet struct {
	EC2   EC2API
	Cfn   cfn.DescribeStackResourcesAPI
	ELB   elb.ClassicAPI
	ELBV2 elb.V2API
}

// Options はサブネット削除のパラメータを格納する構造体
type Options struct {
	StackName              string
	LoadBalancerENIPattern string        // ロードバランサーが作ったENIの説明に一致するパターン
	WaitTimeout            time.Duration // NAT Gateway削除・インスタンス終了の待機上限
	PollInterval           time.Duration // NAT Gatewayの状態確認の初回間隔
	LoadBalancerSettle     time.Duration // ロードバランサー削除後の待ち時間
	InstanceSettle         time.Duration // インスタンス終了後の待ち時間
	DetachSettle           time.Duration // ENIデタッチ後の待ち時間
}

// デフォルト値
const (
	DefaultLoadBalancerENIPattern = "*ELB*"
	DefaultWaitTimeout            = 10 * time.Minute
	DefaultPollInterval           = 5 * time.Second
	DefaultLoadBalancerSettle     = 10 * time.Second
	DefaultInstanceSettle         = 5 * time.Second
	DefaultDetachSettle           = 2 * time.Second
)
