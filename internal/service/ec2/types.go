package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DeleteSubnetAPI はサブネット削除に必要なEC2 APIのサブセット
type DeleteSubnetAPI interface {
	DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error)
}

// DisassociateRouteTableAPI はルートテーブルの関連付け解除に必要なEC2 APIのサブセット
type DisassociateRouteTableAPI interface {
	DisassociateRouteTable(ctx context.Context, params *ec2.DisassociateRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DisassociateRouteTableOutput, error)
}

// TerminateInstancesAPI はインスタンス終了と終了待ちに必要なEC2 APIのサブセット
type TerminateInstancesAPI interface {
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// フィルタ名
const (
	FilterVpcId               = "vpc-id"
	FilterSubnetId            = "subnet-id"
	FilterAttachmentVpcId     = "attachment.vpc-id"
	FilterAssociationSubnetId = "association.subnet-id"
)

// Filter はEC2の Describe 系APIに渡すフィルタを作る
func Filter(name string, values ...string) types.Filter {
	return types.Filter{
		Name:   aws.String(name),
		Values: values,
	}
}
