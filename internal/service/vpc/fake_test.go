package vpc

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
)

// fakeEC2 はEC2APIのテスト用実装
// 削除系の呼び出しを "操作:ID" の形で記録する
type fakeEC2 struct {
	mu sync.Mutex

	addresses   []types.Address
	endpoints   []types.VpcEndpoint
	igws        []types.InternetGateway
	routeTables []types.RouteTable
	subnets     []types.Subnet
	acls        []types.NetworkAcl
	groups      []types.SecurityGroup

	errs         map[string]error  // "操作:ID" ごとのエラー
	listErrs     map[string]error  // 一覧取得の操作ごとのエラー
	unsuccessful map[string]string // VPCエンドポイントID → 個別失敗のエラーコード

	calls []string
}

func apiErr(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

func (f *fakeEC2) record(op, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := op + ":" + id
	f.calls = append(f.calls, key)
	return f.errs[key]
}

func (f *fakeEC2) listErr(op string) error {
	return f.listErrs[op]
}

// count は指定した呼び出しの回数を返す
func (f *fakeEC2) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

// firstIndex は指定した操作が最初に呼ばれた位置を返す（呼ばれていなければ -1）
func (f *fakeEC2) firstIndex(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.calls {
		if len(c) > len(op) && c[:len(op)+1] == op+":" {
			return i
		}
	}
	return -1
}

func (f *fakeEC2) DescribeAddresses(ctx context.Context, params *ec2.DescribeAddressesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error) {
	if err := f.listErr("DescribeAddresses"); err != nil {
		return nil, err
	}
	return &ec2.DescribeAddressesOutput{Addresses: f.addresses}, nil
}

func (f *fakeEC2) ReleaseAddress(ctx context.Context, params *ec2.ReleaseAddressInput, optFns ...func(*ec2.Options)) (*ec2.ReleaseAddressOutput, error) {
	return &ec2.ReleaseAddressOutput{}, f.record("ReleaseAddress", aws.ToString(params.AllocationId))
}

func (f *fakeEC2) DescribeVpcEndpoints(ctx context.Context, params *ec2.DescribeVpcEndpointsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcEndpointsOutput, error) {
	if err := f.listErr("DescribeVpcEndpoints"); err != nil {
		return nil, err
	}
	return &ec2.DescribeVpcEndpointsOutput{VpcEndpoints: f.endpoints}, nil
}

func (f *fakeEC2) DeleteVpcEndpoints(ctx context.Context, params *ec2.DeleteVpcEndpointsInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcEndpointsOutput, error) {
	out := &ec2.DeleteVpcEndpointsOutput{}
	for _, id := range params.VpcEndpointIds {
		if err := f.record("DeleteVpcEndpoints", id); err != nil {
			return nil, err
		}
		if code, ok := f.unsuccessful[id]; ok {
			out.Unsuccessful = append(out.Unsuccessful, types.UnsuccessfulItem{
				ResourceId: aws.String(id),
				Error:      &types.UnsuccessfulItemError{Code: aws.String(code), Message: aws.String(code)},
			})
		}
	}
	return out, nil
}

func (f *fakeEC2) DescribeInternetGateways(ctx context.Context, params *ec2.DescribeInternetGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error) {
	if err := f.listErr("DescribeInternetGateways"); err != nil {
		return nil, err
	}
	return &ec2.DescribeInternetGatewaysOutput{InternetGateways: f.igws}, nil
}

func (f *fakeEC2) DetachInternetGateway(ctx context.Context, params *ec2.DetachInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DetachInternetGatewayOutput, error) {
	return &ec2.DetachInternetGatewayOutput{}, f.record("DetachInternetGateway", aws.ToString(params.InternetGatewayId))
}

func (f *fakeEC2) DeleteInternetGateway(ctx context.Context, params *ec2.DeleteInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteInternetGatewayOutput, error) {
	return &ec2.DeleteInternetGatewayOutput{}, f.record("DeleteInternetGateway", aws.ToString(params.InternetGatewayId))
}

func (f *fakeEC2) DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	if err := f.listErr("DescribeRouteTables"); err != nil {
		return nil, err
	}
	return &ec2.DescribeRouteTablesOutput{RouteTables: f.routeTables}, nil
}

func (f *fakeEC2) DisassociateRouteTable(ctx context.Context, params *ec2.DisassociateRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DisassociateRouteTableOutput, error) {
	return &ec2.DisassociateRouteTableOutput{}, f.record("DisassociateRouteTable", aws.ToString(params.AssociationId))
}

func (f *fakeEC2) DeleteRouteTable(ctx context.Context, params *ec2.DeleteRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DeleteRouteTableOutput, error) {
	return &ec2.DeleteRouteTableOutput{}, f.record("DeleteRouteTable", aws.ToString(params.RouteTableId))
}

func (f *fakeEC2) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	if err := f.listErr("DescribeSubnets"); err != nil {
		return nil, err
	}
	return &ec2.DescribeSubnetsOutput{Subnets: f.subnets}, nil
}

func (f *fakeEC2) DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error) {
	return &ec2.DeleteSubnetOutput{}, f.record("DeleteSubnet", aws.ToString(params.SubnetId))
}

func (f *fakeEC2) DescribeNetworkAcls(ctx context.Context, params *ec2.DescribeNetworkAclsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error) {
	if err := f.listErr("DescribeNetworkAcls"); err != nil {
		return nil, err
	}
	return &ec2.DescribeNetworkAclsOutput{NetworkAcls: f.acls}, nil
}

func (f *fakeEC2) DeleteNetworkAcl(ctx context.Context, params *ec2.DeleteNetworkAclInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNetworkAclOutput, error) {
	return &ec2.DeleteNetworkAclOutput{}, f.record("DeleteNetworkAcl", aws.ToString(params.NetworkAclId))
}

func (f *fakeEC2) DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	if err := f.listErr("DescribeSecurityGroups"); err != nil {
		return nil, err
	}
	return &ec2.DescribeSecurityGroupsOutput{SecurityGroups: f.groups}, nil
}

func (f *fakeEC2) DeleteSecurityGroup(ctx context.Context, params *ec2.DeleteSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error) {
	return &ec2.DeleteSecurityGroupOutput{}, f.record("DeleteSecurityGroup", aws.ToString(params.GroupId))
}

func (f *fakeEC2) DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error) {
	return &ec2.DeleteVpcOutput{}, f.record("DeleteVpc", aws.ToString(params.VpcId))
}

// fullVpc は依存リソースをひと通り持つVPCを返す
func fullVpc() *fakeEC2 {
	return &fakeEC2{
		addresses: []types.Address{
			{AllocationId: aws.String("eipalloc-free")},
			{AllocationId: aws.String("eipalloc-used"), AssociationId: aws.String("eipassoc-1")},
			{PublicIp: aws.String("203.0.113.10")},
		},
		endpoints: []types.VpcEndpoint{
			{VpcEndpointId: aws.String("vpce-1"), State: types.StateAvailable},
			{VpcEndpointId: aws.String("vpce-2"), State: types.StateDeleting},
		},
		igws: []types.InternetGateway{
			{InternetGatewayId: aws.String("igw-1")},
		},
		routeTables: []types.RouteTable{
			{
				RouteTableId: aws.String("rtb-main"),
				Associations: []types.RouteTableAssociation{
					{RouteTableAssociationId: aws.String("rtbassoc-main"), Main: aws.Bool(true)},
					{RouteTableAssociationId: aws.String("rtbassoc-m1"), SubnetId: aws.String("subnet-1")},
				},
			},
			{
				RouteTableId: aws.String("rtb-private"),
				Associations: []types.RouteTableAssociation{
					{RouteTableAssociationId: aws.String("rtbassoc-p1"), SubnetId: aws.String("subnet-2")},
				},
			},
		},
		subnets: []types.Subnet{
			{SubnetId: aws.String("subnet-1")},
			{SubnetId: aws.String("subnet-2")},
		},
		acls: []types.NetworkAcl{
			{NetworkAclId: aws.String("acl-default"), IsDefault: aws.Bool(true)},
			{NetworkAclId: aws.String("acl-custom"), IsDefault: aws.Bool(false)},
		},
		groups: []types.SecurityGroup{
			{GroupId: aws.String("sg-default"), GroupName: aws.String("default")},
			{GroupId: aws.String("sg-node"), GroupName: aws.String("eks-node")},
		},
	}
}
