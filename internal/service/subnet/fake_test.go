package subnet

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	classictypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/smithy-go"
)

// fakeAWS はサブネット削除で使うAPIのテスト用実装
// EC2・ELB・ELBv2の呼び出しを1つの記録にまとめて順序を確認できるようにする
type fakeAWS struct {
	mu sync.Mutex

	failedSubnets []string
	stackErr      error

	natGateways    map[string][]types.NatGateway        // サブネットID → NAT Gateway
	natStates      map[string][]types.NatGatewayState   // NAT Gateway ID → 状態確認で返す状態の列
	enis           map[string][]types.NetworkInterface  // サブネットID → ENI
	instanceStates map[string][]types.InstanceStateName // インスタンスID → 状態確認で返す状態の列
	routeTables    map[string][]types.RouteTable        // サブネットID → 関連付けのあるルートテーブル
	classicLBs     []classictypes.LoadBalancerDescription
	v2LBs          []elbv2types.LoadBalancer

	errs  map[string]error
	calls []string
}

func apiErr(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

func (f *fakeAWS) record(op, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := op + ":" + id
	f.calls = append(f.calls, key)
	return f.errs[key]
}

func (f *fakeAWS) count(key string) int {
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

func (f *fakeAWS) countOp(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, op+":") {
			n++
		}
	}
	return n
}

func (f *fakeAWS) index(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.calls {
		if c == key {
			return i
		}
	}
	return -1
}

// next は状態の列の先頭を取り出す（最後の1つは繰り返し返す）
func next[S any](seq map[string][]S, id string) (S, bool) {
	states := seq[id]
	if len(states) == 0 {
		var zero S
		return zero, false
	}
	if len(states) > 1 {
		seq[id] = states[1:]
	}
	return states[0], true
}

func filterValue(filters []types.Filter) string {
	if len(filters) == 0 || len(filters[0].Values) == 0 {
		return ""
	}
	return filters[0].Values[0]
}

func (f *fakeAWS) clients() ClientSet {
	return ClientSet{
		EC2:   f,
		Cfn:   f,
		ELB:   &fakeClassic{f: f},
		ELBV2: &fakeV2{f: f},
	}
}

// CloudFormation

func (f *fakeAWS) DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error) {
	if f.stackErr != nil {
		return nil, f.stackErr
	}
	out := &cloudformation.DescribeStackResourcesOutput{}
	for i, id := range f.failedSubnets {
		out.StackResources = append(out.StackResources, cfntypes.StackResource{
			LogicalResourceId:  aws.String("Subnet" + string(rune('A'+i))),
			PhysicalResourceId: aws.String(id),
			ResourceType:       aws.String("AWS::EC2::Subnet"),
			ResourceStatus:     cfntypes.ResourceStatusDeleteFailed,
		})
	}
	return out, nil
}

// EC2

func (f *fakeAWS) DescribeNatGateways(ctx context.Context, params *ec2.DescribeNatGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNatGatewaysOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(params.NatGatewayIds) > 0 {
		natId := params.NatGatewayIds[0]
		state, ok := next(f.natStates, natId)
		if !ok {
			return nil, apiErr("NatGatewayNotFound")
		}
		return &ec2.DescribeNatGatewaysOutput{NatGateways: []types.NatGateway{
			{NatGatewayId: aws.String(natId), State: state},
		}}, nil
	}
	return &ec2.DescribeNatGatewaysOutput{NatGateways: f.natGateways[filterValue(params.Filter)]}, nil
}

func (f *fakeAWS) DeleteNatGateway(ctx context.Context, params *ec2.DeleteNatGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNatGatewayOutput, error) {
	return &ec2.DeleteNatGatewayOutput{}, f.record("DeleteNatGateway", aws.ToString(params.NatGatewayId))
}

func (f *fakeAWS) DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error) {
	return &ec2.DescribeNetworkInterfacesOutput{NetworkInterfaces: f.enis[filterValue(params.Filters)]}, nil
}

func (f *fakeAWS) DetachNetworkInterface(ctx context.Context, params *ec2.DetachNetworkInterfaceInput, optFns ...func(*ec2.Options)) (*ec2.DetachNetworkInterfaceOutput, error) {
	return &ec2.DetachNetworkInterfaceOutput{}, f.record("DetachNetworkInterface", aws.ToString(params.AttachmentId))
}

func (f *fakeAWS) DeleteNetworkInterface(ctx context.Context, params *ec2.DeleteNetworkInterfaceInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNetworkInterfaceOutput, error) {
	return &ec2.DeleteNetworkInterfaceOutput{}, f.record("DeleteNetworkInterface", aws.ToString(params.NetworkInterfaceId))
}

func (f *fakeAWS) TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error) {
	return &ec2.TerminateInstancesOutput{}, f.record("TerminateInstances", params.InstanceIds[0])
}

func (f *fakeAWS) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	instanceId := params.InstanceIds[0]
	if err := f.record("DescribeInstances", instanceId); err != nil {
		return nil, err
	}
	f.mu.Lock()
	state, _ := next(f.instanceStates, instanceId)
	f.mu.Unlock()
	return &ec2.DescribeInstancesOutput{Reservations: []types.Reservation{{
		Instances: []types.Instance{{
			InstanceId: aws.String(instanceId),
			State:      &types.InstanceState{Name: state},
		}},
	}}}, nil
}

func (f *fakeAWS) DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	return &ec2.DescribeRouteTablesOutput{RouteTables: f.routeTables[filterValue(params.Filters)]}, nil
}

func (f *fakeAWS) DisassociateRouteTable(ctx context.Context, params *ec2.DisassociateRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DisassociateRouteTableOutput, error) {
	return &ec2.DisassociateRouteTableOutput{}, f.record("DisassociateRouteTable", aws.ToString(params.AssociationId))
}

func (f *fakeAWS) DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error) {
	return &ec2.DeleteSubnetOutput{}, f.record("DeleteSubnet", aws.ToString(params.SubnetId))
}

// Classic ELB

type fakeClassic struct {
	f *fakeAWS
}

func (c *fakeClassic) DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancing.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancing.Options)) (*elasticloadbalancing.DescribeLoadBalancersOutput, error) {
	if err := c.f.errs["DescribeClassicLoadBalancers"]; err != nil {
		return nil, err
	}
	return &elasticloadbalancing.DescribeLoadBalancersOutput{LoadBalancerDescriptions: c.f.classicLBs}, nil
}

func (c *fakeClassic) DeleteLoadBalancer(ctx context.Context, params *elasticloadbalancing.DeleteLoadBalancerInput, optFns ...func(*elasticloadbalancing.Options)) (*elasticloadbalancing.DeleteLoadBalancerOutput, error) {
	return &elasticloadbalancing.DeleteLoadBalancerOutput{}, c.f.record("DeleteClassicLoadBalancer", aws.ToString(params.LoadBalancerName))
}

// ELBv2

type fakeV2 struct {
	f *fakeAWS
}

func (c *fakeV2) DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error) {
	return &elasticloadbalancingv2.DescribeLoadBalancersOutput{LoadBalancers: c.f.v2LBs}, nil
}

func (c *fakeV2) DescribeLoadBalancerAttributes(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancerAttributesInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancerAttributesOutput, error) {
	return &elasticloadbalancingv2.DescribeLoadBalancerAttributesOutput{}, nil
}

func (c *fakeV2) ModifyLoadBalancerAttributes(ctx context.Context, params *elasticloadbalancingv2.ModifyLoadBalancerAttributesInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.ModifyLoadBalancerAttributesOutput, error) {
	return &elasticloadbalancingv2.ModifyLoadBalancerAttributesOutput{}, c.f.record("ModifyLoadBalancerAttributes", aws.ToString(params.LoadBalancerArn))
}

func (c *fakeV2) DeleteLoadBalancer(ctx context.Context, params *elasticloadbalancingv2.DeleteLoadBalancerInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DeleteLoadBalancerOutput, error) {
	return &elasticloadbalancingv2.DeleteLoadBalancerOutput{}, c.f.record("DeleteV2LoadBalancer", aws.ToString(params.LoadBalancerArn))
}
