package elb

import (
	"context"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// FindClassicInSubnet はサブネットを含む最初のClassic Load Balancerを返す
func FindClassicInSubnet(ctx context.Context, client ClassicAPI, subnetId string) (LoadBalancerInfo, bool, error) {
	var nextMarker *string
	for {
		resp, err := client.DescribeLoadBalancers(ctx, &elasticloadbalancing.DescribeLoadBalancersInput{
			Marker: nextMarker,
		})
		if err != nil {
			return LoadBalancerInfo{}, false, err
		}

		for _, lb := range resp.LoadBalancerDescriptions {
			if slices.Contains(lb.Subnets, subnetId) {
				return LoadBalancerInfo{Name: aws.ToString(lb.LoadBalancerName), Type: "Classic"}, true, nil
			}
		}

		if resp.NextMarker == nil {
			return LoadBalancerInfo{}, false, nil
		}
		nextMarker = resp.NextMarker
	}
}

// FindV2InSubnet はサブネットに配置された指定タイプの最初のロードバランサーを返す
// name が一致するものがあればそれを優先する
func FindV2InSubnet(ctx context.Context, client V2API, subnetId string, lbType types.LoadBalancerTypeEnum, name string) (LoadBalancerInfo, bool, error) {
	lbs, err := describeLoadBalancers(ctx, client, lbType)
	if err != nil {
		return LoadBalancerInfo{}, false, err
	}

	var first *types.LoadBalancer
	for i, lb := range lbs {
		if !inSubnet(lb, subnetId) {
			continue
		}
		if name != "" && aws.ToString(lb.LoadBalancerName) == name {
			return toInfo(lb), true, nil
		}
		if first == nil {
			first = &lbs[i]
		}
	}
	if first == nil {
		return LoadBalancerInfo{}, false, nil
	}
	return toInfo(*first), true, nil
}

// describeLoadBalancers はロードバランサー一覧を取得する
func describeLoadBalancers(ctx context.Context, client V2API, lbType types.LoadBalancerTypeEnum) ([]types.LoadBalancer, error) {
	var allLBs []types.LoadBalancer
	var nextMarker *string

	for {
		resp, err := client.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{
			Marker: nextMarker,
		})
		if err != nil {
			return nil, err
		}

		// タイプでフィルタ
		for _, lb := range resp.LoadBalancers {
			if lbType == "" || lb.Type == lbType {
				allLBs = append(allLBs, lb)
			}
		}

		if resp.NextMarker == nil {
			break
		}
		nextMarker = resp.NextMarker
	}

	return allLBs, nil
}

func inSubnet(lb types.LoadBalancer, subnetId string) bool {
	for _, az := range lb.AvailabilityZones {
		if aws.ToString(az.SubnetId) == subnetId {
			return true
		}
	}
	return false
}

func toInfo(lb types.LoadBalancer) LoadBalancerInfo {
	return LoadBalancerInfo{
		Name: aws.ToString(lb.LoadBalancerName),
		ARN:  aws.ToString(lb.LoadBalancerArn),
		Type: getLBTypeDisplay(lb.Type),
	}
}

// ParseENIDescription はELBが作ったENIの説明からALB/NLBのタイプと名前を取り出す
// 例: "ELB app/my-alb/50dc6c495c0c9188" → (application, "my-alb", true)
// Classic の説明（"ELB my-lb"）の場合は ok=false
func ParseENIDescription(description string) (types.LoadBalancerTypeEnum, string, bool) {
	rest, found := strings.CutPrefix(description, "ELB ")
	if !found {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 2 {
		return "", "", false
	}

	switch parts[0] {
	case "app":
		return types.LoadBalancerTypeEnumApplication, parts[1], true
	case "net":
		return types.LoadBalancerTypeEnumNetwork, parts[1], true
	default:
		return "", "", false
	}
}

// getLBTypeDisplay はロードバランサータイプの表示名を取得
func getLBTypeDisplay(lbType types.LoadBalancerTypeEnum) string {
	switch lbType {
	case types.LoadBalancerTypeEnumApplication:
		return "ALB"
	case types.LoadBalancerTypeEnumNetwork:
		return "NLB"
	case types.LoadBalancerTypeEnumGateway:
		return "GWLB"
	default:
		return string(lbType)
	}
}
