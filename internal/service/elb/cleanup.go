package elb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// DeleteClassic はClassic Load Balancerを削除する
func DeleteClassic(ctx context.Context, client ClassicAPI, name string) error {
	_, err := client.DeleteLoadBalancer(ctx, &elasticloadbalancing.DeleteLoadBalancerInput{
		LoadBalancerName: aws.String(name),
	})
	return err
}

// DeleteV2 はALB/NLBを削除する。削除保護が有効なら先に解除する
func DeleteV2(ctx context.Context, client V2API, arn string) error {
	protected, err := IsDeletionProtected(ctx, client, arn)
	if err != nil {
		return fmt.Errorf("削除保護状態の確認エラー: %w", err)
	}

	if protected {
		if err := disableDeletionProtection(ctx, client, arn); err != nil {
			return fmt.Errorf("削除保護の解除エラー: %w", err)
		}
	}

	_, err = client.DeleteLoadBalancer(ctx, &elasticloadbalancingv2.DeleteLoadBalancerInput{
		LoadBalancerArn: aws.String(arn),
	})
	return err
}

// IsDeletionProtected は削除保護が有効かチェックする
func IsDeletionProtected(ctx context.Context, client V2API, arn string) (bool, error) {
	resp, err := client.DescribeLoadBalancerAttributes(ctx, &elasticloadbalancingv2.DescribeLoadBalancerAttributesInput{
		LoadBalancerArn: aws.String(arn),
	})
	if err != nil {
		return false, err
	}

	for _, attr := range resp.Attributes {
		if aws.ToString(attr.Key) == deletionProtectionKey && attr.Value != nil {
			protected, _ := strconv.ParseBool(*attr.Value)
			return protected, nil
		}
	}

	return false, nil
}

// disableDeletionProtection は削除保護を無効化する
func disableDeletionProtection(ctx context.Context, client V2API, arn string) error {
	_, err := client.ModifyLoadBalancerAttributes(ctx, &elasticloadbalancingv2.ModifyLoadBalancerAttributesInput{
		LoadBalancerArn: aws.String(arn),
		Attributes: []types.LoadBalancerAttribute{
			{
				Key:   aws.String(deletionProtectionKey),
				Value: aws.String("false"),
			},
		},
	})
	return err
}
