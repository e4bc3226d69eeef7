package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ekscleanup/internal/service/common"
)

// DisassociateRouteTable はルートテーブルの関連付けを1件解除する
func DisassociateRouteTable(ctx context.Context, client DisassociateRouteTableAPI, out *common.Reporter, associationId string) common.Result {
	out.Printf(common.TagDelete, "Disassociating route table association: %s", associationId)
	_, err := client.DisassociateRouteTable(ctx, &ec2.DisassociateRouteTableInput{
		AssociationId: aws.String(associationId),
	})
	return out.Record("disassociate", common.ResourceRouteTableAssoc, associationId, err, common.TagWarn)
}

// NonMainAssociations はメインでない関連付けを返す
// subnetId を指定した場合はそのサブネットへの関連付けだけに絞る
func NonMainAssociations(rt types.RouteTable, subnetId string) []types.RouteTableAssociation {
	var assocs []types.RouteTableAssociation
	for _, assoc := range rt.Associations {
		if aws.ToBool(assoc.Main) || assoc.RouteTableAssociationId == nil {
			continue
		}
		if subnetId != "" && aws.ToString(assoc.SubnetId) != subnetId {
			continue
		}
		assocs = append(assocs, assoc)
	}
	return assocs
}

// HasMainAssociation はメインの関連付けを持つルートテーブルか判定する
func HasMainAssociation(rt types.RouteTable) bool {
	for _, assoc := range rt.Associations {
		if aws.ToBool(assoc.Main) {
			return true
		}
	}
	return false
}
