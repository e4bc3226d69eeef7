package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ekscleanup/internal/service/common"
)

// DeleteSubnet はサブネットを削除する
// 存在しない場合はスキップ扱い、想定外のエラーは failTag で出力して処理を続ける
func DeleteSubnet(ctx context.Context, client DeleteSubnetAPI, out *common.Reporter, subnetId string, failTag common.Tag) common.Result {
	out.Printf(common.TagDelete, "Deleting subnet: %s", subnetId)
	_, err := client.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{
		SubnetId: aws.String(subnetId),
	})
	return out.Record("delete", common.ResourceSubnet, subnetId, err, failTag)
}
