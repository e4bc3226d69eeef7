package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ekscleanup/internal/aws"
	"ekscleanup/internal/config"
	"ekscleanup/internal/service/vpc"
)

// VpcCmd represents the vpc command
var VpcCmd = &cobra.Command{
	Use:          "vpc",
	Short:        "VPCリソース操作コマンド",
	Long:         `VPCと、その削除を妨げている依存リソースを操作するためのコマンド群です。`,
	SilenceUsage: true,
}

var vpcCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "VPCの依存リソースを削除してからVPCを削除するコマンド",
	Long: `指定したVPCについて、以下の順に依存リソースを削除し、最後にVPC本体を削除します。
  1. Elastic IP（関連付けのないもの）
  2. VPCエンドポイント
  3. インターネットゲートウェイ（デタッチ後に削除）
  4. ルートテーブル（メインの関連付けを持つものは残す）
  5. サブネット
  6. ネットワークACL（デフォルトは残す）
  7. セキュリティグループ（default は残す）

個々のリソースの削除に失敗しても処理は続行し、最後に結果をまとめて表示します。

例:
  ` + AppName + ` vpc cleanup -V vpc-0123456789abcdef0 -P my-profile
  ` + AppName + ` vpc cleanup -V vpc-0123456789abcdef0 --secret eks-deployer --max-workers 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := settings.VpcOptions()
		if opts.VpcId == "" {
			return fmt.Errorf("❌ エラー: VPC ID (-V) を指定してください")
		}

		clients, err := aws.NewAwsClients(cmd.Context(), awsCtx)
		if err != nil {
			return fmt.Errorf("AWS設定の読み込みエラー: %w", err)
		}
		printAwsContextWithInfo(clients, "VPC", opts.VpcId)

		report, err := vpc.NewCleaner(clients.Ec2(), out, opts).Run(cmd.Context())
		out.PrintSummary(report)
		return err
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(VpcCmd)
	VpcCmd.AddCommand(vpcCleanupCmd)

	vpcCleanupCmd.Flags().StringP(config.KeyVpcId, "V", "", "削除対象のVPC ID")
	vpcCleanupCmd.Flags().Int(config.KeyMaxWorkers, config.DefaultMaxWorkers, "Elastic IP解放の並列数")
	vpcCleanupCmd.Flags().Float64(config.KeyRPS, config.DefaultRPS, "Elastic IP解放の1秒あたりの呼び出し上限（0で無制限）")

	bindFlags(vpcCleanupCmd.Flags(), config.KeyVpcId, config.KeyMaxWorkers, config.KeyRPS)
}
