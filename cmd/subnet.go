package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ekscleanup/internal/aws"
	"ekscleanup/internal/config"
	"ekscleanup/internal/service/subnet"
)

// SubnetCmd represents the subnet command
var SubnetCmd = &cobra.Command{
	Use:          "subnet",
	Short:        "サブネットリソース操作コマンド",
	Long:         `スタック削除で DELETE_FAILED になったサブネットを操作するためのコマンド群です。`,
	SilenceUsage: true,
}

var subnetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "DELETE_FAILED のサブネット一覧を表示するコマンド",
	Long: `CloudFormationスタック内で DELETE_FAILED になっているサブネットを表示します。
何も削除しません。

例:
  ` + AppName + ` subnet ls -S EksClusterStack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleaner, clients, err := newSubnetCleaner(cmd)
		if err != nil {
			return err
		}
		printAwsContextWithInfo(clients, "Stack", settings.StackName)
		return cleaner.List(cmd.Context())
	},
	SilenceUsage: true,
}

var subnetCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "DELETE_FAILED のサブネットを依存リソースごと削除するコマンド",
	Long: `CloudFormationスタック内で DELETE_FAILED になっているサブネットごとに、以下を順に行います。
  1. NAT Gatewayを削除し、deleted になるまで待つ
  2. ENIを削除（ELBのENIはロードバランサーを削除、インスタンスのENIはインスタンスを終了）
  3. メインでないルートテーブルの関連付けを解除
  4. サブネットを削除

待機が --wait-timeout を超えたサブネットは処理を打ち切り、終了コードは0以外になります。

例:
  ` + AppName + ` subnet cleanup -S EksClusterStack -P my-profile
  ` + AppName + ` subnet cleanup -S EksClusterStack --secret eks-deployer --wait-timeout 20m`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleaner, clients, err := newSubnetCleaner(cmd)
		if err != nil {
			return err
		}
		printAwsContextWithInfo(clients, "Stack", settings.StackName)

		report, err := cleaner.Run(cmd.Context())
		out.PrintSummary(report)
		return err
	},
	SilenceUsage: true,
}

// newSubnetCleaner はスタック名を確認してサブネット削除用のCleanerを作る
func newSubnetCleaner(cmd *cobra.Command) (*subnet.Cleaner, *aws.Clients, error) {
	if settings.StackName == "" {
		return nil, nil, fmt.Errorf("❌ エラー: スタック名 (-S) を指定してください")
	}

	clients, err := aws.NewAwsClients(cmd.Context(), awsCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("AWS設定の読み込みエラー: %w", err)
	}

	cleaner, err := subnet.NewCleaner(subnet.ClientSet{
		EC2:   clients.Ec2(),
		Cfn:   clients.Cfn(),
		ELB:   clients.Elb(),
		ELBV2: clients.ElbV2(),
	}, out, settings.SubnetOptions())
	if err != nil {
		return nil, nil, err
	}
	return cleaner, clients, nil
}

func init() {
	RootCmd.AddCommand(SubnetCmd)
	SubnetCmd.AddCommand(subnetLsCmd)
	SubnetCmd.AddCommand(subnetCleanupCmd)

	SubnetCmd.PersistentFlags().StringP(config.KeyStack, "S", "", "CloudFormationスタック名（未指定なら AWS_STACK_NAME）")
	bindFlags(SubnetCmd.PersistentFlags(), config.KeyStack)

	subnetCleanupCmd.Flags().Duration(config.KeyWaitTimeout, subnet.DefaultWaitTimeout, "NAT Gateway削除・インスタンス終了の待機上限")
	subnetCleanupCmd.Flags().Duration(config.KeyPollInterval, subnet.DefaultPollInterval, "NAT Gatewayの状態確認の初回間隔")
	subnetCleanupCmd.Flags().String(config.KeyLBPattern, subnet.DefaultLoadBalancerENIPattern, "ロードバランサーのENIとみなす説明のパターン")

	bindFlags(subnetCleanupCmd.Flags(), config.KeyWaitTimeout, config.KeyPollInterval, config.KeyLBPattern)
}
