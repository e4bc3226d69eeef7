package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ekscleanup/internal/aws"
	"ekscleanup/internal/config"
	"ekscleanup/internal/service/common"
)

// AppName はコマンド名
const AppName = "ekscleanup"

var (
	cfgFile  string
	v        = config.New()
	settings config.Settings
	awsCtx   *aws.Context
	out      *common.Reporter
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "削除に失敗したEKS用スタックのネットワークリソースを強制削除するツール",
	Long: `CloudFormation/CDKで作ったEKSクラスターのスタック削除が失敗したときに、
残ったVPC・サブネットとそれを使っているリソースを依存順に削除します。

例:
  ` + AppName + ` vpc cleanup -V vpc-0123456789abcdef0 -P my-profile
  ` + AppName + ` subnet ls -S EksClusterStack
  ` + AppName + ` subnet cleanup -S EksClusterStack --secret eks-deployer`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// ヘルプ・バージョン表示は設定不要
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return loadSettings()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Ctrl-C / SIGTERM で実行中の待機を打ち切る
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "設定ファイル（YAML）")
	RootCmd.PersistentFlags().StringP(config.KeyProfile, "P", "", "AWSプロファイル（未指定なら AWS_PROFILE）")
	RootCmd.PersistentFlags().StringP(config.KeyRegion, "R", "", "AWSリージョン")
	RootCmd.PersistentFlags().String(config.KeySecret, "", "アクセスキーを保持するSecrets Managerのシークレット名")
	RootCmd.PersistentFlags().Bool(config.KeyDebug, false, "SDKのリクエスト・リトライログを標準エラーに出力")
	RootCmd.PersistentFlags().Bool(config.KeyNoProgress, false, "待機中のプログレスバーを表示しない")

	bindFlags(RootCmd.PersistentFlags(),
		config.KeyProfile, config.KeyRegion, config.KeySecret, config.KeyDebug, config.KeyNoProgress)
}

// loadSettings はフラグ・環境変数・設定ファイルから設定を読み込む
func loadSettings() error {
	if err := config.ReadFile(v, cfgFile); err != nil {
		return err
	}
	s, err := config.Load(v)
	if err != nil {
		return err
	}

	settings = s
	awsCtx = s.AwsContext()
	out = common.NewReporter(os.Stdout, common.WithProgress(!s.NoProgress))
	return nil
}
