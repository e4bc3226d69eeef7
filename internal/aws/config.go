package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go/logging"
)

// LoadAwsConfig は認証情報からAWS設定を読み込む
// SecretNameが指定されている場合は、まずプロファイルの認証情報でシークレットを読み、
// そこに含まれるアクセスキーで設定を組み立て直す
func LoadAwsConfig(ctx context.Context, awsCtx Context) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, baseOptions(awsCtx)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("AWS設定の読み込みに失敗: %w", err)
	}
	if awsCtx.SecretName == "" {
		return cfg, nil
	}

	creds, err := ResolveCredentials(ctx, secretsClient(cfg), awsCtx.SecretName)
	if err != nil {
		return aws.Config{}, err
	}

	opts := baseOptions(awsCtx)
	opts = append(opts, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
	))
	// 明示指定のリージョンがなければシークレット側のリージョンを使う
	if awsCtx.Region == "" {
		opts = append(opts, config.WithRegion(creds.Region))
	}

	cfg, err = config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("シークレットの認証情報でのAWS設定読み込みに失敗: %w", err)
	}
	return cfg, nil
}

// secretsClient はシークレット読み込み用のクライアントを作る
// リージョンが決まっていない場合は DefaultRegion のシークレットを読む
func secretsClient(cfg aws.Config) *secretsmanager.Client {
	return secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
		if o.Region == "" {
			o.Region = DefaultRegion
		}
	})
}

func baseOptions(awsCtx Context) []func(*config.LoadOptions) error {
	opts := make([]func(*config.LoadOptions) error, 0)

	if awsCtx.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(awsCtx.Profile))
	}
	if awsCtx.Region != "" {
		opts = append(opts, config.WithRegion(awsCtx.Region))
	}
	if awsCtx.Debug {
		opts = append(opts,
			config.WithClientLogMode(aws.LogRequest|aws.LogRetries),
			config.WithLogger(logging.NewStandardLogger(os.Stderr)),
		)
	}
	return opts
}

// GetConfig は遅延初期化でAWS設定を取得（初回のみ認証処理実行）
func (c *Context) GetConfig(ctx context.Context) (aws.Config, error) {
	if c.config == nil {
		cfg, err := LoadAwsConfig(ctx, *c)
		if err != nil {
			return aws.Config{}, err
		}
		c.config = &cfg
	}
	return *c.config, nil
}
