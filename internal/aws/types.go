package aws

import "github.com/aws/aws-sdk-go-v2/aws"

// Context AwsContext は認証情報を保持
type Context struct {
	Profile    string
	Region     string
	SecretName string // アクセスキーを保持するSecrets Managerのエントリ名（空ならデフォルトの認証チェーン）
	Debug      bool   // SDKのリクエスト・リトライログを出力するか
	config     *aws.Config
}

// Credentials はシークレットから取り出したアクセスキー情報
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
}
