package aws

import (
	"context"
	"fmt"

	smsvc "ekscleanup/internal/service/secretsmanager"
)

// シークレットに格納されるキー名
const (
	AccessKeyIDField     = "aws_access_key_id"
	SecretAccessKeyField = "aws_secret_access_key"
	SessionTokenField    = "aws_session_token"
	RegionField          = "region"

	DefaultRegion = "us-east-1"
)

// ResolveCredentials は指定したシークレットからアクセスキーとリージョンを取り出す
// リージョンが含まれない場合は DefaultRegion を使う
func ResolveCredentials(ctx context.Context, client smsvc.GetSecretValueAPI, secretName string) (Credentials, error) {
	fields, err := smsvc.GetSecretValues(ctx, client, secretName)
	if err != nil {
		return Credentials{}, fmt.Errorf("認証情報シークレット '%s' の取得に失敗: %w", secretName, err)
	}

	var creds Credentials
	var ok bool

	creds.AccessKeyID, ok, err = smsvc.GetStringField(fields, AccessKeyIDField)
	if err != nil {
		return Credentials{}, err
	}
	if !ok {
		return Credentials{}, fmt.Errorf("シークレット '%s' に %s がありません", secretName, AccessKeyIDField)
	}

	creds.SecretAccessKey, ok, err = smsvc.GetStringField(fields, SecretAccessKeyField)
	if err != nil {
		return Credentials{}, err
	}
	if !ok {
		return Credentials{}, fmt.Errorf("シークレット '%s' に %s がありません", secretName, SecretAccessKeyField)
	}

	creds.SessionToken, _, err = smsvc.GetStringField(fields, SessionTokenField)
	if err != nil {
		return Credentials{}, err
	}

	creds.Region, ok, err = smsvc.GetStringField(fields, RegionField)
	if err != nil {
		return Credentials{}, err
	}
	if !ok {
		creds.Region = DefaultRegion
	}

	return creds, nil
}
