package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	value *string
	err   error
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{Name: params.SecretId, SecretString: f.value}, nil
}

func TestResolveCredentials(t *testing.T) {
	client := &fakeSecrets{value: aws.String(`{"aws_access_key_id":"AKIA","aws_secret_access_key":"secret","region":"ap-northeast-1"}`)}

	creds, err := ResolveCredentials(context.Background(), client, "eks-deployer")

	require.NoError(t, err)
	assert.Equal(t, Credentials{
		AccessKeyID:     "AKIA",
		SecretAccessKey: "secret",
		Region:          "ap-northeast-1",
	}, creds)
}

func TestResolveCredentials_DefaultRegion(t *testing.T) {
	client := &fakeSecrets{value: aws.String(`{"aws_access_key_id":"AKIA","aws_secret_access_key":"secret","aws_session_token":"token"}`)}

	creds, err := ResolveCredentials(context.Background(), client, "eks-deployer")

	require.NoError(t, err)
	assert.Equal(t, DefaultRegion, creds.Region)
	assert.Equal(t, "token", creds.SessionToken)
}

func TestResolveCredentials_Errors(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeSecrets
	}{
		{"取得失敗", &fakeSecrets{err: errors.New("AccessDeniedException")}},
		{"文字列値なし", &fakeSecrets{}},
		{"JSONでない", &fakeSecrets{value: aws.String("not-json")}},
		{"アクセスキーなし", &fakeSecrets{value: aws.String(`{"aws_secret_access_key":"secret"}`)}},
		{"シークレットキーなし", &fakeSecrets{value: aws.String(`{"aws_access_key_id":"AKIA"}`)}},
		{"文字列でない", &fakeSecrets{value: aws.String(`{"aws_access_key_id":1,"aws_secret_access_key":"secret"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveCredentials(context.Background(), tt.client, "eks-deployer")
			assert.Error(t, err)
		})
	}
}
