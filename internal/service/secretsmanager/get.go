package secretsmanager

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// GetSecretValueAPI はシークレット取得に必要なSecrets Manager APIのサブセット
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// GetSecretValues Secrets Managerからシークレット値を取得してMapで返す
func GetSecretValues(ctx context.Context, secretsClient GetSecretValueAPI, secretName string) (map[string]interface{}, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}

	result, err := secretsClient.GetSecretValue(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("シークレット取得に失敗: %w", err)
	}
	if result.SecretString == nil {
		return nil, fmt.Errorf("シークレット '%s' に文字列値がありません", secretName)
	}

	// シークレット値をJSONとしてパース
	var secretMap map[string]interface{}
	err = json.Unmarshal([]byte(*result.SecretString), &secretMap)
	if err != nil {
		return nil, fmt.Errorf("シークレットのJSON解析に失敗: %w", err)
	}

	return secretMap, nil
}

// GetStringField はシークレットのフィールドを文字列として取り出す
// 存在しない・空の場合は ok=false
func GetStringField(secretMap map[string]interface{}, key string) (string, bool, error) {
	raw, exists := secretMap[key]
	if !exists || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, fmt.Errorf("フィールド '%s' が文字列ではありません", key)
	}
	return s, s != "", nil
}
