package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"ekscleanup/internal/aws"
)

// bindFlags はフラグをviperの同名キーに結びつける
func bindFlags(flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("フラグ %s のバインドに失敗: %v", key, err))
		}
	}
}

// printAwsContextWithInfo は実行対象のAWSコンテキストと追加情報を表示する
func printAwsContextWithInfo(clients *aws.Clients, label, value string) {
	profile := awsCtx.Profile
	if profile == "" {
		profile = "(default)"
	}
	fmt.Printf("Profile: %s\n", profile)
	if awsCtx.SecretName != "" {
		fmt.Printf("Secret: %s\n", awsCtx.SecretName)
	}
	fmt.Printf("Region: %s\n", clients.Region())
	fmt.Printf("%s: %s\n", label, value)
}
