package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ekscleanup/internal/aws"
	"ekscleanup/internal/service/subnet"
	"ekscleanup/internal/service/vpc"
)

// EnvPrefix は環境変数のプレフィックス（例: EKSCLEANUP_VPC_ID）
const EnvPrefix = "EKSCLEANUP"

// 設定キー（フラグ名・YAMLのキーと共通）
const (
	KeyProfile        = "profile"
	KeyRegion         = "region"
	KeySecret         = "secret"
	KeyDebug          = "debug"
	KeyNoProgress     = "no-progress"
	KeyVpcId          = "vpc-id"
	KeyStack          = "stack"
	KeyMaxWorkers     = "max-workers"
	KeyRPS            = "rps"
	KeyWaitTimeout    = "wait-timeout"
	KeyPollInterval   = "poll-interval"
	KeyLBPattern      = "lb-pattern"
	KeySettleLB       = "settle.load-balancer"
	KeySettleInstance = "settle.instance"
	KeySettleDetach   = "settle.detach"
)

// デフォルト値
const (
	DefaultMaxWorkers = 4
	DefaultRPS        = 5.0
)

// Settings はフラグ・環境変数・設定ファイルをまとめた実行設定
type Settings struct {
	Profile    string
	Region     string
	Secret     string
	Debug      bool
	NoProgress bool

	VpcId             string
	MaxWorkers        int
	RequestsPerSecond float64

	StackName              string
	WaitTimeout            time.Duration
	PollInterval           time.Duration
	LoadBalancerENIPattern string
	LoadBalancerSettle     time.Duration
	InstanceSettle         time.Duration
	DetachSettle           time.Duration
}

// New はデフォルト値と環境変数の対応を設定したviperを返す
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyMaxWorkers, DefaultMaxWorkers)
	v.SetDefault(KeyRPS, DefaultRPS)
	v.SetDefault(KeyWaitTimeout, subnet.DefaultWaitTimeout)
	v.SetDefault(KeyPollInterval, subnet.DefaultPollInterval)
	v.SetDefault(KeyLBPattern, subnet.DefaultLoadBalancerENIPattern)
	v.SetDefault(KeySettleLB, subnet.DefaultLoadBalancerSettle)
	v.SetDefault(KeySettleInstance, subnet.DefaultInstanceSettle)
	v.SetDefault(KeySettleDetach, subnet.DefaultDetachSettle)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// 従来の環境変数もフォールバックとして読む
	_ = v.BindEnv(KeyProfile, EnvPrefix+"_PROFILE", "AWS_PROFILE")
	_ = v.BindEnv(KeyStack, EnvPrefix+"_STACK", "AWS_STACK_NAME")

	return v
}

// ReadFile は設定ファイルを読み込む（path が空なら何もしない）
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("設定ファイル '%s' の読み込みに失敗: %w", path, err)
	}
	return nil
}

// Load はviperの値をSettingsに変換して検証する
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Profile:    v.GetString(KeyProfile),
		Region:     v.GetString(KeyRegion),
		Secret:     v.GetString(KeySecret),
		Debug:      v.GetBool(KeyDebug),
		NoProgress: v.GetBool(KeyNoProgress),

		VpcId:             v.GetString(KeyVpcId),
		MaxWorkers:        v.GetInt(KeyMaxWorkers),
		RequestsPerSecond: v.GetFloat64(KeyRPS),

		StackName:              v.GetString(KeyStack),
		WaitTimeout:            v.GetDuration(KeyWaitTimeout),
		PollInterval:           v.GetDuration(KeyPollInterval),
		LoadBalancerENIPattern: v.GetString(KeyLBPattern),
		LoadBalancerSettle:     v.GetDuration(KeySettleLB),
		InstanceSettle:         v.GetDuration(KeySettleInstance),
		DetachSettle:           v.GetDuration(KeySettleDetach),
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.MaxWorkers < 1 {
		return fmt.Errorf("%s は1以上を指定してください: %d", KeyMaxWorkers, s.MaxWorkers)
	}
	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("%s は0以上を指定してください: %v", KeyRPS, s.RequestsPerSecond)
	}
	if s.WaitTimeout <= 0 {
		return fmt.Errorf("%s は0より大きくしてください: %s", KeyWaitTimeout, s.WaitTimeout)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("%s は0より大きくしてください: %s", KeyPollInterval, s.PollInterval)
	}
	for key, d := range map[string]time.Duration{
		KeySettleLB:       s.LoadBalancerSettle,
		KeySettleInstance: s.InstanceSettle,
		KeySettleDetach:   s.DetachSettle,
	} {
		if d < 0 {
			return fmt.Errorf("%s は0以上を指定してください: %s", key, d)
		}
	}
	return nil
}

// AwsContext はAWS設定の読み込みに使うコンテキストを返す
func (s Settings) AwsContext() *aws.Context {
	return &aws.Context{
		Profile:    s.Profile,
		Region:     s.Region,
		SecretName: s.Secret,
		Debug:      s.Debug,
	}
}

// VpcOptions はVPC削除のオプションを返す
func (s Settings) VpcOptions() vpc.Options {
	return vpc.Options{
		VpcId:             s.VpcId,
		MaxWorkers:        s.MaxWorkers,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// SubnetOptions はサブネット削除のオプションを返す
func (s Settings) SubnetOptions() subnet.Options {
	return subnet.Options{
		StackName:              s.StackName,
		LoadBalancerENIPattern: s.LoadBalancerENIPattern,
		WaitTimeout:            s.WaitTimeout,
		PollInterval:           s.PollInterval,
		LoadBalancerSettle:     s.LoadBalancerSettle,
		InstanceSettle:         s.InstanceSettle,
		DetachSettle:           s.DetachSettle,
	}
}
