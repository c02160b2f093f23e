package config

import (
	"fmt"
	"os"

	"github.com/blocto/solana-go-sdk/rpc"
	"gopkg.in/yaml.v3"

	"prereq-sol/internal/consts"
	"prereq-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径），为空只输出到 stderr
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig 表示 Solana RPC 节点与确认轮询配置
type RpcConfig struct {
	Endpoint          string `yaml:"endpoint"`            // RPC 地址，默认 devnet
	Cluster           string `yaml:"cluster"`             // 浏览器链接中的 cluster 参数
	CallTimeoutMs     int    `yaml:"call_timeout_ms"`     // 单次 RPC 调用超时（毫秒）
	ConfirmTimeoutSec int    `yaml:"confirm_timeout_sec"` // 等待交易确认的最长时间（秒）
	PollIntervalMs    int    `yaml:"poll_interval_ms"`    // 查询签名状态的间隔（毫秒）
	RetryCount        int    `yaml:"retry_count"`         // 查询/发送失败时的重试次数
}

// WalletConfig 表示本地钱包文件路径
type WalletConfig struct {
	DevWallet     string `yaml:"dev_wallet"`     // keygen 生成、airdrop / transfer 使用的钱包
	Turbin3Wallet string `yaml:"turbin3_wallet"` // enroll / update 使用的钱包
}

// Config 是主配置结构体
type Config struct {
	LogConf    LogConfig    `yaml:"logger"`
	RpcConf    RpcConfig    `yaml:"rpc"`
	WalletConf WalletConfig `yaml:"wallet"`

	AirdropLamports  uint64 `yaml:"airdrop_lamports"`  // 每次领取的 lamports
	TransferLamports uint64 `yaml:"transfer_lamports"` // transfer 命令转账的 lamports
	Recipient        string `yaml:"recipient"`         // 转账目标地址（base58）
	Github           string `yaml:"github"`            // 报名使用的 GitHub 用户名
}

// Load 读取 YAML 配置并补齐默认值
func Load(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.fillDefaults()
	return c, nil
}

// MustLoad 加载失败直接退出
func MustLoad(path string) Config {
	c, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return c
}

func (c *Config) fillDefaults() {
	if c.RpcConf.Endpoint == "" {
		c.RpcConf.Endpoint = rpc.DevnetRPCEndpoint
	}
	if c.RpcConf.Cluster == "" {
		c.RpcConf.Cluster = consts.DefaultCluster
	}
	if c.RpcConf.CallTimeoutMs <= 0 {
		c.RpcConf.CallTimeoutMs = 10_000
	}
	if c.RpcConf.ConfirmTimeoutSec <= 0 {
		c.RpcConf.ConfirmTimeoutSec = 60
	}
	if c.RpcConf.PollIntervalMs <= 0 {
		c.RpcConf.PollIntervalMs = 500
	}
	if c.RpcConf.RetryCount < 0 {
		c.RpcConf.RetryCount = 0
	}
	if c.WalletConf.DevWallet == "" {
		c.WalletConf.DevWallet = "dev-wallet.json"
	}
	if c.WalletConf.Turbin3Wallet == "" {
		c.WalletConf.Turbin3Wallet = "Turbin3-wallet.json"
	}
	if c.AirdropLamports == 0 {
		c.AirdropLamports = consts.DefaultAirdropLamports
	}
	if c.TransferLamports == 0 {
		c.TransferLamports = consts.DefaultTransferLamports
	}
	if c.Recipient == "" {
		c.Recipient = consts.DefaultRecipientStr
	}
}
