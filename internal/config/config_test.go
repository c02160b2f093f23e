package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prereq-sol/internal/consts"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "prereq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logger:
  format: json
  log_dir: logs
  level: debug
  compress: true
rpc:
  endpoint: http://127.0.0.1:8899
  cluster: custom
  confirm_timeout_sec: 5
  retry_count: 2
wallet:
  dev_wallet: keys/dev.json
github: danielAsaboro
transfer_lamports: 42
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", c.LogConf.Format)
	assert.Equal(t, "logs", c.LogConf.LogDir)
	assert.True(t, c.LogConf.ToLogOption().Compress)
	assert.Equal(t, "http://127.0.0.1:8899", c.RpcConf.Endpoint)
	assert.Equal(t, "custom", c.RpcConf.Cluster)
	assert.Equal(t, 5, c.RpcConf.ConfirmTimeoutSec)
	assert.Equal(t, 2, c.RpcConf.RetryCount)
	assert.Equal(t, "keys/dev.json", c.WalletConf.DevWallet)
	assert.Equal(t, "danielAsaboro", c.Github)
	assert.Equal(t, uint64(42), c.TransferLamports)

	// 未配置的字段使用默认值
	assert.Equal(t, 500, c.RpcConf.PollIntervalMs)
	assert.Equal(t, "Turbin3-wallet.json", c.WalletConf.Turbin3Wallet)
	assert.Equal(t, consts.DefaultAirdropLamports, c.AirdropLamports)
	assert.Equal(t, consts.DefaultRecipientStr, c.Recipient)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.devnet.solana.com", c.RpcConf.Endpoint)
	assert.Equal(t, consts.DefaultCluster, c.RpcConf.Cluster)
	assert.Equal(t, 10_000, c.RpcConf.CallTimeoutMs)
	assert.Equal(t, 60, c.RpcConf.ConfirmTimeoutSec)
	assert.Equal(t, "dev-wallet.json", c.WalletConf.DevWallet)
	assert.Equal(t, consts.DefaultTransferLamports, c.TransferLamports)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "rpc: [unclosed\n"))
	assert.Error(t, err)
}
