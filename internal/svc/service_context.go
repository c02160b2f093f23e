package svc

import (
	"time"

	"prereq-sol/internal/config"
	"prereq-sol/internal/transport"
	"prereq-sol/pkg/logger"
)

// ServiceContext 包含命令执行所需的共享资源
type ServiceContext struct {
	Config     config.Config
	Transport  transport.Transport
	ConfirmOpt transport.ConfirmOption
}

// NewServiceContext 创建一个新的服务上下文
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	rpcConf := c.RpcConf
	t, err := transport.NewRpcTransport(transport.RpcOption{
		Endpoint:    rpcConf.Endpoint,
		CallTimeout: time.Duration(rpcConf.CallTimeoutMs) * time.Millisecond,
		RetryCount:  rpcConf.RetryCount,
	})
	if err != nil {
		logger.Errorf("RPC 客户端初始化失败: %v", err)
		return nil, err
	}

	ctx := &ServiceContext{
		Config:    c,
		Transport: t,
		ConfirmOpt: transport.ConfirmOption{
			Timeout:      time.Duration(rpcConf.ConfirmTimeoutSec) * time.Second,
			PollInterval: time.Duration(rpcConf.PollIntervalMs) * time.Millisecond,
		},
	}

	logger.Infof("服务上下文初始化完成, endpoint=%s", rpcConf.Endpoint)
	return ctx, nil
}
