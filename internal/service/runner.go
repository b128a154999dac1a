package service

import (
	"context"
	"fmt"
	"time"

	"github.com/netinventorypro/netinventorypro/addone/parse"
	"github.com/netinventorypro/netinventorypro/internal/config"
	"github.com/netinventorypro/netinventorypro/internal/model"
	"github.com/netinventorypro/netinventorypro/internal/util"
	"github.com/netinventorypro/netinventorypro/pkg/logger"
	"github.com/netinventorypro/netinventorypro/pkg/ssh"
)

// CommandRunner 命令执行边界
// 返回值约定：命令名->回显文本 的映射、非致命的单命令错误列表、
// 整机失败（连接未建立等）时的 error；单命令失败不作为整机失败，
// 其回显位置放入 "ERROR: ..." 占位文本
type CommandRunner interface {
	RunDeviceCommands(ctx context.Context, device *model.DeviceInfo) (parse.RawOutput, []string, error)
}

// SSHCommandRunner 基于 SSH 的生产实现
type SSHCommandRunner struct {
	cfg *config.Config
}

// NewSSHCommandRunner 创建 SSH 命令执行器
func NewSSHCommandRunner(cfg *config.Config) *SSHCommandRunner {
	return &SSHCommandRunner{cfg: cfg}
}

// RunDeviceCommands 对单台设备执行其平台命令表的全部命令
func (r *SSHCommandRunner) RunDeviceCommands(ctx context.Context, device *model.DeviceInfo) (parse.RawOutput, []string, error) {
	commands := r.cfg.CommandsFor(device.DeviceType)
	if len(commands) == 0 {
		return nil, nil, fmt.Errorf("no commands defined for device type: %s", device.DeviceType)
	}

	client, err := r.connectWithRetry(ctx, device)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect %s: %w", device.IPAddress, err)
	}
	defer client.Close()
	device.ConnectionStatus = model.StatusConnected

	raw := make(parse.RawOutput, len(commands))
	errs := make([]string, 0)
	for _, cmd := range commands {
		timeout := time.Duration(cmd.Timeout) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		cmdCtx, cancel := context.WithTimeout(ctx, timeout)
		result, execErr := client.ExecuteCommand(cmdCtx, cmd.CLI)
		cancel()

		if execErr != nil {
			msg := fmt.Sprintf("command %q failed: %v", cmd.CLI, execErr)
			logger.Warnf("%s: %s", device.IPAddress, msg)
			errs = append(errs, msg)
			raw[cmd.Name] = "ERROR: " + execErr.Error()
			continue
		}
		raw[cmd.Name] = util.EnsureUTF8(result.Output)
		logger.Debugf("%s command %q output: %s", device.IPAddress, cmd.CLI, logger.SnipOutput(raw[cmd.Name], 3))
	}
	return raw, errs, nil
}

// connectWithRetry 按配置的重试次数做指数退避连接
func (r *SSHCommandRunner) connectWithRetry(ctx context.Context, device *model.DeviceInfo) (*ssh.Client, error) {
	port := device.Port
	if port <= 0 || port > 65535 {
		port = 22
	}
	info := &ssh.ConnectionInfo{
		Host:     device.IPAddress,
		Port:     port,
		Username: device.Username,
		Password: device.Password,
	}

	retries := r.cfg.Collector.Retries
	if retries < 0 {
		retries = 0
	}
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			logger.Infof("retrying %s in %s (attempt %d/%d)", device.IPAddress, backoff, attempt, retries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
		client := ssh.NewClient(&ssh.Config{
			Timeout:     r.cfg.SSH.Timeout,
			KeepAlive:   r.cfg.SSH.KeepAlive,
			MaxSessions: r.cfg.SSH.MaxSessions,
		})
		if err := client.Connect(ctx, info); err != nil {
			lastErr = err
			continue
		}
		return client, nil
	}
	return nil, lastErr
}
