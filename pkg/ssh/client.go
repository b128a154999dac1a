package ssh

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Config SSH配置
type Config struct {
	Timeout     time.Duration `yaml:"timeout"`
	KeepAlive   time.Duration `yaml:"keep_alive"`
	MaxSessions int           `yaml:"max_sessions"`
}

// ConnectionInfo SSH连接信息
type ConnectionInfo struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CommandResult 命令执行结果
type CommandResult struct {
	Command  string        `json:"command"`
	Output   string        `json:"output"`
	Error    string        `json:"error"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// Client SSH客户端
type Client struct {
	config     *Config
	connection *ssh.Client
	mutex      sync.Mutex
	info       *ConnectionInfo
}

// NewClient 创建SSH客户端
func NewClient(config *Config) *Client {
	return &Client{config: config}
}

// Connect 连接SSH服务器
// 网络设备普遍只支持旧版算法，这里放开旧 kex/cipher/MAC 白名单
func (c *Client) Connect(ctx context.Context, info *ConnectionInfo) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.info = info

	sshConfig := &ssh.ClientConfig{
		User:            info.Username,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         c.config.Timeout,
		Config: ssh.Config{
			KeyExchanges: []string{
				"diffie-hellman-group14-sha256",
				"diffie-hellman-group14-sha1",
				"diffie-hellman-group1-sha1",
				"diffie-hellman-group-exchange-sha256",
				"ecdh-sha2-nistp256",
				"ecdh-sha2-nistp384",
				"ecdh-sha2-nistp521",
			},
			Ciphers: []string{
				"aes128-ctr",
				"aes192-ctr",
				"aes256-ctr",
				"aes128-gcm@openssh.com",
				"aes256-gcm@openssh.com",
				"aes128-cbc",
				"3des-cbc",
			},
			MACs: []string{
				"hmac-sha2-256-etm@openssh.com",
				"hmac-sha2-256",
				"hmac-sha1",
				"hmac-sha1-96",
			},
		},
		HostKeyAlgorithms: []string{
			"ssh-rsa",
			"rsa-sha2-256",
			"rsa-sha2-512",
			"ecdsa-sha2-nistp256",
			"ecdsa-sha2-nistp384",
			"ecdsa-sha2-nistp521",
		},
	}

	if info.Password != "" {
		// password 与 keyboard-interactive 同时尝试，兼容交换机登录
		sshConfig.Auth = []ssh.AuthMethod{
			ssh.Password(info.Password),
			ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range questions {
					answers[i] = info.Password
				}
				return answers, nil
			}),
		}
	}

	address := fmt.Sprintf("%s:%d", info.Host, info.Port)
	dialer := &net.Dialer{Timeout: c.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, address, sshConfig)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SSH connection: %w", err)
	}
	c.connection = ssh.NewClient(sshConn, chans, reqs)

	go c.keepAlive(ctx)
	return nil
}

// newSessionWithRetry 创建会话（带退避重试）
// 部分设备快速连续打开会话通道会返回
// "administratively prohibited (open failed)" 或 EOF，短退避后重试
func (c *Client) newSessionWithRetry() (*ssh.Session, error) {
	if c.connection == nil {
		return nil, fmt.Errorf("SSH connection not established")
	}

	backoffs := []time.Duration{0, 200 * time.Millisecond, 500 * time.Millisecond, 1 * time.Second}
	var lastErr error
	for _, d := range backoffs {
		if d > 0 {
			time.Sleep(d)
		}
		sess, err := c.connection.NewSession()
		if err == nil {
			return sess, nil
		}
		lastErr = err
		if strings.Contains(strings.ToLower(err.Error()), "eof") && c.info != nil {
			// 连接已断：按保存的参数重连一次再进入下一轮退避
			_ = c.Close()
			ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
			_ = c.Connect(ctx, c.info)
			cancel()
			time.Sleep(200 * time.Millisecond)
		}
	}
	return nil, lastErr
}

// ExecuteCommand 执行单个命令并返回完整回显
func (c *Client) ExecuteCommand(ctx context.Context, command string) (*CommandResult, error) {
	if c.connection == nil {
		return nil, fmt.Errorf("SSH connection not established")
	}

	startTime := time.Now()
	result := &CommandResult{Command: command}

	session, err := c.newSessionWithRetry()
	if err != nil {
		result.Error = fmt.Sprintf("failed to create session: %v", err)
		result.ExitCode = -1
		return result, err
	}
	defer session.Close()

	type execResult struct {
		output []byte
		err    error
	}
	done := make(chan execResult, 1)
	go func() {
		output, err := session.CombinedOutput(command)
		done <- execResult{output: output, err: err}
	}()

	select {
	case <-ctx.Done():
		result.Duration = time.Since(startTime)
		result.Error = ctx.Err().Error()
		result.ExitCode = -1
		return result, ctx.Err()
	case r := <-done:
		result.Duration = time.Since(startTime)
		result.Output = string(r.output)
		if r.err != nil {
			result.Error = r.err.Error()
			if exitError, ok := r.err.(*ssh.ExitError); ok {
				result.ExitCode = exitError.ExitStatus()
			} else {
				result.ExitCode = -1
			}
			return result, r.err
		}
		result.ExitCode = 0
		return result, nil
	}
}

// keepAlive 周期性发送保活请求，连接断开或上下文结束时退出
func (c *Client) keepAlive(ctx context.Context) {
	if c.config.KeepAlive <= 0 {
		return
	}
	ticker := time.NewTicker(c.config.KeepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mutex.Lock()
			conn := c.connection
			c.mutex.Unlock()
			if conn == nil {
				return
			}
			if _, _, err := conn.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				return
			}
		}
	}
}

// Close 关闭连接
func (c *Client) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.connection == nil {
		return nil
	}
	err := c.connection.Close()
	c.connection = nil
	return err
}
