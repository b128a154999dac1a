package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Collector CollectorConfig `mapstructure:"collector"`
	SSH       SSHConfig       `mapstructure:"ssh"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CommandSpec 单条采集命令（命令名用于回显映射的键）
type CommandSpec struct {
	Name    string `mapstructure:"name"`
	CLI     string `mapstructure:"cli"`
	Timeout int    `mapstructure:"timeout"`
}

// CollectorConfig 采集器配置
type CollectorConfig struct {
	ID         string `mapstructure:"id"`
	Concurrent int    `mapstructure:"concurrent"`
	Retries    int    `mapstructure:"retries"`
	// FallbackHostnamePrefix 主机名兜底前缀，生成 device-a-b-c-d 形式
	FallbackHostnamePrefix string `mapstructure:"fallback_hostname_prefix"`
	// Commands 按设备平台维护的命令表；缺失平台回落到 generic_ssh
	Commands map[string][]CommandSpec `mapstructure:"commands"`
}

// SSHConfig SSH 连接配置
type SSHConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	KeepAlive   time.Duration `mapstructure:"keep_alive"`
	MaxSessions int           `mapstructure:"max_sessions"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// SQLiteConfig SQLite 配置
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// StorageConfig 原始回显归档配置
type StorageConfig struct {
	// Backend local | minio | none
	Backend string      `mapstructure:"backend"`
	Local   LocalConfig `mapstructure:"local"`
	Minio   MinioConfig `mapstructure:"minio"`
}

// LocalConfig 本地归档配置
type LocalConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

// MinioConfig MinIO 归档配置
type MinioConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Secure    bool   `mapstructure:"secure"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

var (
	globalConfig *Config
	configMutex  sync.RWMutex
)

// Load 加载配置文件并应用默认值
func Load(configPath string) (*Config, error) {
	viper.SetConfigType("yaml")
	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("../configs")
	}

	viper.SetEnvPrefix("NETINV")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// 配置文件缺失时允许纯默认值启动
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	configMutex.Lock()
	globalConfig = &config
	configMutex.Unlock()
	return &config, nil
}

// Watch 监听配置文件变更并热加载（fsnotify）
func Watch(onChange func(*Config)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		var config Config
		if err := viper.Unmarshal(&config); err != nil {
			return
		}
		configMutex.Lock()
		globalConfig = &config
		configMutex.Unlock()
		if onChange != nil {
			onChange(&config)
		}
	})
	viper.WatchConfig()
}

// Get 获取全局配置（未加载时返回 nil）
func Get() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// CommandsFor 返回平台命令表，未配置的平台回落到 generic_ssh
func (c *Config) CommandsFor(deviceType string) []CommandSpec {
	key := strings.ToLower(strings.TrimSpace(deviceType))
	if cmds, ok := c.Collector.Commands[key]; ok && len(cmds) > 0 {
		return cmds
	}
	return c.Collector.Commands["generic_ssh"]
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 300*time.Second)

	viper.SetDefault("collector.id", "netinventory-01")
	viper.SetDefault("collector.concurrent", 8)
	viper.SetDefault("collector.retries", 2)
	viper.SetDefault("collector.fallback_hostname_prefix", "device-")
	viper.SetDefault("collector.commands", defaultCommandTables())

	viper.SetDefault("ssh.timeout", 30*time.Second)
	viper.SetDefault("ssh.keep_alive", 30*time.Second)
	viper.SetDefault("ssh.max_sessions", 4)

	viper.SetDefault("database.sqlite.path", "./data/netinventory.db")

	viper.SetDefault("storage.backend", "local")
	viper.SetDefault("storage.local.base_dir", "./data/raw")
	viper.SetDefault("storage.minio.bucket", "netinventory-raw")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.output", "both")
	viper.SetDefault("log.file_path", "./logs/netinventory.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 5)
	viper.SetDefault("log.max_age", 30)
}

// defaultCommandTables 内置各平台采集命令表
func defaultCommandTables() map[string][]map[string]interface{} {
	cmd := func(name, cli string, timeout int) map[string]interface{} {
		return map[string]interface{}{"name": name, "cli": cli, "timeout": timeout}
	}
	return map[string][]map[string]interface{}{
		"cisco_ios": {
			cmd("show_version", "show version", 30),
			cmd("show_inventory", "show inventory", 45),
			cmd("show_ip_interface_brief", "show ip interface brief", 30),
			cmd("show_mac_address_table", "show mac address-table", 45),
			cmd("show_switch", "show switch", 30),
		},
		"cisco_nxos": {
			cmd("show_version", "show version", 30),
			cmd("show_interface_brief", "show interface brief", 30),
			cmd("show_mac_address_table", "show mac address-table", 45),
		},
		"juniper_junos": {
			cmd("show_version", "show version", 30),
			cmd("show_interfaces_terse", "show interfaces terse", 30),
		},
		"hirschmann_hios": {
			cmd("show_version", "show version", 30),
			cmd("show_system_information", "show system information", 30),
			cmd("show_interfaces_brief", "show interfaces brief", 30),
			cmd("show_mac_address_table", "show mac-address-table", 45),
		},
		"generic_ssh": {
			cmd("show_version", "show version", 30),
			cmd("show_interfaces", "show interfaces", 45),
		},
	}
}
