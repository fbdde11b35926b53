package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 WALDO_LOG_LEVEL
const EnvPrefix = "WALDO"

// 配置校验错误
var (
	ErrInvalidDisplaySize = errors.New("invalid display size: width and height must be positive")
	ErrInvalidAlpha       = errors.New("invalid spotlight alpha: must be within [0, 1]")
)

// Config 运行配置
type Config struct {
	// LogLevel 日志级别 (DEBUG/INFO/WARN/ERROR)
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	// LogFile 日志文件路径，为空时不写文件
	LogFile string `json:"log_file" mapstructure:"log_file"`
	// DisplayWidth 展示窗口宽度
	DisplayWidth int `json:"display_width" mapstructure:"display_width"`
	// DisplayHeight 展示窗口高度
	DisplayHeight int `json:"display_height" mapstructure:"display_height"`
	// SpotlightAlpha 原图在暗化图层中的权重
	SpotlightAlpha float64 `json:"spotlight_alpha" mapstructure:"spotlight_alpha"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "WARN",
		LogFile:        "",
		DisplayWidth:   800,
		DisplayHeight:  600,
		SpotlightAlpha: 0.25,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.DisplayWidth <= 0 || c.DisplayHeight <= 0 {
		return ErrInvalidDisplaySize
	}
	if c.SpotlightAlpha < 0 || c.SpotlightAlpha > 1 {
		return ErrInvalidAlpha
	}
	return nil
}

// Manager 配置管理器
type Manager struct {
	configDir  string
	configFile string
	mu         sync.RWMutex
}

// NewManager 创建配置管理器
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return NewManagerWithDir(filepath.Join(homeDir, ".waldo"))
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// newViper 创建带默认值和环境变量绑定的 viper 实例
func (m *Manager) newViper() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("display_width", def.DisplayWidth)
	v.SetDefault("display_height", def.DisplayHeight)
	v.SetDefault("spotlight_alpha", def.SpotlightAlpha)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load 加载配置
// 优先级: 环境变量 > 配置文件 > 默认值
func (m *Manager) Load() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v := m.newViper()

	if _, err := os.Stat(m.configFile); err == nil {
		v.SetConfigFile(m.configFile)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return DefaultConfig(), fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return &cfg, nil
}

// Save 保存配置
func (m *Manager) Save(config *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(m.configFile, data, 0600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

// Clear 清除配置
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(m.configFile)
}

// GetConfigDir 获取配置目录
func (m *Manager) GetConfigDir() string {
	return m.configDir
}

// GetConfigFile 获取配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Exists 检查配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}

// 全局配置管理器
var defaultManager = NewManager()

// GetDefaultManager 获取默认配置管理器
func GetDefaultManager() *Manager {
	return defaultManager
}

// Load 使用默认管理器加载配置
func Load() (*Config, error) {
	return defaultManager.Load()
}
