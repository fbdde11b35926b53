package main

import (
	"fmt"
	"os"

	"github.com/Alir3z4/waldo/internal/logger"
	"github.com/Alir3z4/waldo/pkg/config"
	"github.com/Alir3z4/waldo/pkg/vision/cv"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(execute())
}

// execute 运行命令并返回退出码
func execute() int {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("加载配置失败: %v", err)
	}
	setupLogger(cfg)
	defer logger.Default().Close()

	logger.Debug("waldo v%s (%s, %s), 配置文件: %s",
		Version, GitCommit, BuildTime, config.GetDefaultManager().GetConfigFile())

	cmd := newRootCmd(cfg, func() cv.Viewer { return cv.NewWindowViewer() })
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// setupLogger 按配置初始化日志
func setupLogger(cfg *config.Config) {
	log := logger.Default()
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if cfg.LogFile != "" {
		if err := log.SetFile(true, cfg.LogFile); err != nil {
			logger.Warn("%v", err)
		}
	}
}
