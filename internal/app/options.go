package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bankrun/v1/configs"
	"github.com/bankrun/v1/pkg/interfaces/config"
	"github.com/bankrun/v1/pkg/types"
)

// Environment 运行环境
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// appOptions 应用配置选项实现
type appOptions struct {
	userConfig *types.UserConfig
}

// 确保appOptions实现了AppOptions接口
var _ config.AppOptions = (*appOptions)(nil)

// GetUserConfig 获取用户配置
func (o *appOptions) GetUserConfig() *types.UserConfig {
	return o.userConfig
}

// LoadOptions 加载应用配置选项
//
// 加载顺序：
//  1. 按环境取嵌入的默认配置
//  2. 如果指定了配置文件路径，解析后逐字段覆盖嵌入默认值
//     （指针字段非nil才覆盖，避免零值陷阱）
func LoadOptions(environment Environment, configPath string) (config.AppOptions, error) {
	userConfig, err := decodeEmbedded(environment)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configPath, err)
		}
		fileConfig := &types.UserConfig{}
		if err := json.Unmarshal(raw, fileConfig); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
		mergeUserConfig(userConfig, fileConfig)
	}

	return &appOptions{userConfig: userConfig}, nil
}

// decodeEmbedded 解析指定环境的嵌入配置
func decodeEmbedded(environment Environment) (*types.UserConfig, error) {
	var raw []byte
	switch environment {
	case EnvTesting:
		raw = configs.GetTestingConfig()
	case EnvProduction:
		raw = configs.GetProductionConfig()
	case EnvDevelopment, "":
		raw = configs.GetDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown environment: %s", environment)
	}

	userConfig := &types.UserConfig{}
	if err := json.Unmarshal(raw, userConfig); err != nil {
		return nil, fmt.Errorf("parse embedded %s config: %w", environment, err)
	}
	return userConfig, nil
}

// mergeUserConfig 将override中已设置的字段合并进base
func mergeUserConfig(base, override *types.UserConfig) {
	if override.Log != nil {
		if base.Log == nil {
			base.Log = &types.UserLogConfig{}
		}
		if override.Log.Level != nil {
			base.Log.Level = override.Log.Level
		}
		if override.Log.FilePath != nil {
			base.Log.FilePath = override.Log.FilePath
		}
		if override.Log.ToConsole != nil {
			base.Log.ToConsole = override.Log.ToConsole
		}
	}
	if override.Runtime != nil {
		if base.Runtime == nil {
			base.Runtime = &types.UserRuntimeConfig{}
		}
		if override.Runtime.MaxLogLines != nil {
			base.Runtime.MaxLogLines = override.Runtime.MaxLogLines
		}
	}
}
