// Package config provides application configuration interfaces.
package config

import "github.com/bankrun/v1/pkg/types"

// AppOptions 应用配置选项接口
// 提供获取用户配置的统一接口
type AppOptions interface {
	// GetUserConfig 获取用户配置
	GetUserConfig() *types.UserConfig
}
