package service

import "errors"

// 错误分类，API 层据此决定返回 401 还是业务失败。
// 核心不做任何重试，错误原样抛给调用方展示。
var (
	ErrAuth       = errors.New("认证失败")
	ErrEmailTaken = errors.New("邮箱已被注册")
	ErrNotFound   = errors.New("记录不存在")
)
