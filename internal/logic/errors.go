package logic

import (
	"errors"
)

// 引擎错误类型，由handler层映射为HTTP状态码
var (
	ErrInvalidInput    = errors.New("参数无效")
	ErrDuplicateTicker = errors.New("代币符号已存在")
	ErrNotFound        = errors.New("代币不存在")
	ErrAlreadyUpvoted  = errors.New("已经点过赞")
	ErrAlreadyFunded   = errors.New("募资目标已达成")
	ErrNoActivePledge  = errors.New("没有可退的认购记录")
)
