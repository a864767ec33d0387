// Package migrations 数据库版本化迁移脚本，由golang-migrate执行
package migrations

import "embed"

// FS 全部*.sql迁移文件
//
//go:embed *.sql
var FS embed.FS
