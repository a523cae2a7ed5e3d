// Package migrations 内嵌了所有的 goose 数据库迁移脚本
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
