package mysql

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/migrations"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// RunMigrations 执行嵌入的SQL迁移，已是最新版本时不报错
func RunMigrations(cfg *config.Config) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("加载迁移文件失败: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "mysql://"+cfg.Database.MigrateDSN())
	if err != nil {
		return fmt.Errorf("初始化迁移失败: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Get().Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("关闭迁移实例失败")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Get().Info().Msg("数据库结构已是最新")
			return nil
		}
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("读取迁移版本失败: %w", err)
	}
	logger.Get().Info().Uint("version", version).Bool("dirty", dirty).Msg("数据库迁移完成")
	return nil
}
