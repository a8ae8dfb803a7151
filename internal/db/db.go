package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

var initMu sync.Mutex

// Init 初始化数据库连接并执行自动迁移。
// databasePath 为空时将回退到默认值 foundersdir.db。
// 重复调用是无操作，首次初始化由互斥锁保护。
func Init(databasePath string) error {
	initMu.Lock()
	defer initMu.Unlock()

	if DB != nil {
		return nil
	}

	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "foundersdir.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表
	if err = gdb.AutoMigrate(&Founder{}); err != nil {
		return err
	}

	if err := seedFounders(gdb); err != nil {
		return err
	}

	DB = gdb
	return nil
}

// seedFounders 在 founders 表为空时写入示例数据，保证首次启动页面不为空
func seedFounders(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Founder{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []Founder{
		{
			Name:     "Zach Nguyen",
			Position: "CTO @ Talys",
			LinkedIn: "https://www.linkedin.com/in/zach-nguyen/",
			Phone:    "+1(585) 710-8726",
		},
		{
			Name:     "Nathaniel Angafor",
			Position: "CEO @ Talys",
			LinkedIn: "https://www.linkedin.com/in/janesmith/",
			Phone:    "+1(240) 437-7557",
		},
	}
	return gdb.Create(&samples).Error
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
