package db

import (
	"path/filepath"
	"testing"
)

func TestInitMigratesAndSeeds(t *testing.T) {
	original := DB
	DB = nil
	t.Cleanup(func() { DB = original })

	path := filepath.Join(t.TempDir(), "data", "foundersdir.db")
	if err := Init(path); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	if DB == nil {
		t.Fatal("expected global DB to be set")
	}
	t.Cleanup(func() {
		sqlDB, err := DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	var count int64
	if err := DB.Model(&Founder{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count founders: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 seeded founders, got %d", count)
	}

	// 重复初始化不应重新建连或重复播种
	first := DB
	if err := Init(path); err != nil {
		t.Fatalf("repeated init failed: %v", err)
	}
	if DB != first {
		t.Fatal("expected repeated init to keep the existing connection")
	}
}
