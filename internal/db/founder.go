package db

import "gorm.io/gorm"

// Founder 保存目录中单个创始人的联系信息
// Image 存储内联 data URI 或远程图片地址，可能很大，使用 text 列
// ImageWidth/ImageHeight 在图片可解码时记录，否则为 0

type Founder struct {
	gorm.Model
	Name         string `gorm:"size:50;not null"`
	Position     string `gorm:"size:50;not null"`
	Summary      string `gorm:"size:300"`
	LinkedIn     string `gorm:"size:100"`
	Email        string `gorm:"size:100"`
	GitHub       string `gorm:"size:100"`
	X            string `gorm:"size:100"`
	OtherWebsite string `gorm:"size:100"`
	Phone        string `gorm:"size:20"`
	Image        string `gorm:"type:text"`
	ImageWidth   int
	ImageHeight  int
}

// TableName 返回自定义表名，避免冲突
func (Founder) TableName() string {
	return "founders"
}
