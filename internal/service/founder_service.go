package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/foundersdir/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrFounderNotFound 在指定的创始人记录不存在时返回
	ErrFounderNotFound = errors.New("founder not found")
	// ErrFounderInvalidInput 在输入数据不完整时返回
	ErrFounderInvalidInput = errors.New("invalid founder input")
)

// FieldLimits 是各字段的建议长度上限，供页面与前端表单共用。
// 仅在界面层提示，存储层不强制。
var FieldLimits = map[string]int{
	"name":         50,
	"position":     50,
	"summary":      300,
	"linkedin":     100,
	"email":        100,
	"github":       100,
	"x":            100,
	"otherWebsite": 100,
	"phone":        20,
}

// FounderService 负责维护创始人目录记录
// 提供增删改查与纯内存过滤能力，与 handler 解耦

type FounderService struct {
	db *gorm.DB
}

// NewFounderService 构造 FounderService
func NewFounderService(gdb *gorm.DB) *FounderService {
	return &FounderService{db: gdb}
}

// FounderInput 描述创建或更新记录时可设置的字段
// 除 Name/Position 外全部可选，缺省落库为空字符串

type FounderInput struct {
	Name         string
	Position     string
	Summary      string
	LinkedIn     string
	Email        string
	GitHub       string
	X            string
	OtherWebsite string
	Phone        string
	Image        string
	ImageWidth   int
	ImageHeight  int
}

// List 返回全部创始人记录，不分页，排序交由调用方
func (s *FounderService) List() ([]db.Founder, error) {
	var items []db.Founder
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list founders: %w", err)
	}
	return items, nil
}

// Get 根据主键获取创始人记录
func (s *FounderService) Get(id uint) (*db.Founder, error) {
	var item db.Founder
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, fmt.Errorf("get founder: %w", err)
	}
	return &item, nil
}

// Create 新建创始人记录，Name 与 Position 为必填项
func (s *FounderService) Create(input FounderInput) (*db.Founder, error) {
	if err := validateFounderInput(input); err != nil {
		return nil, err
	}

	founder := founderFromInput(input)
	if err := s.db.Create(&founder).Error; err != nil {
		return nil, fmt.Errorf("create founder: %w", err)
	}

	return &founder, nil
}

// Update 以全字段替换方式更新指定记录
// 编辑流程每次提交全部字段，允许把可选字段清空
func (s *FounderService) Update(id uint, input FounderInput) (*db.Founder, error) {
	var founder db.Founder
	if err := s.db.First(&founder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, fmt.Errorf("find founder: %w", err)
	}

	next := founderFromInput(input)
	founder.Name = next.Name
	founder.Position = next.Position
	founder.Summary = next.Summary
	founder.LinkedIn = next.LinkedIn
	founder.Email = next.Email
	founder.GitHub = next.GitHub
	founder.X = next.X
	founder.OtherWebsite = next.OtherWebsite
	founder.Phone = next.Phone
	founder.Image = next.Image
	founder.ImageWidth = next.ImageWidth
	founder.ImageHeight = next.ImageHeight

	if err := s.db.Save(&founder).Error; err != nil {
		return nil, fmt.Errorf("update founder: %w", err)
	}

	return &founder, nil
}

// Delete 删除指定记录，记录不存在时返回 ErrFounderNotFound
func (s *FounderService) Delete(id uint) error {
	var founder db.Founder
	if err := s.db.First(&founder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFounderNotFound
		}
		return fmt.Errorf("find founder: %w", err)
	}
	if err := s.db.Delete(&founder).Error; err != nil {
		return fmt.Errorf("delete founder: %w", err)
	}
	return nil
}

// Filter 在内存中做大小写不敏感的子串匹配，不触发任何存储读取。
// 匹配范围：姓名、职位、电话、邮箱、GitHub、X。
func Filter(founders []db.Founder, query string) []db.Founder {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return founders
	}

	matched := make([]db.Founder, 0, len(founders))
	for _, founder := range founders {
		haystacks := []string{
			founder.Name,
			founder.Position,
			founder.Phone,
			founder.Email,
			founder.GitHub,
			founder.X,
		}
		for _, value := range haystacks {
			if strings.Contains(strings.ToLower(value), query) {
				matched = append(matched, founder)
				break
			}
		}
	}
	return matched
}

func founderFromInput(input FounderInput) db.Founder {
	return db.Founder{
		Name:         strings.TrimSpace(input.Name),
		Position:     strings.TrimSpace(input.Position),
		Summary:      strings.TrimSpace(input.Summary),
		LinkedIn:     strings.TrimSpace(input.LinkedIn),
		Email:        strings.TrimSpace(input.Email),
		GitHub:       strings.TrimSpace(input.GitHub),
		X:            strings.TrimSpace(input.X),
		OtherWebsite: strings.TrimSpace(input.OtherWebsite),
		Phone:        strings.TrimSpace(input.Phone),
		Image:        strings.TrimSpace(input.Image),
		ImageWidth:   input.ImageWidth,
		ImageHeight:  input.ImageHeight,
	}
}

func validateFounderInput(input FounderInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrFounderInvalidInput)
	}
	if strings.TrimSpace(input.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrFounderInvalidInput)
	}
	return nil
}
