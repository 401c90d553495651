package schedule

import (
	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

// Catalog 是启动时加载的班次模板目录。目录本身是配置，
// 运行期间没有任何修改操作。
type Catalog struct {
	templates []domain.ShiftTemplate
}

func NewCatalog(templates []domain.ShiftTemplate) *Catalog {
	return &Catalog{templates: templates}
}

// DefaultCatalog 返回门店默认的班次模板目录：
// 兼职使用 open/middle/close 三种班次，全职使用 A/B/C/D 四种班次。
func DefaultCatalog() *Catalog {
	return NewCatalog([]domain.ShiftTemplate{
		{
			Kind:           domain.WorkKindOpen,
			Name:           "开店班",
			StartTime:      "08:00",
			EndTime:        "14:00",
			BreakMinutes:   60,
			Description:    "门店开店准备及上午运营（6 小时）",
			EmploymentType: domain.EmploymentPartTime,
		},
		{
			Kind:           domain.WorkKindMiddle,
			Name:           "中班",
			StartTime:      "12:00",
			EndTime:        "18:00",
			BreakMinutes:   60,
			Description:    "午市到下午高峰时段运营（6 小时）",
			EmploymentType: domain.EmploymentPartTime,
		},
		{
			Kind:           domain.WorkKindClose,
			Name:           "闭店班",
			StartTime:      "16:00",
			EndTime:        "22:30",
			BreakMinutes:   30,
			Description:    "下午到门店打烊（6.5 小时）",
			EmploymentType: domain.EmploymentPartTime,
		},
		{
			Kind:           domain.WorkKindA,
			Name:           "A 班（开店型）",
			StartTime:      "08:00",
			EndTime:        "20:00",
			BreakMinutes:   90,
			Description:    "开店到晚间 12 小时（休息 13:00~14:30）",
			EmploymentType: domain.EmploymentFullTime,
		},
		{
			Kind:           domain.WorkKindB,
			Name:           "B 班（中班型）",
			StartTime:      "10:00",
			EndTime:        "22:00",
			BreakMinutes:   90,
			Description:    "上午到营业结束 12 小时（休息 15:00~16:30）",
			EmploymentType: domain.EmploymentFullTime,
		},
		{
			Kind:           domain.WorkKindC,
			Name:           "C 班（闭店型）",
			StartTime:      "11:00",
			EndTime:        "22:30",
			BreakMinutes:   90,
			Description:    "上午到打烊收尾 11.5 小时（休息 16:00~17:30）",
			EmploymentType: domain.EmploymentFullTime,
		},
		{
			Kind:           domain.WorkKindD,
			Name:           "D 班（全时段）",
			StartTime:      "09:00",
			EndTime:        "21:00",
			BreakMinutes:   90,
			Description:    "覆盖整个营业时段 12 小时（休息 14:00~15:30）",
			EmploymentType: domain.EmploymentFullTime,
		},
	})
}

// List 返回适用于指定雇佣形态的模板，保持目录定义顺序。
func (c *Catalog) List(et domain.EmploymentType) []domain.ShiftTemplate {
	templates := make([]domain.ShiftTemplate, 0)
	for _, t := range c.templates {
		if t.EmploymentType == et {
			templates = append(templates, t)
		}
	}
	return templates
}

// All 返回全部模板，保持目录定义顺序。
func (c *Catalog) All() []domain.ShiftTemplate {
	templates := make([]domain.ShiftTemplate, len(c.templates))
	copy(templates, c.templates)
	return templates
}

// Resolve 按类型查找模板。
func (c *Catalog) Resolve(kind domain.WorkKind) (*domain.ShiftTemplate, bool) {
	for i := range c.templates {
		if c.templates[i].Kind == kind {
			return &c.templates[i], true
		}
	}
	return nil, false
}
