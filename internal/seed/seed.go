package seed

import (
	"log/slog"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
	"github.com/storelink-dev/backoffice/backend/internal/repository"
)

// 门店开业时的固定班底，和线上门店的真实岗位结构一致。
// 全职按月薪结算，时薪仅用于参考；兼职按时薪结算。
var initialStaffs = []domain.Staff{
	{
		Name:           "王伟",
		Position:       "值班经理",
		HourlyWage:     12000,
		MonthlyWage:    2800000,
		EmploymentType: domain.EmploymentFullTime,
		Phone:          "010-3012-3456",
		Email:          "wangwei@storelink.test",
	},
	{
		Name:           "李芳",
		Position:       "收银",
		HourlyWage:     10000,
		EmploymentType: domain.EmploymentPartTime,
		Phone:          "010-4023-4567",
		Email:          "lifang@storelink.test",
	},
	{
		Name:           "张敏",
		Position:       "理货",
		HourlyWage:     9500,
		EmploymentType: domain.EmploymentPartTime,
		Phone:          "010-5034-5678",
		Email:          "zhangmin@storelink.test",
	},
	{
		Name:           "刘洋",
		Position:       "仓储",
		HourlyWage:     11000,
		MonthlyWage:    2500000,
		EmploymentType: domain.EmploymentFullTime,
		Phone:          "010-6045-6789",
		Email:          "liuyang@storelink.test",
	},
	{
		Name:           "陈静",
		Position:       "客服",
		HourlyWage:     9800,
		EmploymentType: domain.EmploymentPartTime,
		Phone:          "010-7056-7890",
		Email:          "chenjing@storelink.test",
	},
}

var initialNotices = []domain.Notice{
	{
		Title:    "门店晨会时间调整",
		Category: domain.NoticeOperation,
		Body:     "自下周一起晨会时间从 08:30 调整为 08:15，请开店班同事提前到岗。",
		Author:   "店长",
		IsPinned: true,
	},
	{
		Title:    "新员工收银系统培训",
		Category: domain.NoticeEducation,
		Body:     "本周五 14:00 在后台办公室进行收银系统培训，新入职员工必须参加。",
		Author:   "店长",
	},
}

// SeedRealData 插入门店开业时的花名册和公告。
// 员工重复插入会产生重复记录，只应在空库上执行。
func SeedRealData(r *repository.Repository) {
	for i := range initialStaffs {
		staff := initialStaffs[i]
		if err := r.CreateStaff(&staff); err != nil {
			slog.Error("插入员工失败", "name", staff.Name, "error", err)
			continue
		}
	}

	for i := range initialNotices {
		notice := initialNotices[i]
		if err := r.CreateNotice(&notice); err != nil {
			slog.Error("插入公告失败", "title", notice.Title, "error", err)
			continue
		}
	}

	slog.Info("插入数据完成")
}
