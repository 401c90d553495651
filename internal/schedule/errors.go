package schedule

import "errors"

var (
	// ErrInvalidWorkKind 表示排班类型不在该员工雇佣形态允许的集合中
	ErrInvalidWorkKind = errors.New("该员工不允许使用此排班类型")
	// ErrInvalidTimeRange 表示 custom 班次的时间即使考虑跨夜也无法成立
	ErrInvalidTimeRange = errors.New("无效的班次时间范围")
	// ErrInvalidRange 表示休假的结束日期早于开始日期
	ErrInvalidRange = errors.New("休假结束日期不能早于开始日期")
	// ErrNotFound 表示操作引用了不存在的排班或休假申请
	ErrNotFound = errors.New("记录不存在")
	// ErrAlreadyDecided 表示试图处理一条已经被批准或驳回的休假申请
	ErrAlreadyDecided = errors.New("该休假申请已被处理")
	// ErrInvalidStatus 表示出勤记录中给出的状态不在允许的状态集合中
	ErrInvalidStatus = errors.New("无效的排班状态")
)
