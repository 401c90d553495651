package domain

import "time"

type NoticeCategory string

const (
	NoticeGeneral   NoticeCategory = "general"
	NoticeOperation NoticeCategory = "operation"
	NoticeEducation NoticeCategory = "education"
)

type Notice struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Category  NoticeCategory `json:"category"`
	Body      string         `json:"body"`
	Author    string         `json:"author"`
	IsPinned  bool           `json:"isPinned"`
	CreatedAt time.Time      `json:"createdAt"`
	Version   int32          `json:"-"`
}
