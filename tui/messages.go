package tui

import (
	"github.com/Andrew-Carter99/image-organizer/internal"
)

// runCompleteMsg 工作流执行完成，按工作流类型携带对应的统计信息
type runCompleteMsg struct {
	organize *internal.OrganizeStats
	dedup    *internal.DedupStats
	rename   *internal.RenameStats
}

type errMsg error
