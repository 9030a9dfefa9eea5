package internal

import "time"

// VolumeStats 单个卷的处理统计
type VolumeStats struct {
	Found int // 找到的图片数
	Moved int // 已移动的图片数
}

// OrganizeStats 整理操作的统计信息
// 各组件返回统计值，由编排层合并，而不是共享可变状态
type OrganizeStats struct {
	TotalFound  int
	TotalMoved  int
	TotalErrors int
	ByVolume    map[string]*VolumeStats
	StartTime   time.Time
	EndTime     time.Time
}

// NewOrganizeStats 创建整理统计信息
func NewOrganizeStats() *OrganizeStats {
	return &OrganizeStats{
		ByVolume:  make(map[string]*VolumeStats),
		StartTime: time.Now(),
	}
}

// Volume 获取（按需创建）指定卷的统计条目
func (s *OrganizeStats) Volume(id string) *VolumeStats {
	v, ok := s.ByVolume[id]
	if !ok {
		v = &VolumeStats{}
		s.ByVolume[id] = v
	}
	return v
}

// Merge 合并另一份统计信息
func (s *OrganizeStats) Merge(other *OrganizeStats) {
	s.TotalFound += other.TotalFound
	s.TotalMoved += other.TotalMoved
	s.TotalErrors += other.TotalErrors
	for id, v := range other.ByVolume {
		dst := s.Volume(id)
		dst.Found += v.Found
		dst.Moved += v.Moved
	}
}

// DedupStats 去重操作的统计信息
type DedupStats struct {
	GroupsFound int   // 重复组数量
	Duplicates  int   // 重复文件总数（不含保留文件）
	Removed     int   // 实际删除的文件数
	SpaceSaved  int64 // 释放（或可释放）的空间
	Errors      int
	StartTime   time.Time
	EndTime     time.Time
}

// RenameStats 日期重命名操作的统计信息
type RenameStats struct {
	Scanned int
	Renamed int
	Errors  int
}
