package internal

const (
	// 配置文件默认路径
	DefaultConfigPath = "~/.image-organizer/config.yaml"

	// 目标目录下的卷子目录名前缀
	VolumeDirPrefix = "Images from Volume "

	// 目标目录下存放运行日志的子目录名
	LogDirName = "logs"
)
