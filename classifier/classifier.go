package classifier

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/logger"
)

const (
	// FileHeaderSize 文件类型检测所需的文件头部大小（字节）
	FileHeaderSize = 261
)

// imageExtensions 识别为图片的文件扩展名（小写）
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".tiff": true, ".tif": true, ".webp": true,
	".svg": true, ".ico": true, ".heic": true, ".raw": true,
	".cr2": true, ".nef": true, ".orf": true, ".sr2": true,
	".arw": true, ".dng": true, ".rw2": true,
}

// systemDirs 内置需要跳过的系统、程序和游戏目录名（小写）
var systemDirs = []string{
	"windows", "program files", "program files (x86)",
	"programdata", "$recycle.bin", "system volume information",
	"recovery", "perflogs", "boot", "appdata",
	"steamapps", "proc", "sys", "dev", "node_modules",
}

// Classifier 路径分类器：判断图片文件和需要跳过的目录
// 排除配置在运行期间不可变，所有方法无副作用
type Classifier struct {
	destRoot     string   // 目标目录（小写、统一分隔符），其下所有路径都跳过
	excludeTerms []string // 排除项：内置目录名 + 用户自定义
}

// New 创建路径分类器
// destRoot: 目标目录路径，customTerms: 用户自定义排除项
func New(destRoot string, customTerms []string) *Classifier {
	terms := make([]string, 0, len(systemDirs)+len(customTerms))
	terms = append(terms, systemDirs...)
	for _, t := range customTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}

	return &Classifier{
		destRoot:     normalize(destRoot),
		excludeTerms: terms,
	}
}

// IsImage 根据扩展名（不区分大小写）判断路径是否为图片文件
func (c *Classifier) IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return imageExtensions[ext]
}

// ShouldSkip 判断扫描时是否应跳过该路径
// 路径位于目标目录下，或任一排除项匹配完整的路径段时返回 true
// 排除项按路径段精确匹配，不做子串包含（"games" 不会误伤 "mygamesaves"）
func (c *Classifier) ShouldSkip(path string) bool {
	p := normalize(path)

	if c.destRoot != "" && (p == c.destRoot || strings.HasPrefix(p, c.destRoot+"/")) {
		return true
	}

	for _, term := range c.excludeTerms {
		if containsSegment(p, term) {
			return true
		}
	}

	return false
}

// VerifyImage 读取文件头并校验内容确实是图片
// 用于可选的内容校验模式，读取失败时返回 false
func (c *Classifier) VerifyImage(fs afero.Fs, path string) bool {
	file, err := fs.Open(path)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("无法打开文件进行内容校验: %s", path)
		return false
	}
	defer file.Close()

	head := make([]byte, FileHeaderSize)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		logger.Get().Debug().Err(err).Msgf("读取文件头部失败: %s", path)
		return false
	}

	return filetype.IsImage(head[:n])
}

// normalize 统一路径形式：小写 + 正斜杠分隔符
func normalize(path string) string {
	return strings.ToLower(filepath.ToSlash(path))
}

// containsSegment 判断排除项是否作为完整路径段出现在路径中
func containsSegment(path, term string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == term {
			return true
		}
	}
	return false
}
