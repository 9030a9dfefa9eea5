package hasher

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/logger"
)

// Calculate 流式计算文件内容的 xxHash 哈希值
// 增量读取，不把整个文件载入内存
func Calculate(fs afero.Fs, filePath string) (string, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("计算哈希失败: %w", err)
	}

	result := fmt.Sprintf("%016x", hash.Sum64())
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %s", filePath, result)
	return result, nil
}
