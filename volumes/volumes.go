package volumes

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Andrew-Carter99/image-organizer/logger"
)

// Discover 返回本机可扫描的卷根路径列表
// Windows 上枚举盘符，Linux 上解析 /proc/mounts，macOS 上列出 /Volumes，
// 都不可用时退化为用户主目录
func Discover() []string {
	switch runtime.GOOS {
	case "windows":
		return discoverDriveLetters()
	case "darwin":
		return discoverDarwinVolumes()
	default:
		return discoverLinuxMounts()
	}
}

// ID 从卷根路径推导目标子目录使用的卷标识
func ID(root string) string {
	cleaned := filepath.Clean(root)

	// Windows 盘符: "C:\" -> "C"
	if len(cleaned) >= 2 && cleaned[1] == ':' {
		return strings.ToUpper(cleaned[:1])
	}

	if cleaned == "/" || cleaned == string(filepath.Separator) {
		return "root"
	}

	return filepath.Base(cleaned)
}

// discoverDriveLetters 枚举 Windows 盘符 A:-Z:
func discoverDriveLetters() []string {
	var drives []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		drive := string(letter) + `:\`
		if _, err := os.Stat(drive); err == nil {
			drives = append(drives, drive)
		}
	}
	return drives
}

// discoverDarwinVolumes 列出 /Volumes 下的挂载点
func discoverDarwinVolumes() []string {
	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		logger.Get().Warn().Err(err).Msg("读取 /Volumes 失败，使用主目录")
		return homeFallback()
	}

	var vols []string
	for _, e := range entries {
		if e.IsDir() {
			vols = append(vols, filepath.Join("/Volumes", e.Name()))
		}
	}
	if len(vols) == 0 {
		return homeFallback()
	}
	return vols
}

// discoverLinuxMounts 从 /proc/mounts 取块设备的挂载点
func discoverLinuxMounts() []string {
	file, err := os.Open("/proc/mounts")
	if err != nil {
		logger.Get().Warn().Err(err).Msg("读取 /proc/mounts 失败，使用主目录")
		return homeFallback()
	}
	defer file.Close()

	var mounts []string
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		device, mountPoint := fields[0], fields[1]
		if !strings.HasPrefix(device, "/dev/") {
			continue
		}
		// 挂载点字段中的空格按 /proc/mounts 约定转义为 \040
		mounts = append(mounts, strings.ReplaceAll(mountPoint, `\040`, " "))
	}
	if err := sc.Err(); err != nil {
		logger.Get().Warn().Err(err).Msg("解析 /proc/mounts 失败")
	}

	if len(mounts) == 0 {
		return homeFallback()
	}
	return mounts
}

func homeFallback() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return []string{"."}
	}
	return []string{home}
}
