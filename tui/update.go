package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/app"
	"github.com/Andrew-Carter99/image-organizer/logger"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.state == StateConfig {
			return m.updateConfigPhase(msg)
		}

		if m.state == StateComplete && msg.String() == "enter" {
			// 回到配置界面继续下一轮
			fresh := initialModel()
			fresh.dest = m.dest
			*m = fresh
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case runCompleteMsg:
		m.state = StateComplete
		m.organizeStats = msg.organize
		m.dedupStats = msg.dedup
		m.renameStats = msg.rename
		m.logFinalStats()
		return m, nil

	case errMsg:
		m.err = msg
		m.state = StateComplete
		return m, nil

	case spinner.TickMsg:
		if m.state == StateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.state == StateConfig {
		var cmd tea.Cmd
		m.workflowList, cmd = m.workflowList.Update(msg)
		cmds = append(cmds, cmd)

		m.destInput, cmd = m.destInput.Update(msg)
		cmds = append(cmds, cmd)

		m.volumeInput, cmd = m.volumeInput.Update(msg)
		cmds = append(cmds, cmd)

		m.volumeList, cmd = m.volumeList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.nextFocus()
		m.updateFocusState()
		return m, nil

	case "enter":
		return m.handleEnterKey()

	case "ctrl+d":
		m.dryRun = !m.dryRun
		return m, nil

	case "ctrl+r":
		m.renameByDate = !m.renameByDate
		return m, nil

	case "ctrl+s":
		return m.startRun()

	case "delete", "backspace":
		if m.focus == FocusVolumeList && m.volumeList.Index() >= 0 && len(m.volumes) > 0 {
			idx := m.volumeList.Index()
			m.volumeList.RemoveItem(idx)
			m.volumes = append(m.volumes[:idx], m.volumes[idx+1:]...)
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.focus {
	case FocusWorkflow:
		m.workflowList, cmd = m.workflowList.Update(msg)
	case FocusDestInput:
		m.destInput, cmd = m.destInput.Update(msg)
	case FocusVolumeInput:
		m.volumeInput, cmd = m.volumeInput.Update(msg)
	case FocusVolumeList:
		m.volumeList, cmd = m.volumeList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) nextFocus() {
	switch m.focus {
	case FocusWorkflow:
		m.focus = FocusDestInput
	case FocusDestInput:
		m.focus = FocusVolumeInput
	case FocusVolumeInput:
		m.focus = FocusVolumeList
	case FocusVolumeList:
		m.focus = FocusWorkflow
	}
}

func (m *model) updateFocusState() {
	m.workflowList.KeyMap.CursorUp.SetEnabled(m.focus == FocusWorkflow)
	m.workflowList.KeyMap.CursorDown.SetEnabled(m.focus == FocusWorkflow)

	if m.focus == FocusDestInput {
		m.destInput.Focus()
	} else {
		m.destInput.Blur()
	}

	if m.focus == FocusVolumeInput {
		m.volumeInput.Focus()
	} else {
		m.volumeInput.Blur()
	}

	m.volumeList.KeyMap.CursorUp.SetEnabled(m.focus == FocusVolumeList)
	m.volumeList.KeyMap.CursorDown.SetEnabled(m.focus == FocusVolumeList)
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusWorkflow:
		m.workflow = Workflow(m.workflowList.Index())
		return m, nil

	case FocusDestInput:
		if v := strings.TrimSpace(m.destInput.Value()); v != "" {
			m.dest = v
		}
		return m, nil

	case FocusVolumeInput:
		path := strings.TrimSpace(m.volumeInput.Value())
		if path != "" {
			m.volumes = append(m.volumes, path)
			m.volumeList.InsertItem(len(m.volumes)-1, volumeItem{path: path})
			m.volumeInput.Reset()
		}
		return m, nil

	case FocusVolumeList:
		return m.startRun()
	}

	return m, nil
}

// startRun 切换到运行状态并在后台执行所选工作流
func (m *model) startRun() (tea.Model, tea.Cmd) {
	m.state = StateRunning
	m.startTime = time.Now()
	m.err = nil

	return m, tea.Batch(
		m.spinner.Tick,
		runWorkflowCmd(m.workflow, m.dest, m.volumes, m.dryRun, m.renameByDate),
	)
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width := msg.Width

	m.workflowList.SetWidth(width - 4)
	m.destInput.Width = width - 10
	m.volumeInput.Width = width - 10
	m.volumeList.SetWidth(width - 4)
}

// runWorkflowCmd 执行所选工作流并返回完成消息
func runWorkflowCmd(workflow Workflow, dest string, vols []string, dryRun, renameByDate bool) tea.Cmd {
	return func() tea.Msg {
		fs := afero.NewOsFs()

		logLevel := "info"
		var excludeTerms []string
		if cfg != nil {
			logLevel = cfg.LogLevel
			excludeTerms = cfg.ExcludeTerms
		}

		switch workflow {
		case WorkflowOrganize:
			stats, err := app.RunOrganize(&app.OrganizeOptions{
				Volumes:      vols,
				Dest:         dest,
				ExcludeTerms: excludeTerms,
				RenameByDate: renameByDate,
				DryRun:       dryRun,
				LogLevel:     logLevel,
			}, fs)
			if err != nil {
				return errMsg(err)
			}
			return runCompleteMsg{organize: stats}

		case WorkflowDedup:
			stats, err := app.RunDedup(&app.DedupOptions{
				Dest:     dest,
				DryRun:   dryRun,
				LogLevel: logLevel,
			}, fs)
			if err != nil {
				return errMsg(err)
			}
			return runCompleteMsg{dedup: stats}

		case WorkflowRename:
			stats, err := app.RunRename(&app.RenameOptions{
				Dest:     dest,
				LogLevel: logLevel,
			}, fs)
			if err != nil {
				return errMsg(err)
			}
			return runCompleteMsg{rename: stats}
		}

		return errMsg(fmt.Errorf("未知工作流: %d", workflow))
	}
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func (m *model) renderFinalStats() string {
	var b strings.Builder
	b.WriteString("📊 最终统计：\n\n")

	switch {
	case m.organizeStats != nil:
		s := m.organizeStats
		b.WriteString(fmt.Sprintf("  • 找到图片：   %d 个\n", s.TotalFound))
		b.WriteString(fmt.Sprintf("  • 已移动：     %d 个\n", s.TotalMoved))
		b.WriteString(fmt.Sprintf("  • 错误：       %d 个\n", s.TotalErrors))
		for id, v := range s.ByVolume {
			b.WriteString(fmt.Sprintf("    卷 %s：%d/%d 已移动\n", id, v.Moved, v.Found))
		}

	case m.dedupStats != nil:
		s := m.dedupStats
		b.WriteString(fmt.Sprintf("  • 重复组：     %d 组\n", s.GroupsFound))
		b.WriteString(fmt.Sprintf("  • 重复文件：   %d 个\n", s.Duplicates))
		b.WriteString(fmt.Sprintf("  • 已删除：     %d 个\n", s.Removed))
		b.WriteString(fmt.Sprintf("  • 释放空间：   %s\n", formatBytes(s.SpaceSaved)))

	case m.renameStats != nil:
		s := m.renameStats
		b.WriteString(fmt.Sprintf("  • 扫描：       %d 个\n", s.Scanned))
		b.WriteString(fmt.Sprintf("  • 已重命名：   %d 个\n", s.Renamed))
		b.WriteString(fmt.Sprintf("  • 错误：       %d 个\n", s.Errors))
	}

	b.WriteString(fmt.Sprintf("  • 总耗时：     %s\n", time.Since(m.startTime).Round(time.Millisecond)))
	return b.String()
}

func (m *model) logFinalStats() {
	if m.organizeStats != nil {
		s := m.organizeStats
		logger.Get().Info().Msgf("TUI 整理完成: 找到 %d, 移动 %d, 错误 %d",
			s.TotalFound, s.TotalMoved, s.TotalErrors)
	}
	if m.dedupStats != nil {
		s := m.dedupStats
		logger.Get().Info().Msgf("TUI 去重完成: %d 组, 删除 %d, 释放 %s",
			s.GroupsFound, s.Removed, formatBytes(s.SpaceSaved))
	}
	if m.renameStats != nil {
		s := m.renameStats
		logger.Get().Info().Msgf("TUI 重命名完成: 扫描 %d, 重命名 %d", s.Scanned, s.Renamed)
	}
}
