package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StateRunning:
		return m.runningView()
	case StateComplete:
		return m.completeView()
	default:
		return "未知状态"
	}
}

func (m *model) configView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🖼️  图片整理工具") + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	b.WriteString(labelStyle.Render("1. 选择工作流：") + "\n")
	if m.focus == FocusWorkflow {
		b.WriteString(focusedStyle.Render(m.workflowList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.workflowList.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("2. 目标目录：") + "\n")
	if m.focus == FocusDestInput {
		b.WriteString(focusedStyle.Render(m.destInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.destInput.View()) + "\n\n")
	}

	if m.workflow == WorkflowOrganize {
		b.WriteString(labelStyle.Render("3. 要扫描的卷：") + "\n")
		if m.focus == FocusVolumeInput {
			b.WriteString(focusedStyle.Render(m.volumeInput.View()) + "\n\n")
		} else {
			b.WriteString(normalStyle.Render(m.volumeInput.View()) + "\n\n")
		}

		b.WriteString(labelStyle.Render("已添加卷列表（留空自动发现）：") + "\n")
		if m.focus == FocusVolumeList {
			b.WriteString(focusedStyle.Render(m.volumeList.View()) + "\n\n")
		} else {
			b.WriteString(normalStyle.Render(m.volumeList.View()) + "\n\n")
		}
	}

	b.WriteString(m.renderToggles() + "\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点\n")
	b.WriteString("  • Enter 确认选择/添加卷\n")
	b.WriteString("  • Ctrl+D 切换预览模式，Ctrl+R 切换日期重命名\n")
	b.WriteString("  • Ctrl+S 开始执行，Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) renderToggles() string {
	var b strings.Builder

	if m.dryRun {
		b.WriteString(toggleOnStyle.Render("[✓] 预览模式"))
	} else {
		b.WriteString(toggleOffStyle.Render("[ ] 预览模式"))
	}
	b.WriteString("   ")

	if m.workflow == WorkflowOrganize {
		if m.renameByDate {
			b.WriteString(toggleOnStyle.Render("[✓] 按日期重命名"))
		} else {
			b.WriteString(toggleOffStyle.Render("[ ] 按日期重命名"))
		}
	}

	return b.String()
}

func (m *model) runningView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 正在执行...") + "\n\n")
	b.WriteString(m.spinner.View() + "\n")

	switch m.workflow {
	case WorkflowOrganize:
		b.WriteString("  正在扫描各卷并移动图片...\n")
		if len(m.volumes) > 0 {
			b.WriteString("  扫描卷: " + strings.Join(m.volumes, ", ") + "\n")
		} else {
			b.WriteString("  扫描卷: 自动发现\n")
		}
	case WorkflowDedup:
		b.WriteString("  正在计算内容哈希并检测重复...\n")
	case WorkflowRename:
		b.WriteString("  正在解析日期并重命名...\n")
	}
	b.WriteString("  目标目录: " + m.dest)

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("❌ 执行失败") + "\n\n")
		b.WriteString(errorStyle.Render("  " + m.err.Error()) + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ 执行完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.renderFinalStats()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 继续下一轮，Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}
