package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Andrew-Carter99/image-organizer/internal"
)

type State int

const (
	StateConfig State = iota
	StateRunning
	StateComplete
)

type Workflow int

const (
	WorkflowOrganize Workflow = iota
	WorkflowDedup
	WorkflowRename
)

type Focus int

const (
	FocusWorkflow Focus = iota
	FocusDestInput
	FocusVolumeInput
	FocusVolumeList
)

type model struct {
	state        State
	focus        Focus
	workflow     Workflow
	dest         string
	volumes      []string
	dryRun       bool
	renameByDate bool
	startTime    time.Time

	organizeStats *internal.OrganizeStats
	dedupStats    *internal.DedupStats
	renameStats   *internal.RenameStats

	workflowList list.Model
	destInput    textinput.Model
	volumeInput  textinput.Model
	volumeList   list.Model
	spinner      spinner.Model
	err          error
}

func initialModel() model {
	workflowList := list.New([]list.Item{
		workflowItem{title: "整理图片", desc: "扫描各卷并把图片集中到目标目录"},
		workflowItem{title: "检测重复", desc: "按内容哈希删除目标目录中的重复图片"},
		workflowItem{title: "日期重命名", desc: "为目标目录中的图片加日期前缀"},
	}, list.NewDefaultDelegate(), 0, 3)

	workflowList.Title = "选择要执行的工作流"
	workflowList.SetShowStatusBar(false)
	workflowList.SetFilteringEnabled(false)
	workflowList.Styles.Title = titleStyle
	workflowList.Styles.TitleBar = titleStyle

	destInput := textinput.New()
	destInput.Placeholder = "目标目录（回车确认，留空使用默认值）"
	destInput.Prompt = "> "
	destInput.PromptStyle = focusedPromptStyle
	destInput.TextStyle = textStyle
	if cfg != nil {
		destInput.SetValue(cfg.Dest)
	}

	volumeInput := textinput.New()
	volumeInput.Placeholder = "要扫描的卷路径（按回车添加，留空自动发现）"
	volumeInput.Prompt = "> "
	volumeInput.PromptStyle = focusedPromptStyle
	volumeInput.TextStyle = textStyle

	volumeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 5)
	volumeList.Title = "已添加卷列表"
	volumeList.SetShowStatusBar(false)
	volumeList.SetFilteringEnabled(false)
	volumeList.Styles.Title = titleStyle

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := model{
		state:        StateConfig,
		focus:        FocusWorkflow,
		workflow:     WorkflowOrganize,
		volumes:      []string{},
		workflowList: workflowList,
		destInput:    destInput,
		volumeInput:  volumeInput,
		volumeList:   volumeList,
		spinner:      s,
	}
	if cfg != nil {
		m.dest = cfg.Dest
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

type workflowItem struct {
	title string
	desc  string
}

func (w workflowItem) Title() string       { return w.title }
func (w workflowItem) Description() string { return w.desc }
func (w workflowItem) FilterValue() string { return w.title }

type volumeItem struct {
	path string
}

func (v volumeItem) Title() string       { return v.path }
func (v volumeItem) Description() string { return "" }
func (v volumeItem) FilterValue() string { return v.path }
