package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solana-patterns/internal/clipboard"
	"solana-patterns/internal/content"
	"solana-patterns/internal/highlight"
	"solana-patterns/internal/models"
	"solana-patterns/internal/widgets"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeList mode = iota
	modeDetail
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	footerHeight  = 2
)

// copiedExpiredMsg — отложенный переход индикатора обратно в Idle.
// По id находим индикаторы паттерна, даже если пользователь уже ушёл с него.
type copiedExpiredMsg struct {
	id      string
	variant widgets.Variant
	gen     uint64
}

type patternItem struct {
	p models.SecurityPattern
}

func (i patternItem) Title() string       { return i.p.Title }
func (i patternItem) Description() string { return i.p.Severity.Label() + " · " + i.p.Category }
func (i patternItem) FilterValue() string { return i.p.Title + " " + i.p.Category }

// Model — браузер паттернов: список -> карточка с кодом.
type Model struct {
	ds   *content.Dataset
	hl   *highlight.Highlighter
	sink clipboard.Sink

	mode     mode
	list     list.Model
	viewport viewport.Model
	width    int
	height   int

	current    models.SecurityPattern
	blocks     map[widgets.Variant]widgets.CodeBlock
	indicators map[widgets.Variant]*clipboard.Indicator
	status     string

	// индикаторы живут столько же, сколько модель: поколение не сбрасывается
	// при возврате на паттерн, и старый таймер не закроет новое окно
	copies map[string]map[widgets.Variant]*clipboard.Indicator
}

func New(ds *content.Dataset, hl *highlight.Highlighter, sink clipboard.Sink) Model {
	patterns := ds.All()
	items := make([]list.Item, len(patterns))
	for i, p := range patterns {
		items[i] = patternItem{p: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = ds.Site().Name
	l.Styles.Title = titleStyle

	return Model{
		ds:       ds,
		hl:       hl,
		sink:     sink,
		list:     l,
		viewport: viewport.New(defaultWidth, defaultHeight-footerHeight),
		width:    defaultWidth,
		height:   defaultHeight,
		copies:   make(map[string]map[widgets.Variant]*clipboard.Indicator),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - footerHeight
		if m.mode == modeDetail {
			m.refresh()
		}
		return m, nil

	case copiedExpiredMsg:
		if ind, ok := m.copies[msg.id][msg.variant]; ok && ind.Expire(msg.gen) && msg.id == m.current.ID {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeDetail {
			return m.updateDetail(msg)
		}
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter":
				if item, ok := m.list.SelectedItem().(patternItem); ok {
					m.open(item.p)
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.mode == modeDetail {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.mode = modeList
		m.status = ""
		return m, nil
	case "v":
		return m, m.copy(widgets.VariantVulnerable)
	case "s":
		return m, m.copy(widgets.VariantSecure)
	case "[":
		if prev, _ := m.ds.Neighbors(m.current.ID); prev != nil {
			m.open(*prev)
		}
		return m, nil
	case "]":
		if _, next := m.ds.Neighbors(m.current.ID); next != nil {
			m.open(*next)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// open — новая карточка, индикаторы копирования у каждой свои и переживают уход со страницы
func (m *Model) open(p models.SecurityPattern) {
	m.mode = modeDetail
	m.current = p
	m.status = ""
	m.blocks = map[widgets.Variant]widgets.CodeBlock{
		widgets.VariantVulnerable: widgets.NewCodeBlock(m.hl, p.VulnerableCode, p.Language, widgets.VariantVulnerable),
		widgets.VariantSecure:     widgets.NewCodeBlock(m.hl, p.SecureCode, p.Language, widgets.VariantSecure),
	}
	m.indicators = m.indicatorsFor(p.ID)
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) indicatorsFor(id string) map[widgets.Variant]*clipboard.Indicator {
	if ind, ok := m.copies[id]; ok {
		return ind
	}
	ind := map[widgets.Variant]*clipboard.Indicator{
		widgets.VariantVulnerable: clipboard.NewIndicator(clipboard.CopiedWindow),
		widgets.VariantSecure:     clipboard.NewIndicator(clipboard.CopiedWindow),
	}
	m.copies[id] = ind
	return ind
}

func (m *Model) copy(v widgets.Variant) tea.Cmd {
	ind, ok := m.indicators[v]
	if !ok {
		return nil
	}

	gen, err := ind.Copy(context.Background(), m.sink, m.blocks[v].CopyText())
	if err != nil {
		m.status = errorStyle.Render("copy failed: " + err.Error())
		m.refresh()
		return nil
	}

	m.status = ""
	m.refresh()
	id := m.current.ID
	return tea.Tick(ind.Window(), func(time.Time) tea.Msg {
		return copiedExpiredMsg{id: id, variant: v, gen: gen}
	})
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderDetail())
}

func (m Model) View() string {
	if m.mode == modeList {
		return m.list.View()
	}

	help := mutedStyle.Render("[v] copy vulnerable  [s] copy secure  [ prev  ] next  esc back  q quit")
	if m.status != "" {
		help = m.status
	}
	return m.viewport.View() + "\n" + help
}

func (m Model) renderDetail() string {
	p := m.current
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(severityBadge(p.Severity))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(p.Category))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(p.Description))
	b.WriteString("\n")

	if p.Explanation != "" {
		b.WriteString(headingStyle.Render("The Problem"))
		b.WriteString("\n")
		b.WriteString(renderProse(p.Explanation, width))
		b.WriteString("\n")
	}

	m.writeCode(&b, widgets.VariantVulnerable, p.VulnerableExplanation, width)
	m.writeCode(&b, widgets.VariantSecure, p.SecureExplanation, width)

	if p.AttackScenario != "" {
		b.WriteString(headingStyle.Render("Attack Scenario"))
		b.WriteString("\n")
		b.WriteString(renderProse(p.AttackScenario, width))
		b.WriteString("\n")
	}

	if len(p.Prevention) > 0 {
		b.WriteString(headingStyle.Render("Prevention Checklist"))
		b.WriteString("\n")
		for _, item := range p.Prevention {
			b.WriteString(copiedStyle.Render("  ✓ "))
			b.WriteString(item)
			b.WriteString("\n")
		}
	}

	if len(p.References) > 0 {
		b.WriteString(headingStyle.Render("References"))
		b.WriteString("\n")
		for _, ref := range p.References {
			fmt.Fprintf(&b, "  %s\n  %s\n", ref.Title, mutedStyle.Render(ref.URL))
		}
	}

	prev, next := m.ds.Neighbors(p.ID)
	b.WriteString("\n")
	if prev != nil {
		b.WriteString(mutedStyle.Render("← " + prev.Title))
	}
	if next != nil {
		if prev != nil {
			b.WriteString("    ")
		}
		b.WriteString(mutedStyle.Render(next.Title + " →"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) writeCode(b *strings.Builder, v widgets.Variant, explanation string, width int) {
	block, ok := m.blocks[v]
	if !ok {
		return
	}

	b.WriteString("\n")
	b.WriteString(variantHeader(v).Render(block.Variant.Icon() + " " + block.Variant.Label()))
	b.WriteString("  ")
	key := "v"
	if v == widgets.VariantSecure {
		key = "s"
	}
	if ind := m.indicators[v]; ind != nil && ind.Copied() {
		b.WriteString(copiedStyle.Render("✓ Copied!"))
	} else {
		b.WriteString(mutedStyle.Render("[" + key + "] Copy"))
	}
	b.WriteString("\n")

	for _, line := range block.Lines {
		if block.LineNumbers {
			b.WriteString(lineNumber.Render(fmt.Sprint(line.Number)))
		}
		for _, tok := range line.Tokens {
			b.WriteString(tokenStyle(tok.Class).Render(tok.Text))
		}
		b.WriteString("\n")
	}

	if explanation != "" {
		b.WriteString(renderProse(explanation, width))
		b.WriteString("\n")
	}
}

// Run — полноэкранный режим до q / ctrl+c
func Run(ds *content.Dataset, hl *highlight.Highlighter, sink clipboard.Sink) error {
	_, err := tea.NewProgram(New(ds, hl, sink), tea.WithAltScreen()).Run()
	return err
}
