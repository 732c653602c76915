package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/models"
)

// historyLimit is how many stored records the history panel shows.
const historyLimit = 5

const statusTTL = 2 * time.Second

// supportModel is the single screen of the support CLI.
type supportModel struct {
	ctx       context.Context
	support   service.ClientSupportService
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	spinner spinner.Model

	loadingOverview bool
	loadingProbe    bool
	loadingHistory  bool

	overview    service.SupportOverview
	overviewErr error

	probe    *models.CapabilityProbeResult
	probeErr error

	showHistory  bool
	reports      []models.StoredReport
	capabilities []models.StoredCapabilityResult
	historyErr   error

	showBuildInfo bool
	status        string
}

func newSupportModel(ctx context.Context, support service.ClientSupportService, buildInfo models.AppBuildInfo) supportModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return supportModel{
		ctx:             ctx,
		support:         support,
		buildInfo:       buildInfo,
		copyText:        clipboard.WriteAll,
		spinner:         s,
		loadingOverview: true,
		loadingProbe:    true,
	}
}

func (m supportModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadOverview(), m.cmdProbe())
}

func (m supportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case overviewLoadedMsg:
		m.loadingOverview = false
		m.overviewErr = msg.err
		if msg.err == nil {
			m.overview = msg.overview
		}
		return m, nil

	case probeDoneMsg:
		m.loadingProbe = false
		m.probeErr = msg.err
		if msg.err == nil {
			result := msg.result
			m.probe = &result
		}
		return m, nil

	case historyLoadedMsg:
		m.loadingHistory = false
		m.historyErr = msg.err
		m.reports = msg.reports
		m.capabilities = msg.capabilities
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = msg.what + " copied to clipboard"
		}
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m supportModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
			return m, nil
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.copy):
		if m.overview.Formatted == "" {
			m.status = "nothing to copy yet"
			return m, clearStatusAfter(statusTTL)
		}
		return m, m.cmdCopy("report", m.overview.Formatted)

	case key.Matches(msg, keys.script):
		return m, m.cmdCopyProbeScript()

	case key.Matches(msg, keys.probe):
		if m.loadingProbe {
			return m, nil
		}
		m.loadingProbe = true
		return m, tea.Batch(m.spinner.Tick, m.cmdProbe())

	case key.Matches(msg, keys.reload):
		if m.loadingOverview {
			return m, nil
		}
		m.loadingOverview = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadOverview())

	case key.Matches(msg, keys.history):
		m.showHistory = !m.showHistory
		if !m.showHistory || m.loadingHistory {
			return m, nil
		}
		m.loadingHistory = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadHistory())

	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	}

	return m, nil
}

func (m supportModel) busy() bool {
	return m.loadingOverview || m.loadingProbe || m.loadingHistory
}

func (m supportModel) cmdLoadOverview() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.support.Overview(m.ctx)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

func (m supportModel) cmdProbe() tea.Cmd {
	return func() tea.Msg {
		result, err := m.support.Probe(m.ctx)
		return probeDoneMsg{result: result, err: err}
	}
}

func (m supportModel) cmdLoadHistory() tea.Cmd {
	return func() tea.Msg {
		reports, err := m.support.RecentReports(m.ctx, historyLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		capabilities, err := m.support.RecentCapabilities(m.ctx, historyLimit)
		return historyLoadedMsg{reports: reports, capabilities: capabilities, err: err}
	}
}

func (m supportModel) cmdCopy(what, text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func (m supportModel) cmdCopyProbeScript() tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		script, err := m.support.ProbeScript(m.ctx)
		if err != nil {
			return copiedMsg{what: "probe script", err: err}
		}
		if err = copyText(script); err != nil {
			return copiedMsg{what: "probe script", err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: "probe script"}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m supportModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.overview.Version)
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Diagnostics"))
	b.WriteString("\n")
	switch {
	case m.loadingOverview:
		b.WriteString(m.spinner.View() + " collecting diagnostics...\n")
	case m.overviewErr != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.overviewErr)) + "\n")
	default:
		b.WriteString(renderReport(m.overview))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Capability probe"))
	b.WriteString("\n")
	switch {
	case m.loadingProbe:
		b.WriteString(m.spinner.View() + " probing...\n")
	case m.probeErr != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.probeErr)) + "\n")
	case m.probe != nil:
		b.WriteString(renderProbe(*m.probe))
	}

	if m.showHistory {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("History"))
		b.WriteString("\n")
		switch {
		case m.loadingHistory:
			b.WriteString(m.spinner.View() + " loading...\n")
		case m.historyErr != nil:
			b.WriteString(errorStyle.Render(humanizeError(m.historyErr)) + "\n")
		default:
			b.WriteString(renderHistory(m.reports, m.capabilities))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
	}

	return renderPage("CONSENT BRIDGE SUPPORT", b.String(),
		"c: copy report  s: copy probe script  p: probe  r: reload  h: history  v: build info")
}

func renderReport(o service.SupportOverview) string {
	r := o.Report

	var b strings.Builder
	fmt.Fprintf(&b, "Bridge:           %s (sdk %s)\n", valueOrNA(o.Version.Version), valueOrNA(r.SDKVersion))
	fmt.Fprintf(&b, "Platform:         %s %s\n", r.Platform, r.PlatformVersion)
	fmt.Fprintf(&b, "Token:            %s\n", yesNo(r.HasToken))
	fmt.Fprintf(&b, "Cookie sync:      %s\n", yesNo(r.WebViewSupport.CookieSyncCapable))
	fmt.Fprintf(&b, "Isolated storage: %t\n", r.WebViewSupport.IsolatedStorage)
	return b.String()
}

func renderProbe(p models.CapabilityProbeResult) string {
	var b strings.Builder
	if p.Passed {
		b.WriteString(okStyle.Render("passed") + "\n")
	} else {
		b.WriteString(warnStyle.Render("failed") + "\n")
	}
	for _, d := range p.Details {
		b.WriteString(d + "\n")
	}
	if len(p.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, r := range p.Recommendations {
			b.WriteString("  - " + r + "\n")
		}
	}
	return b.String()
}

func renderHistory(reports []models.StoredReport, capabilities []models.StoredCapabilityResult) string {
	var b strings.Builder

	b.WriteString("Reports:\n")
	if len(reports) == 0 {
		b.WriteString("  -\n")
	}
	for _, r := range reports {
		fmt.Fprintf(&b, "  %s  %-7s %-10s token=%t\n",
			r.CreatedAt.Local().Format(time.DateTime), r.Report.Platform, fitText(r.Report.PlatformVersion, 10), r.Report.HasToken)
	}

	b.WriteString("In-view probes:\n")
	if len(capabilities) == 0 {
		b.WriteString("  -\n")
	}
	for _, c := range capabilities {
		fmt.Fprintf(&b, "  %s  cookies=%t localStorage=%t\n",
			c.ReceivedAt.Local().Format(time.DateTime), c.Results.Cookies.Readable, c.Results.LocalStorage.Available)
	}

	return b.String()
}
