package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading dashboard..."
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.renderFilterBar())
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverview())
	case tabTrends:
		b.WriteString(a.renderTrends())
	case tabKeywords:
		b.WriteString(a.renderKeywords())
	case tabContributors:
		b.WriteString(a.renderContributors())
	case tabNetwork:
		b.WriteString(a.renderNetwork())
	case tabChat:
		b.WriteString(a.renderChat())
	}

	b.WriteString("\n")
	if a.showHelp {
		b.WriteString(a.renderHelp())
		b.WriteString("\n")
	}
	b.WriteString(a.renderStatusBar())

	return b.String()
}

func (a *App) renderTabs() string {
	parts := make([]string, 0, int(tabCount))
	for i := tab(0); i < tabCount; i++ {
		style := a.styles.TabInactive
		if i == a.activeTab {
			style = a.styles.TabActive
		}
		parts = append(parts, style.Render(tabNames[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderFilterBar() string {
	community := "all communities"
	if a.communityIdx >= 0 && a.communityIdx < len(a.communities) {
		community = "r/" + a.communities[a.communityIdx]
	}

	keyword := a.filterInput.Value()
	if a.filterFocused {
		return a.styles.Normal.Render("Filter: ") + a.filterInput.View()
	}
	if keyword == "" {
		keyword = "(none)"
	}
	return a.styles.Muted.Render(fmt.Sprintf("Filter: keyword=%s  community=%s  posts=%d", keyword, community, len(a.posts)))
}

func (a *App) renderOverview() string {
	stats := a.services.Analytics.Summary(a.posts)
	rhythm := a.services.Analytics.WeeklyRhythm(a.posts)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Overview"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Total Posts:    %d\n", stats.TotalPosts)
	fmt.Fprintf(&b, "  Unique Authors: %d\n", stats.UniqueAuthors)
	fmt.Fprintf(&b, "  Platforms:      %d\n", stats.Platforms)
	fmt.Fprintf(&b, "  Average Score:  %.2f\n", stats.AvgScore)
	fmt.Fprintf(&b, "  Total Comments: %d\n", stats.TotalComments)
	fmt.Fprintf(&b, "  Date Range:     %s\n", stats.DateRange)
	b.WriteString("\n")
	b.WriteString(a.styles.Subtitle.Render("Weekly Rhythm"))
	b.WriteString("\n")

	maxCount := 0
	for _, row := range rhythm {
		if row.PostCount > maxCount {
			maxCount = row.PostCount
		}
	}
	for _, row := range rhythm {
		fmt.Fprintf(&b, "  %-9s %5d %s\n", row.Day, row.PostCount, a.bar(row.PostCount, maxCount))
	}

	return b.String()
}

func (a *App) renderTrends() string {
	series := a.services.Analytics.TimeSeries(a.posts, domain.BucketDay)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Posts per Day"))
	b.WriteString("\n\n")

	if len(series) == 0 {
		b.WriteString(a.styles.Muted.Render("  No posts match the current filters."))
		return b.String()
	}

	// Keep the series inside the terminal height.
	rows := a.height - 10
	if rows < 5 {
		rows = 5
	}
	if len(series) > rows {
		series = series[len(series)-rows:]
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  (showing last %d days)\n\n", rows)))
	}

	maxCount := 0
	for _, pt := range series {
		if pt.PostCount > maxCount {
			maxCount = pt.PostCount
		}
	}
	for _, pt := range series {
		fmt.Fprintf(&b, "  %s %5d %s\n", pt.Date.Format("2006-01-02"), pt.PostCount, a.bar(pt.PostCount, maxCount))
	}

	return b.String()
}

func (a *App) renderKeywords() string {
	keywords := a.services.Analytics.TopKeywords(a.posts, 15)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Top Keywords"))
	b.WriteString("\n\n")

	if len(keywords) == 0 {
		b.WriteString(a.styles.Muted.Render("  No keywords found."))
		return b.String()
	}

	maxCount := keywords[0].Count
	for i, kw := range keywords {
		fmt.Fprintf(&b, "  [%2d] %-20s %5d %s\n", i+1, kw.Keyword, kw.Count, a.bar(kw.Count, maxCount))
	}

	return b.String()
}

func (a *App) renderContributors() string {
	contributors := a.services.Analytics.TopContributors(a.posts, 15)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Top Contributors"))
	b.WriteString("\n\n")

	if len(contributors) == 0 {
		b.WriteString(a.styles.Muted.Render("  No contributors found."))
		return b.String()
	}

	fmt.Fprintf(&b, "  %-24s %6s %10s %10s %8s\n", "Author", "Posts", "Avg Score", "Comments", "Share")
	for _, c := range contributors {
		fmt.Fprintf(&b, "  %-24s %6d %10.2f %10d %7.2f%%\n",
			c.Author, c.PostCount, c.AvgScore, c.TotalComments, c.Percentage)
	}

	return b.String()
}

func (a *App) renderNetwork() string {
	g := a.services.Analytics.InteractionGraph(a.posts, 15, 10)
	stats := a.services.Analytics.GraphStats(g)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Interaction Network"))
	b.WriteString("\n\n")

	if a.services.Renderer != nil {
		if rendered, err := a.services.Renderer.Render(g); err == nil {
			b.WriteString(rendered)
		}
	}

	b.WriteString(a.styles.Subtitle.Render("Network Statistics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Nodes:                %d\n", stats.Nodes)
	fmt.Fprintf(&b, "  Edges:                %d\n", stats.Edges)
	fmt.Fprintf(&b, "  Density:              %.3f\n", stats.Density)
	fmt.Fprintf(&b, "  Connected Components: %d\n", stats.ConnectedComponents)
	fmt.Fprintf(&b, "  Avg Clustering:       %.3f\n", stats.AvgClustering)

	return b.String()
}

func (a *App) renderChat() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Assistant"))
	b.WriteString("\n\n")

	if a.services.Assistant == nil || !a.services.Assistant.Available() {
		b.WriteString(a.styles.Muted.Render("  No assistant configured. Set GEMINI_API_KEY or run 'threadlens config set-key'."))
		b.WriteString("\n\n")
	}

	if len(a.chatLog) == 0 && len(a.suggestions) > 0 {
		b.WriteString(a.styles.Muted.Render("  Suggested questions:"))
		b.WriteString("\n")
		for _, q := range a.suggestions {
			fmt.Fprintf(&b, "    - %s\n", q)
		}
		b.WriteString("\n")
	}

	for _, line := range a.chatLog {
		switch {
		case strings.HasPrefix(line, "you: "):
			b.WriteString(a.styles.Subtitle.Render("you") + a.styles.Normal.Render(strings.TrimPrefix(line, "you")))
		case strings.HasPrefix(line, "error: "):
			b.WriteString(a.styles.Error.Render(line))
		default:
			b.WriteString(a.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if a.thinking {
		b.WriteString(a.styles.Muted.Render("  thinking..."))
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(a.chatInput.View())

	return b.String()
}

func (a *App) renderHelp() string {
	return a.styles.Help.Render(
		"tab/shift+tab switch panel - f filter - c cycle community - x clear filters - r reload - enter chat input - q quit")
}

func (a *App) renderStatusBar() string {
	status := fmt.Sprintf("%d posts - %s - ? for help", len(a.posts), tabNames[a.activeTab])
	if a.err != nil {
		status += " - " + a.styles.Error.Render(a.err.Error())
	}
	return a.styles.StatusBar.Render(status)
}

// bar draws a proportional histogram bar, capped to the panel width.
func (a *App) bar(count, maxCount int) string {
	const width = 30
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}
	return a.styles.Bar.Render(strings.Repeat("█", n))
}
