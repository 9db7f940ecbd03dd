package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/threadkit/internal/action"
	"github.com/alexisbeaulieu97/threadkit/internal/logger"
	"github.com/alexisbeaulieu97/threadkit/internal/post"
	"github.com/alexisbeaulieu97/threadkit/internal/ui"
)

// RoutePostThread is the navigation target for a tapped post.
const RoutePostThread = "PostThread"

const (
	replyBarGlyph   = "┃"
	controlWidth    = 8
	glyphReply      = "↩"
	glyphRepost     = "⟲"
	glyphLike       = "♥"
	glyphShare      = "⇪"
	metaSeparator   = "·"
	summaryItemsGap = "   "
)

// NavParams identifies the post to navigate to.
type NavParams struct {
	Name      string
	RecordKey string
}

// Navigator is the host's navigation callback.
type Navigator func(route string, params NavParams)

// PostItem renders one post of a thread: reply bars for its depth, the
// author line, the body, an engagement summary for the focal post and the
// action row. Tapping it navigates to the post's own thread.
type PostItem struct {
	BaseComponent
	post     post.Post
	nav      Navigator
	selected bool
	log      *logger.Logger
}

// NewPostItem creates an item for p that reports taps to nav.
func NewPostItem(p post.Post, nav Navigator) *PostItem {
	return &PostItem{
		BaseComponent: NewBaseComponent(),
		post:          p,
		nav:           nav,
	}
}

// WithSelected highlights the item as the cursor position.
func (i *PostItem) WithSelected(selected bool) *PostItem {
	i.selected = selected
	return i
}

// WithLogger attaches a logger for navigation entries.
func (i *PostItem) WithLogger(log *logger.Logger) *PostItem {
	i.log = log.WithFields(map[string]any{"component": "post_item", "uri": i.post.URI})
	return i
}

// Post returns the rendered view-model.
func (i *PostItem) Post() post.Post {
	return i.post
}

// Activate handles a tap on the item. The event is suppressed so it does not
// reach the action row. The post URI must be well formed: a parse failure is
// returned and no navigation happens.
func (i *PostItem) Activate(ev *action.Event) error {
	ev.Suppress()

	recordKey, err := i.post.RecordKey()
	if err != nil {
		i.log.Error(err, "post uri has no record key")
		return fmt.Errorf("navigate to post: %w", err)
	}

	params := NavParams{Name: i.post.Author.Handle, RecordKey: recordKey}
	if i.nav != nil {
		i.nav(RoutePostThread, params)
	}
	i.log.With("record_key", recordKey).Debug("navigated to post thread")
	return nil
}

// View renders the item with the default context.
func (i *PostItem) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the item. The output depends only on the post and
// ctx; relative times are measured from ctx.Now.
func (i *PostItem) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	content := VStack(
		staticView(i.metaLine(ctx)),
		staticView(i.body(ctx)),
		staticView(i.summary(ctx)),
		staticView(i.controls(ctx)),
	).ViewWithContext(ctx)

	row := content
	if bars := replyBars(i.post.Indent(), lipgloss.Height(content), theme); bars != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, bars, content)
	}

	border := theme.Borders.Normal
	borderColor := theme.Palette.Default.Border
	if i.selected {
		border = theme.Borders.Thick
		borderColor = theme.Palette.Primary.Border
	}
	outer := lipgloss.NewStyle().
		Border(border, true, false, false, false).
		BorderForeground(borderColor).
		PaddingLeft(1)

	return overlay(outer, i.ComputeStyle(theme)).Render(row)
}

func (i *PostItem) metaLine(ctx RenderContext) string {
	theme := ctx.Theme
	author := i.post.Author

	parts := make([]string, 0, 4)
	if author.DisplayName != "" {
		parts = append(parts, theme.Typography.Strong.Render(author.DisplayName))
	}
	parts = append(parts,
		theme.Typography.Muted.Render("@"+author.Handle),
		theme.Typography.Muted.Render(metaSeparator+" "+ctx.Format.Since(i.post.IndexedAt, ctx.now())),
	)
	return strings.Join(parts, " ")
}

func (i *PostItem) body(ctx RenderContext) string {
	style := ctx.Theme.Typography.Body
	if i.post.IsFocal {
		style = ctx.Theme.Typography.Emphasis
	}
	if width := ctx.Constraints.MaxWidth - 2*i.post.Indent() - 1; ctx.Constraints.MaxWidth > 0 && width > 0 {
		style = style.Width(width)
	}
	return style.Render(i.post.Record.Text)
}

// summary renders the engagement counts of the focal post. It is empty,
// and skipped by the layout, unless the post is focal and engaged; within
// it each count appears only when non-zero.
func (i *PostItem) summary(ctx RenderContext) string {
	if !i.post.ShowsEngagement() {
		return ""
	}

	items := make([]ui.Renderable, 0, 2)
	for _, entry := range []struct {
		count int
		noun  string
	}{
		{i.post.RepostCount, "repost"},
		{i.post.LikeCount, "like"},
	} {
		if entry.count == 0 {
			continue
		}
		items = append(items, staticView(
			StrongLabel(strconv.Itoa(entry.count)).ViewWithContext(ctx)+" "+
				MutedLabel(ctx.Format.Plural(entry.count, entry.noun)).ViewWithContext(ctx),
		))
	}

	return HStack(items...).
		WithGap(len(summaryItemsGap)).
		WithStyle(lipgloss.NewStyle().
			Border(ctx.Theme.Borders.Normal, true, false, true, false).
			BorderForeground(ctx.Theme.Palette.Default.Border).
			Padding(0, 1)).
		ViewWithContext(ctx)
}

func (i *PostItem) controls(ctx RenderContext) string {
	cell := lipgloss.NewStyle().Width(controlWidth).Inherit(ctx.Theme.Typography.Muted)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell.Render(glyphReply+" "+strconv.Itoa(i.post.ReplyCount)),
		cell.Render(glyphRepost+" "+strconv.Itoa(i.post.RepostCount)),
		cell.Render(glyphLike+" "+strconv.Itoa(i.post.LikeCount)),
		cell.Render(glyphShare),
	)
}

// replyBars renders n vertical bars of the given height.
func replyBars(n, height int, theme Theme) string {
	if n <= 0 {
		return ""
	}
	if height < 1 {
		height = 1
	}
	column := strings.TrimSuffix(strings.Repeat(replyBarGlyph+"\n", height), "\n")
	bar := lipgloss.NewStyle().Foreground(theme.Muted).MarginRight(1).Render(column)

	bars := make([]string, n)
	for k := range bars {
		bars[k] = bar
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, bars...)
}
