// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/models"
)

type mainMode int

const (
	modeList mainMode = iota
	modeDetail
	modePostForm
	modeCommentForm
	modeConfirmDeletePost
	modeConfirmDeleteComment
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.UserInfo
	guest    bool

	mode mainMode

	posts   []models.Post
	idx     int
	loading bool
	status  string
	errMsg  string

	post       models.Post
	comments   []models.Comment
	commentIdx int

	titleInput  textinput.Model
	contentArea textarea.Model
	formFocus   int
	editingPost bool
	formSaving  bool

	commentArea    textarea.Model
	editingComment bool
	editCommentID  int64
	commentSaving  bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.UserInfo, guest bool) mainLoopModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 200
	titleInput.Width = 60

	contentArea := textarea.New()
	contentArea.Placeholder = "write your post..."
	contentArea.SetWidth(60)
	contentArea.SetHeight(8)

	commentArea := textarea.New()
	commentArea.Placeholder = "write a comment..."
	commentArea.SetWidth(60)
	commentArea.SetHeight(4)

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		guest:       guest,
		loading:     true,
		titleInput:  titleInput,
		contentArea: contentArea,
		commentArea: commentArea,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadFeed()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.posts = msg.posts
		if m.idx >= len(m.posts) {
			m.idx = len(m.posts) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case postOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.mode = modeList
			return m, nil
		}
		m.errMsg = ""
		m.post = msg.post
		m.comments = msg.comments
		m.commentIdx = 0
		m.mode = modeDetail
		return m, nil

	case postSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		if m.editingPost {
			m.status = "post updated (back to draft)"
		} else {
			m.status = "draft created"
		}
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadFeed()

	case publishToggledMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.post = msg.post
		m.status = "post is now " + postStateLabel(msg.post.Published)
		return m, nil

	case postDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.mode = modeDetail
			return m, nil
		}
		m.errMsg = ""
		m.status = "post deleted"
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadFeed()

	case commentSavedMsg:
		m.commentSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		if m.editingComment {
			m.status = "comment updated"
		} else {
			m.status = "comment added"
		}
		m.mode = modeDetail
		m.loading = true
		return m, m.cmdOpenPost(m.post.ID)

	case commentDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.mode = modeDetail
			return m, nil
		}
		m.errMsg = ""
		m.status = "comment deleted"
		m.mode = modeDetail
		m.loading = true
		return m, m.cmdOpenPost(m.post.ID)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "post content copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateForms(msg)
	}

	// Forms own the keyboard while open.
	switch m.mode {
	case modePostForm:
		return m.updatePostForm(keyMsg)
	case modeCommentForm:
		return m.updateCommentForm(keyMsg)
	case modeConfirmDeletePost:
		return m.updateConfirmDeletePost(keyMsg)
	case modeConfirmDeleteComment:
		return m.updateConfirmDeleteComment(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.posts)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.status = ""
		m.loading = true
		return m, m.cmdLoadFeed()
	case key.Matches(keyMsg, keys.newPost):
		if !m.canWritePosts() {
			m.errMsg = "log in with an AUTHOR account to write posts"
			return m, nil
		}
		m.openPostForm(models.Post{})
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.enter):
		if len(m.posts) == 0 {
			return m, nil
		}
		m.status = ""
		m.loading = true
		return m, m.cmdOpenPost(m.posts[m.idx].ID)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeList
		m.status = ""
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.commentIdx > 0 {
			m.commentIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.commentIdx < len(m.comments)-1 {
			m.commentIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyContent()
	case key.Matches(keyMsg, keys.comment):
		if m.guest {
			m.errMsg = "log in to comment"
			return m, nil
		}
		m.editingComment = false
		m.commentArea.SetValue("")
		m.commentArea.Focus()
		m.mode = modeCommentForm
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.edit):
		if !m.ownsPost() {
			m.errMsg = "only the author can edit this post"
			return m, nil
		}
		m.openPostForm(m.post)
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.publish):
		if !m.ownsPost() {
			m.errMsg = "only the author can publish this post"
			return m, nil
		}
		return m, m.cmdTogglePublish(m.post.ID)
	case key.Matches(keyMsg, keys.delete):
		if !m.ownsPost() {
			m.errMsg = "only the author can delete this post"
			return m, nil
		}
		m.mode = modeConfirmDeletePost
		return m, nil
	case keyMsg.String() == "u":
		comment, ok := m.currentComment()
		if !ok {
			return m, nil
		}
		if !m.ownsComment(comment) {
			m.errMsg = "only the comment owner can edit it"
			return m, nil
		}
		m.editingComment = true
		m.editCommentID = comment.ID
		m.commentArea.SetValue(comment.Content)
		m.commentArea.Focus()
		m.mode = modeCommentForm
		return m, textarea.Blink
	case keyMsg.String() == "x":
		comment, ok := m.currentComment()
		if !ok {
			return m, nil
		}
		if !m.ownsComment(comment) {
			m.errMsg = "only the comment owner can delete it"
			return m, nil
		}
		m.editCommentID = comment.ID
		m.mode = modeConfirmDeleteComment
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updatePostForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
		if m.editingPost {
			m.mode = modeDetail
		}
		m.errMsg = ""
		return m, nil
	case "tab", "shift+tab":
		if m.formFocus == 0 {
			m.formFocus = 1
			m.titleInput.Blur()
			m.contentArea.Focus()
		} else {
			m.formFocus = 0
			m.contentArea.Blur()
			m.titleInput.Focus()
		}
		return m, nil
	case "ctrl+s":
		if m.formSaving {
			return m, nil
		}

		title := strings.TrimSpace(m.titleInput.Value())
		content := strings.TrimSpace(m.contentArea.Value())
		if !m.editingPost && (title == "" || content == "") {
			m.errMsg = "title and content are required"
			return m, nil
		}
		if m.editingPost && title == "" && content == "" {
			m.errMsg = "nothing to save"
			return m, nil
		}

		m.errMsg = ""
		m.formSaving = true
		return m, m.cmdSavePost(title, content)
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(keyMsg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(keyMsg)
	}
	return m, cmd
}

func (m mainLoopModel) updateCommentForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeDetail
		m.errMsg = ""
		return m, nil
	case "ctrl+s":
		if m.commentSaving {
			return m, nil
		}

		content := strings.TrimSpace(m.commentArea.Value())
		if content == "" {
			m.errMsg = "comment content is required"
			return m, nil
		}

		m.errMsg = ""
		m.commentSaving = true
		return m, m.cmdSaveComment(content)
	}

	var cmd tea.Cmd
	m.commentArea, cmd = m.commentArea.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateConfirmDeletePost(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		return m, m.cmdDeletePost(m.post.ID)
	case "n", "esc":
		m.mode = modeDetail
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDeleteComment(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		return m, m.cmdDeleteComment(m.editCommentID)
	case "n", "esc":
		m.mode = modeDetail
	}
	return m, nil
}

// updateForms forwards non-key messages (cursor blink ticks) to whichever
// input widget is active.
func (m mainLoopModel) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modePostForm:
		if m.formFocus == 0 {
			m.titleInput, cmd = m.titleInput.Update(msg)
		} else {
			m.contentArea, cmd = m.contentArea.Update(msg)
		}
	case modeCommentForm:
		m.commentArea, cmd = m.commentArea.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) openPostForm(post models.Post) {
	m.editingPost = post.ID != 0
	m.post = post
	m.titleInput.SetValue(post.Title)
	m.contentArea.SetValue(post.Content)
	m.formFocus = 0
	m.titleInput.Focus()
	m.contentArea.Blur()
	m.errMsg = ""
	m.status = ""
	m.mode = modePostForm
}

func (m mainLoopModel) canWritePosts() bool {
	return !m.guest && m.user.Role == models.RoleAuthor
}

func (m mainLoopModel) ownsPost() bool {
	return m.canWritePosts() && m.post.AuthorID == m.user.ID
}

func (m mainLoopModel) ownsComment(comment models.Comment) bool {
	return !m.guest && comment.AuthorID == m.user.ID
}

func (m mainLoopModel) currentComment() (models.Comment, bool) {
	if len(m.comments) == 0 || m.commentIdx < 0 || m.commentIdx >= len(m.comments) {
		return models.Comment{}, false
	}
	return m.comments[m.commentIdx], true
}

// ── commands ────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService

	return func() tea.Msg {
		posts, err := blog.Feed(ctx)
		return feedLoadedMsg{posts: posts, err: err}
	}
}

func (m mainLoopModel) cmdOpenPost(postID int64) tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService

	return func() tea.Msg {
		post, err := blog.GetPost(ctx, postID)
		if err != nil {
			return postOpenedMsg{err: err}
		}

		comments, err := blog.ListComments(ctx, postID)
		if err != nil {
			return postOpenedMsg{err: err}
		}

		return postOpenedMsg{post: post, comments: comments}
	}
}

func (m mainLoopModel) cmdSavePost(title, content string) tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService
	editing := m.editingPost
	postID := m.post.ID

	return func() tea.Msg {
		if editing {
			post, err := blog.EditPost(ctx, postID, title, content)
			return postSavedMsg{post: post, err: err}
		}

		post, err := blog.CreateDraft(ctx, title, content)
		return postSavedMsg{post: post, err: err}
	}
}

func (m mainLoopModel) cmdTogglePublish(postID int64) tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService

	return func() tea.Msg {
		post, err := blog.TogglePublish(ctx, postID)
		return publishToggledMsg{post: post, err: err}
	}
}

func (m mainLoopModel) cmdDeletePost(postID int64) tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService

	return func() tea.Msg {
		return postDeletedMsg{err: blog.DeletePost(ctx, postID)}
	}
}

func (m mainLoopModel) cmdSaveComment(content string) tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService
	editing := m.editingComment
	commentID := m.editCommentID
	postID := m.post.ID

	return func() tea.Msg {
		if editing {
			_, err := blog.EditComment(ctx, commentID, content)
			return commentSavedMsg{err: err}
		}

		_, err := blog.AddComment(ctx, postID, content)
		return commentSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteComment(commentID int64) tea.Cmd {
	ctx := m.ctx
	blog := m.services.BlogService

	return func() tea.Msg {
		return commentDeletedMsg{err: blog.DeleteComment(ctx, commentID)}
	}
}

func (m mainLoopModel) cmdCopyContent() tea.Cmd {
	content := m.post.Content

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(content)}
	}
}

// ── views ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modePostForm:
		return m.viewPostForm()
	case modeCommentForm:
		return m.viewCommentForm()
	case modeConfirmDeletePost:
		return renderPage("DELETE POST",
			fmt.Sprintf("Delete %q and all of its comments?", m.post.Title),
			"y: delete │ n: cancel")
	case modeConfirmDeleteComment:
		return renderPage("DELETE COMMENT", "Delete this comment?", "y: delete │ n: cancel")
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.posts) == 0 {
		b.WriteString("No published posts yet\n")
	} else {
		for i, post := range m.posts {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s — %s (%s)\n",
				cursor,
				fitText(post.Title, 40),
				authorName(post.Author, post.AuthorID),
				post.CreatedAt.Format("2006-01-02"),
			))
		}
	}

	m.appendStatus(&b)

	hotKeys := "enter: open │ r: refresh │ l: logout │ q: quit"
	if m.canWritePosts() {
		hotKeys = "enter: open │ n: new post │ r: refresh │ l: logout │ q: quit"
	}

	return renderPage(m.headerTitle(), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder

	state := draftStyle.Render("[" + postStateLabel(m.post.Published) + "]")
	if m.post.Published {
		state = publishedStyle.Render("[" + postStateLabel(m.post.Published) + "]")
	}

	b.WriteString(fmt.Sprintf("%s %s\n", m.post.Title, state))
	b.WriteString(fmt.Sprintf("by %s on %s\n\n",
		authorName(m.post.Author, m.post.AuthorID),
		m.post.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(m.post.Content)
	b.WriteString("\n\n")

	b.WriteString(formatCount(len(m.comments), "comment", "comments"))
	b.WriteString("\n")
	for i, comment := range m.comments {
		cursor := "  "
		if i == m.commentIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n",
			cursor,
			authorName(comment.Author, comment.AuthorID),
			fitText(firstLine(comment.Content), 60),
		))
	}

	m.appendStatus(&b)

	hotKeys := "a: comment │ c: copy │ esc: back"
	if m.ownsPost() {
		hotKeys = "e: edit │ p: publish/unpublish │ d: delete │ a: comment │ c: copy │ esc: back"
	}
	if len(m.comments) > 0 && !m.guest {
		hotKeys += " │ u: edit comment │ x: delete comment"
	}

	return renderPage("POST", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewPostForm() string {
	var b strings.Builder

	b.WriteString("Title   [")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n\n")
	b.WriteString("Content\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n")

	if m.formSaving {
		b.WriteString("\n[Saving...]\n")
	}

	m.appendStatus(&b)

	title := "NEW POST"
	if m.editingPost {
		title = "EDIT POST"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"ctrl+s: save │ tab: switch field │ esc: cancel")
}

func (m mainLoopModel) viewCommentForm() string {
	var b strings.Builder

	b.WriteString("Commenting on: ")
	b.WriteString(fitText(m.post.Title, 50))
	b.WriteString("\n\n")
	b.WriteString(m.commentArea.View())
	b.WriteString("\n")

	if m.commentSaving {
		b.WriteString("\n[Saving...]\n")
	}

	m.appendStatus(&b)

	title := "NEW COMMENT"
	if m.editingComment {
		title = "EDIT COMMENT"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")
}

func (m mainLoopModel) headerTitle() string {
	if m.guest {
		return "FEED (guest)"
	}
	return fmt.Sprintf("FEED (%s, %s)", m.user.Username, m.user.Role)
}

func (m mainLoopModel) appendStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
}
