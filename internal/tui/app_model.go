package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/service"
	"github.com/MKhiriev/go-photo-annotator/internal/session"
	"github.com/MKhiriev/go-photo-annotator/internal/store"
	"github.com/MKhiriev/go-photo-annotator/models"
)

type appMode int

const (
	modeBrowse appMode = iota
	modePicker
	modeSavePrompt
	modeConfirmQuit
	modeBuildInfo
)

const statusTTL = 3 * time.Second

// options are the configuration values the controller needs.
type options struct {
	startDir            string
	defaultDocumentName string
	backupInterval      time.Duration
	backupEnabled       bool
}

// appModel is the controller. It owns the session and is the only place
// the session is mutated. Folder and document I/O run as commands that
// report back with a ...Msg; busy keeps at most one of them in flight.
type appModel struct {
	ctx       context.Context
	services  *service.Services
	opts      options
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	session *session.Session
	views   []recordView
	current int
	field   models.Field

	mode       appMode
	pickerKind pickerKind
	picker     filepicker.Model
	savePath   textinput.Model
	confirm    confirmModel

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	busy         bool
	status       string
	showError    bool
	errorOverlay errorOverlayModel

	lastFolder   string
	lastDocument string
	backedUp     uint64

	width  int
	height int
}

func newAppModel(ctx context.Context, services *service.Services, opts options, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	savePath := textinput.New()
	savePath.Prompt = "> "
	savePath.CharLimit = 0
	savePath.Width = defaultRecordWidth

	m := appModel{
		ctx:       ctx,
		services:  services,
		opts:      opts,
		buildInfo: buildInfo,
		logger:    log,
		session:   session.New(),
		field:     models.FieldHeadline,
		savePath:  savePath,
		viewport:  viewport.New(defaultRecordWidth, 20),
		help:      help.New(),
		keys:      newKeyMap(),
	}
	m.refreshKeys()
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdLoadHistory()}
	if m.opts.backupEnabled {
		cmds = append(cmds, cmdBackupTick(m.opts.backupInterval))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncViews()
	m.refreshKeys()
	m.refreshViewport()
	return m, cmd
}

func (m appModel) update(msg tea.Msg) (appModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		for i := range m.views {
			m.views[i].SetWidth(m.recordWidth())
		}
		m.savePath.Width = m.recordWidth()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case historyLoadedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, store.ErrNoHistory) {
				m.logger.Err(msg.err).Str("func", "appModel.update").Msg("failed to load history")
			}
			return m, nil
		}
		m.lastFolder = msg.entry.Folder
		return m, nil

	case folderLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.session.SetPictures(msg.folder, msg.pictures)
		m.lastFolder = msg.folder
		m.lastDocument = msg.lastDocument
		m.views = make([]recordView, 0, len(msg.pictures))
		for _, p := range msg.pictures {
			m.views = append(m.views, newRecordView(p, m.recordWidth()))
		}
		m.current = 0
		m.status = fmt.Sprintf("Loaded %d pictures from %s", len(msg.pictures), msg.folder)
		cmd := m.focus(0, models.FieldHeadline)
		return m, cmd

	case documentLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.session.Replace(msg.metadata, msg.path)
		m.lastDocument = msg.path
		m.status = fmt.Sprintf("Loaded %d records from %s", len(msg.metadata), filepath.Base(msg.path))
		if orphans := len(m.session.Orphans()); orphans > 0 {
			m.status += fmt.Sprintf(" (%d without a picture in this folder)", orphans)
		}
		return m, nil

	case documentSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.session.SetDocument(msg.path)
		m.lastDocument = msg.path
		m.status = "Saved to " + msg.path
		return m, nil

	case backupTickMsg:
		cmds := []tea.Cmd{cmdBackupTick(m.opts.backupInterval)}
		if m.needsBackup() {
			cmds = append(cmds, m.cmdBackup())
		}
		return m, tea.Batch(cmds...)

	case backupDoneMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.update").Msg("recovery backup failed")
			return m, nil
		}
		m.backedUp = max(m.backedUp, msg.version)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.update").Msg("clipboard write failed")
			m.status = "Could not copy to clipboard"
			return m, cmdClearStatus()
		}
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	// Non-key messages: directory listings for the picker, cursor blinks
	// for the focused input.
	if m.mode == modePicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m.updateFocused(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, m.keys.enter) || key.Matches(msg, m.keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.quit) {
		if m.mode == modeConfirmQuit || !m.session.Dirty() {
			return m, tea.Quit
		}
		m.mode = modeConfirmQuit
		m.confirm = confirmModel{message: "There are unsaved changes. Quit anyway?"}
		return m, nil
	}

	switch m.mode {
	case modeConfirmQuit:
		if key.Matches(msg, m.keys.yes) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.no) || key.Matches(msg, m.keys.esc) {
			m.mode = modeBrowse
		}
		return m, nil
	case modeBuildInfo:
		if key.Matches(msg, m.keys.esc) || key.Matches(msg, m.keys.buildInfo) {
			m.mode = modeBrowse
		}
		return m, nil
	case modePicker:
		return m.updatePicker(msg)
	case modeSavePrompt:
		return m.updateSavePrompt(msg)
	}

	switch {
	case key.Matches(msg, m.keys.loadFolder):
		return m.openPicker(pickFolder, m.folderPickerStart())
	case key.Matches(msg, m.keys.loadDocument):
		return m.openPicker(pickDocument, m.documentPickerStart())
	case key.Matches(msg, m.keys.save):
		return m.openSavePrompt()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.buildInfo):
		m.mode = modeBuildInfo
		return m, nil
	case key.Matches(msg, m.keys.copy):
		if len(m.views) == 0 {
			return m, nil
		}
		text := m.views[m.current].Value(m.field)
		if text == "" {
			m.status = "Nothing to copy"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(msg, m.keys.nextField):
		cmd := m.moveFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.prevField):
		cmd := m.moveFocus(-1)
		return m, cmd
	case key.Matches(msg, m.keys.nextPicture):
		cmd := m.focus(m.current+1, m.field)
		return m, cmd
	case key.Matches(msg, m.keys.prevPicture):
		cmd := m.focus(m.current-1, m.field)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused record view, which writes any
// edit through to the session.
func (m appModel) updateFocused(msg tea.Msg) (appModel, tea.Cmd) {
	if len(m.views) == 0 {
		return m, nil
	}

	view, cmd, err := m.views[m.current].Update(msg, m.session)
	m.views[m.current] = view
	if err != nil {
		m.logger.Err(err).Str("func", "appModel.updateFocused").Str("picture", view.name()).Msg("failed to update record")
		return m.fail(err), cmd
	}
	return m, cmd
}

// ── pickers ──────────────────────────────────────────────────────────────────

func (m appModel) openPicker(kind pickerKind, start string) (appModel, tea.Cmd) {
	if m.busy {
		m.status = "Please wait for the current operation to finish"
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = newPicker(kind, start, m.height)
	m.pickerKind = kind
	m.mode = modePicker
	return m, cmd
}

func (m appModel) updatePicker(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// esc is also the picker's own "back" key; here it cancels.
	if key.Matches(msg, m.keys.esc) {
		m.mode = modeBrowse
		return m, cmdCanceled(m.pickerKind)
	}

	if m.pickerKind == pickFolder {
		if key.Matches(msg, m.keys.pickerCwd) {
			return m.choose(m.picker.CurrentDirectory)
		}

		// Selecting a directory also navigates into it, so the entry list
		// is stale afterwards; the chosen path is what changed.
		before := m.picker.Path
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if m.picker.Path != "" && m.picker.Path != before {
			return m.choose(m.picker.Path)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.choose(path)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.status = filepath.Base(path) + " is not a .json document"
	}
	return m, cmd
}

func (m appModel) choose(path string) (appModel, tea.Cmd) {
	m.mode = modeBrowse
	m.busy = true
	m.status = ""

	if m.pickerKind == pickFolder {
		return m, m.cmdLoadFolder(path)
	}
	return m, m.cmdLoadDocument(path)
}

func (m appModel) folderPickerStart() string {
	if m.lastFolder != "" {
		return filepath.Dir(m.lastFolder)
	}
	return m.opts.startDir
}

func (m appModel) documentPickerStart() string {
	if m.lastDocument != "" {
		return m.lastDocument
	}
	return m.session.Folder()
}

// ── save ─────────────────────────────────────────────────────────────────────

func (m appModel) openSavePrompt() (appModel, tea.Cmd) {
	if m.busy {
		m.status = "Please wait for the current operation to finish"
		return m, nil
	}

	m.savePath.SetValue(m.defaultSavePath())
	m.savePath.CursorEnd()
	m.mode = modeSavePrompt
	cmd := m.savePath.Focus()
	return m, cmd
}

func (m appModel) defaultSavePath() string {
	switch {
	case m.session.Document() != "":
		return m.session.Document()
	case m.lastDocument != "":
		return m.lastDocument
	default:
		return filepath.Join(m.session.Folder(), m.opts.defaultDocumentName)
	}
}

func (m appModel) updateSavePrompt(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.esc):
		m.savePath.Blur()
		m.mode = modeBrowse
		return m, func() tea.Msg { return documentSavedMsg{err: adapter.ErrCanceled} }
	case key.Matches(msg, m.keys.enter):
		path := strings.TrimSpace(m.savePath.Value())
		if path == "" {
			m.status = "Enter a file name"
			return m, nil
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.session.Folder(), path)
		}
		m.savePath.Blur()
		m.mode = modeBrowse
		m.busy = true
		m.status = ""
		return m, m.cmdSave(path)
	}

	var cmd tea.Cmd
	m.savePath, cmd = m.savePath.Update(msg)
	return m, cmd
}

// ── focus ────────────────────────────────────────────────────────────────────

// focus moves the focus to field of the picture at index, clamped to the
// picture list.
func (m *appModel) focus(index int, field models.Field) tea.Cmd {
	if len(m.views) == 0 {
		return nil
	}
	index = max(0, min(index, len(m.views)-1))

	m.views[m.current].Blur()
	m.current = index
	m.field = field
	return m.views[index].Focus(field)
}

// moveFocus steps through headline and description of every picture,
// wrapping around at both ends.
func (m *appModel) moveFocus(delta int) tea.Cmd {
	if len(m.views) == 0 {
		return nil
	}

	pos := m.current * len(models.Fields)
	for i, f := range models.Fields {
		if f == m.field {
			pos += i
		}
	}
	total := len(m.views) * len(models.Fields)
	pos = ((pos+delta)%total + total) % total

	return m.focus(pos/len(models.Fields), models.Fields[pos%len(models.Fields)])
}

// ── refresh ──────────────────────────────────────────────────────────────────

// syncViews lets every view pick up upstream changes such as a document
// load.
func (m *appModel) syncViews() {
	for i := range m.views {
		m.views[i].Sync(m.session)
	}
}

func (m *appModel) refreshKeys() {
	m.keys.loadFolder.SetEnabled(!m.session.HasPictures())
	m.keys.loadDocument.SetEnabled(m.session.HasPictures())
	m.keys.save.SetEnabled(m.session.Dirty())
	hasViews := len(m.views) > 0
	m.keys.nextField.SetEnabled(hasViews)
	m.keys.prevField.SetEnabled(hasViews)
	m.keys.nextPicture.SetEnabled(hasViews)
	m.keys.prevPicture.SetEnabled(hasViews)
	m.keys.copy.SetEnabled(hasViews)
}

func (m *appModel) refreshViewport() {
	if m.width > 0 {
		m.viewport.Width = m.width - appStyle.GetHorizontalFrameSize()
	}
	if m.height > 0 {
		m.viewport.Height = max(1, m.height-appStyle.GetVerticalFrameSize()-lipgloss.Height(m.headerView())-lipgloss.Height(m.footerView()))
	}

	parts := make([]string, 0, len(m.views))
	top, bottom := 0, 0
	line := 0
	for i, v := range m.views {
		rendered := v.View()
		h := lipgloss.Height(rendered)
		if i == m.current {
			top, bottom = line, line+h
		}
		parts = append(parts, rendered)
		line += h + 1
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))

	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m appModel) recordWidth() int {
	if m.width <= 0 {
		return defaultRecordWidth
	}
	return max(20, m.width-appStyle.GetHorizontalFrameSize()-2)
}

func (m appModel) fail(err error) appModel {
	if isCancel(err) {
		return m
	}
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m appModel) needsBackup() bool {
	return !m.busy &&
		m.session.FolderLoaded() &&
		m.session.Dirty() &&
		m.session.Version() != m.backedUp
}

// ── views ────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	var screen string
	switch m.mode {
	case modeBuildInfo:
		screen = renderBuildInfoWindow(m.buildInfo)
	case modePicker:
		screen = m.pickerView()
	case modeSavePrompt:
		screen = renderPage("SAVE METADATA", "Save to:\n"+m.savePath.View(), "enter: save  esc: cancel")
	default:
		screen = m.headerView() + "\n" + m.bodyView() + "\n" + m.footerView()
	}

	var overlay string
	switch {
	case m.showError:
		overlay = m.errorOverlay.View()
	case m.mode == modeConfirmQuit:
		overlay = m.confirm.View()
	}
	if overlay != "" && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	if overlay != "" {
		screen = overlay
	}

	return appStyle.Render(screen)
}

func (m appModel) headerView() string {
	parts := []string{titleStyle.Render("photo-annotator")}
	if f := m.session.Folder(); f != "" {
		parts = append(parts, fitText(f, 60))
	}
	if d := m.session.Document(); d != "" {
		parts = append(parts, filepath.Base(d))
	}
	if m.session.Dirty() {
		parts = append(parts, dirtyStyle.Render("● unsaved"))
	}
	return strings.Join(parts, "  |  ")
}

func (m appModel) bodyView() string {
	if !m.session.FolderLoaded() {
		return "\nNo folder loaded. Press ctrl+o to choose a picture folder.\n"
	}
	if len(m.views) == 0 {
		return "\nThis folder has no pictures. Press ctrl+o to choose another folder.\n"
	}
	return m.viewport.View()
}

func (m appModel) footerView() string {
	status := m.status
	if m.busy {
		status = "Working..."
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m appModel) pickerView() string {
	title := "CHOOSE A PICTURE FOLDER"
	hints := "→ open  enter: choose  ctrl+o: choose current folder  esc: cancel"
	if m.pickerKind == pickDocument {
		title = "CHOOSE A METADATA DOCUMENT"
		hints = "→ open  enter: choose  esc: cancel"
	}

	body := m.picker.CurrentDirectory + "\n\n" + m.picker.View()
	if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}
	return renderPage(title, body, hints)
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		entry, err := svc.Last(ctx)
		return historyLoadedMsg{entry: entry, err: err}
	}
}

func (m appModel) cmdLoadFolder(path string) tea.Cmd {
	ctx := m.ctx
	pictures := m.services.PictureService
	history := m.services.HistoryService
	log := m.logger
	return func() tea.Msg {
		folder, err := pictures.Open(ctx, path)
		if err != nil {
			return folderLoadedMsg{err: err}
		}

		list, err := pictures.Load(ctx, folder)
		if err != nil {
			return folderLoadedMsg{err: err}
		}

		if err = history.RecordFolder(ctx, folder.Path()); err != nil {
			log.Warn().Err(err).Str("func", "appModel.cmdLoadFolder").Msg("history not updated")
		}
		lastDocument, err := history.LastDocument(ctx, folder.Path())
		if err != nil {
			log.Warn().Err(err).Str("func", "appModel.cmdLoadFolder").Msg("history not available")
		}

		return folderLoadedMsg{folder: folder.Path(), pictures: list, lastDocument: lastDocument}
	}
}

func (m appModel) cmdLoadDocument(path string) tea.Cmd {
	ctx := m.ctx
	documents := m.services.DocumentService
	history := m.services.HistoryService
	folder := m.session.Folder()
	log := m.logger
	return func() tea.Msg {
		metadata, err := documents.Load(ctx, path)
		if err != nil {
			return documentLoadedMsg{err: err}
		}

		if err = history.RecordDocument(ctx, folder, path); err != nil {
			log.Warn().Err(err).Str("func", "appModel.cmdLoadDocument").Msg("history not updated")
		}
		return documentLoadedMsg{path: path, metadata: metadata}
	}
}

func (m appModel) cmdSave(path string) tea.Cmd {
	ctx := m.ctx
	documents := m.services.DocumentService
	history := m.services.HistoryService
	folder := m.session.Folder()
	snapshot := m.session.Snapshot()
	log := m.logger
	return func() tea.Msg {
		written, err := documents.Save(ctx, path, snapshot)
		if err != nil {
			return documentSavedMsg{err: err}
		}

		if err = history.RecordDocument(ctx, folder, written); err != nil {
			log.Warn().Err(err).Str("func", "appModel.cmdSave").Msg("history not updated")
		}
		return documentSavedMsg{path: written}
	}
}

func (m appModel) cmdBackup() tea.Cmd {
	ctx := m.ctx
	documents := m.services.DocumentService
	folder := m.session.Folder()
	snapshot := m.session.Snapshot()
	version := m.session.Version()
	return func() tea.Msg {
		path, err := documents.Backup(ctx, folder, snapshot)
		return backupDoneMsg{path: path, version: version, err: err}
	}
}

// cmdCanceled resolves a dismissed picker like any other load, with
// adapter.ErrCanceled as its result.
func cmdCanceled(kind pickerKind) tea.Cmd {
	return func() tea.Msg {
		if kind == pickFolder {
			return folderLoadedMsg{err: adapter.ErrCanceled}
		}
		return documentLoadedMsg{err: adapter.ErrCanceled}
	}
}

func cmdBackupTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return backupTickMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
