package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/mock"
	"github.com/MKhiriev/go-photo-annotator/internal/store"
	"github.com/MKhiriev/go-photo-annotator/models"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestHistorySvc(t *testing.T, ctrl *gomock.Controller) (*historyService, *mock.MockHistoryRepository, *mock.MockIDGenerator) {
	t.Helper()
	repo := mock.NewMockHistoryRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	svc := NewHistoryService(repo, ids, logger.Nop()).(*historyService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, ids
}

// ── RecordFolder ─────────────────────────────────────────────────────────────

func TestHistoryService_RecordFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, ids := newTestHistorySvc(t, ctrl)

	ids.EXPECT().Generate().Return("id-1")
	repo.EXPECT().SaveSession(gomock.Any(), models.HistoryEntry{
		ID: "id-1", Folder: "/photos", OpenedAt: fixedNow, UpdatedAt: fixedNow,
	}).Return(nil)

	require.NoError(t, svc.RecordFolder(context.Background(), "/photos"))
}

func TestHistoryService_RecordFolder_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, ids := newTestHistorySvc(t, ctrl)

	ids.EXPECT().Generate().Return("id-1")
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	err := svc.RecordFolder(context.Background(), "/photos")
	assert.ErrorIs(t, err, store.ErrExecutingStatement)

	assert.ErrorIs(t, svc.RecordFolder(context.Background(), ""), ErrNoFolder)
}

// ── RecordDocument ───────────────────────────────────────────────────────────

func TestHistoryService_RecordDocument_KnownFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestHistorySvc(t, ctrl)

	repo.EXPECT().UpdateDocument(gomock.Any(), "/photos", "/photos/m.json", fixedNow).Return(nil)

	require.NoError(t, svc.RecordDocument(context.Background(), "/photos", "/photos/m.json"))
}

func TestHistoryService_RecordDocument_UnknownFolderInserts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, ids := newTestHistorySvc(t, ctrl)

	repo.EXPECT().UpdateDocument(gomock.Any(), "/photos", "/photos/m.json", fixedNow).Return(store.ErrNoHistory)
	ids.EXPECT().Generate().Return("id-2")
	repo.EXPECT().SaveSession(gomock.Any(), models.HistoryEntry{
		ID: "id-2", Folder: "/photos", Document: "/photos/m.json", OpenedAt: fixedNow, UpdatedAt: fixedNow,
	}).Return(nil)

	require.NoError(t, svc.RecordDocument(context.Background(), "/photos", "/photos/m.json"))
}

func TestHistoryService_RecordDocument_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestHistorySvc(t, ctrl)

	assert.ErrorIs(t, svc.RecordDocument(context.Background(), "", "m.json"), ErrNoFolder)
	assert.ErrorIs(t, svc.RecordDocument(context.Background(), "/photos", ""), ErrNoDocumentPath)
}

// ── Last / LastDocument ──────────────────────────────────────────────────────

func TestHistoryService_Last(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestHistorySvc(t, ctrl)

	entry := models.HistoryEntry{ID: "id-1", Folder: "/photos"}
	repo.EXPECT().GetLastSession(gomock.Any()).Return(entry, nil)
	repo.EXPECT().GetLastSession(gomock.Any()).Return(models.HistoryEntry{}, store.ErrNoHistory)

	got, err := svc.Last(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	_, err = svc.Last(context.Background())
	assert.ErrorIs(t, err, store.ErrNoHistory)
}

func TestHistoryService_LastDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestHistorySvc(t, ctrl)

	repo.EXPECT().GetSessionByFolder(gomock.Any(), "/a").Return(models.HistoryEntry{Document: "/a/m.json"}, nil)
	repo.EXPECT().GetSessionByFolder(gomock.Any(), "/b").Return(models.HistoryEntry{}, store.ErrNoHistory)
	repo.EXPECT().GetSessionByFolder(gomock.Any(), "/c").Return(models.HistoryEntry{}, store.ErrScanningRow)

	doc, err := svc.LastDocument(context.Background(), "/a")
	require.NoError(t, err)
	assert.Equal(t, "/a/m.json", doc)

	doc, err = svc.LastDocument(context.Background(), "/b")
	require.NoError(t, err)
	assert.Empty(t, doc)

	_, err = svc.LastDocument(context.Background(), "/c")
	assert.ErrorIs(t, err, store.ErrScanningRow)
}

// ── AppInfo ──────────────────────────────────────────────────────────────────

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "", "abc")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "1.2.3", got.BuildVersion())
	assert.Equal(t, "N/A", got.BuildDate())
	assert.Equal(t, "abc", got.BuildCommit())
}
