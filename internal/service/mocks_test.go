package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/mock"
	"github.com/MKhiriev/go-photo-annotator/internal/store"
	"github.com/MKhiriev/go-photo-annotator/models"
)

var (
	_ PictureService  = (*mock.MockPictureService)(nil)
	_ DocumentService = (*mock.MockDocumentService)(nil)
	_ HistoryService  = (*mock.MockHistoryService)(nil)
	_ AppInfoService  = (*mock.MockAppInfoService)(nil)
	_ IDGenerator     = (*mock.MockIDGenerator)(nil)

	_ store.HistoryRepository = (*mock.MockHistoryRepository)(nil)

	_ adapter.FolderOpener   = (*mock.MockFolderOpener)(nil)
	_ adapter.Folder         = (*mock.MockFolder)(nil)
	_ adapter.Entry          = (*mock.MockEntry)(nil)
	_ adapter.DocumentOpener = (*mock.MockDocumentOpener)(nil)
	_ adapter.DocumentFile   = (*mock.MockDocumentFile)(nil)
	_ adapter.DocumentSaver  = (*mock.MockDocumentSaver)(nil)
	_ adapter.Sink           = (*mock.MockSink)(nil)
)

// ── DocumentService mock ─────────────────────────────────────────────────────

func TestMockDocumentService_PassesMetadataThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentService(ctrl)

	metadata, err := models.NewMetadata().With("a.jpg", models.FieldHeadline, "Sunrise")
	require.NoError(t, err)

	docs.EXPECT().Save(gomock.Any(), "/photos/metadata.json", metadata).Return("/photos/metadata.json", nil)
	docs.EXPECT().Backup(gomock.Any(), "/photos", metadata).Return("/backups/photos-autosave.json", nil)

	var svc DocumentService = docs
	path, err := svc.Save(context.Background(), "/photos/metadata.json", metadata)
	require.NoError(t, err)
	assert.Equal(t, "/photos/metadata.json", path)

	path, err = svc.Backup(context.Background(), "/photos", metadata)
	require.NoError(t, err)
	assert.Equal(t, "/backups/photos-autosave.json", path)
}
