package service

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/document"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/mock"
	"github.com/MKhiriev/go-photo-annotator/models"
)

func newTestDocumentSvc(t *testing.T, ctrl *gomock.Controller) (DocumentService, *mock.MockDocumentOpener, *mock.MockDocumentSaver) {
	t.Helper()
	opener := mock.NewMockDocumentOpener(ctrl)
	saver := mock.NewMockDocumentSaver(ctrl)
	return NewDocumentService(opener, saver, "/backups", logger.Nop()), opener, saver
}

func newMockDocumentFile(ctrl *gomock.Controller, text string, err error) *mock.MockDocumentFile {
	f := mock.NewMockDocumentFile(ctrl)
	f.EXPECT().Name().Return("metadata.json").AnyTimes()
	f.EXPECT().Path().Return("/p/metadata.json").AnyTimes()
	f.EXPECT().Text(gomock.Any()).Return(text, err)
	return f
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestDocumentService_Load_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, opener, _ := newTestDocumentSvc(t, ctrl)

	opener.EXPECT().Open(gomock.Any(), "/p/metadata.json").
		Return(newMockDocumentFile(ctrl, `{"a.jpg":{"headline":"X"}}`, nil), nil)

	m, err := svc.Load(context.Background(), "/p/metadata.json")
	require.NoError(t, err)
	assert.Equal(t, models.Metadata{"a.jpg": {Headline: "X"}}, m)
}

func TestDocumentService_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(ctrl *gomock.Controller, opener *mock.MockDocumentOpener)
		wantErr error
	}{
		{
			name: "open fails",
			setup: func(_ *gomock.Controller, opener *mock.MockDocumentOpener) {
				opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrUnsupportedType)
			},
			wantErr: adapter.ErrUnsupportedType,
		},
		{
			name: "read fails",
			setup: func(ctrl *gomock.Controller, opener *mock.MockDocumentOpener) {
				opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(newMockDocumentFile(ctrl, "", assert.AnError), nil)
			},
			wantErr: assert.AnError,
		},
		{
			name: "not json",
			setup: func(ctrl *gomock.Controller, opener *mock.MockDocumentOpener) {
				opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(newMockDocumentFile(ctrl, "{oops", nil), nil)
			},
			wantErr: document.ErrMalformedDocument,
		},
		{
			name: "wrong shape",
			setup: func(ctrl *gomock.Controller, opener *mock.MockDocumentOpener) {
				opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(newMockDocumentFile(ctrl, `{"a.jpg":"X"}`, nil), nil)
			},
			wantErr: document.ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, opener, _ := newTestDocumentSvc(t, ctrl)
			tt.setup(ctrl, opener)

			m, err := svc.Load(context.Background(), "/p/metadata.json")
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentService_Load_EmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDocumentSvc(t, ctrl)

	_, err := svc.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoDocumentPath)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestDocumentService_Save_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saver := newTestDocumentSvc(t, ctrl)

	var buf bytes.Buffer
	sink := mock.NewMockSink(ctrl)
	gomock.InOrder(
		saver.EXPECT().Create(gomock.Any(), "/p/captions", adapter.JSONFilter).Return(sink, nil),
		sink.EXPECT().Write(gomock.Any()).DoAndReturn(buf.Write),
		sink.EXPECT().Close().Return(nil),
	)
	sink.EXPECT().Path().Return("/p/captions.json")

	m := models.Metadata{"a.jpg": {Headline: "Hello"}}
	path, err := svc.Save(context.Background(), "/p/captions", m)

	require.NoError(t, err)
	assert.Equal(t, "/p/captions.json", path)

	decoded, err := document.Decode(buf.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(m, decoded); diff != "" {
		t.Errorf("written document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentService_Save_WriteErrorDoesNotFinalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saver := newTestDocumentSvc(t, ctrl)

	sink := mock.NewMockSink(ctrl)
	saver.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(sink, nil)
	sink.EXPECT().Write(gomock.Any()).Return(0, assert.AnError)
	// no Close expected

	_, err := svc.Save(context.Background(), "/p/m.json", models.NewMetadata())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDocumentService_Save_CloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saver := newTestDocumentSvc(t, ctrl)

	sink := mock.NewMockSink(ctrl)
	saver.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(sink, nil)
	sink.EXPECT().Write(gomock.Any()).Return(2, nil)
	sink.EXPECT().Close().Return(assert.AnError)

	path, err := svc.Save(context.Background(), "/p/m.json", models.NewMetadata())
	assert.Empty(t, path)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDocumentService_Save_CreateCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saver := newTestDocumentSvc(t, ctrl)

	saver.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, adapter.ErrCanceled)

	_, err := svc.Save(context.Background(), "/p/m.json", models.NewMetadata())
	assert.ErrorIs(t, err, adapter.ErrCanceled)
}

// ── Backup ───────────────────────────────────────────────────────────────────

func TestDocumentService_Backup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saver := newTestDocumentSvc(t, ctrl)

	want := filepath.Join("/backups", "trip-autosave.json")
	sink := mock.NewMockSink(ctrl)
	saver.EXPECT().Create(gomock.Any(), want, adapter.JSONFilter).Return(sink, nil)
	sink.EXPECT().Write(gomock.Any()).Return(2, nil)
	sink.EXPECT().Close().Return(nil)
	sink.EXPECT().Path().Return(want)

	path, err := svc.Backup(context.Background(), "/photos/trip", models.NewMetadata())
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestDocumentService_Backup_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewDocumentService(mock.NewMockDocumentOpener(ctrl), mock.NewMockDocumentSaver(ctrl), "", logger.Nop())

	_, err := svc.Backup(context.Background(), "/photos/trip", models.NewMetadata())
	assert.ErrorIs(t, err, ErrNoBackupDir)
}
