package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/mock"
	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/models"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSupportService(t *testing.T) (*supportService, *mock.MockReportRepository, *mock.MockTokenFingerprinter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockReportRepository(ctrl)
	fp := mock.NewMockTokenFingerprinter(ctrl)

	svc := NewSupportService(repo, fp, fixedIDs{id: "rec-1"}, logger.Nop()).(*supportService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, fp
}

func TestRecordWebViewMessage_SyncResultStoresFingerprint(t *testing.T) {
	svc, repo, fp := newTestSupportService(t)

	fp.EXPECT().Fingerprint("secret-token").Return("0123456789abcdef")
	repo.EXPECT().SaveSyncResult(gomock.Any(), models.StoredSyncResult{
		ID:               "rec-1",
		ReceivedAt:       fixedNow,
		Success:          true,
		TokenFingerprint: "0123456789abcdef",
		Timestamp:        42,
	}).Return(nil)

	stored, err := svc.RecordWebViewMessage(context.Background(),
		`{"axeptioSyncSuccess":true,"token":"secret-token","timestamp":42}`)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", stored.ID)
	assert.Equal(t, models.WebViewMessageSync, stored.Message.Kind)
	require.NotNil(t, stored.Message.SyncResult)
	assert.True(t, stored.Message.SyncResult.Success)
}

func TestRecordWebViewMessage_FailedSyncWithoutToken(t *testing.T) {
	svc, repo, _ := newTestSupportService(t)

	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.StoredSyncResult) error {
			assert.False(t, r.Success)
			assert.Empty(t, r.TokenFingerprint)
			assert.Contains(t, r.Error, "Invalid sync message")
			return nil
		})

	stored, err := svc.RecordWebViewMessage(context.Background(), "not-json-{")
	require.NoError(t, err)
	assert.False(t, stored.Message.SyncResult.Success)
}

func TestRecordWebViewMessage_Capability(t *testing.T) {
	svc, repo, _ := newTestSupportService(t)

	msg := map[string]any{
		"type": models.CapabilityTestType,
		"results": map[string]any{
			"cookies":      map[string]any{"readable": true, "writable": false, "axeptioFound": false},
			"localStorage": map[string]any{"available": true, "writable": true, "axeptioFound": true},
			"timestamp":    1700000000000,
			"userAgent":    "Mozilla/5.0",
		},
	}

	repo.EXPECT().SaveCapabilityResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.StoredCapabilityResult) error {
			assert.Equal(t, "rec-1", r.ID)
			assert.Equal(t, fixedNow, r.ReceivedAt)
			assert.True(t, r.Results.Cookies.Readable)
			assert.True(t, r.Results.LocalStorage.AxeptioFound)
			assert.Equal(t, int64(1700000000000), r.Results.Timestamp)
			return nil
		})

	stored, err := svc.RecordWebViewMessage(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, models.WebViewMessageCapability, stored.Message.Kind)
}

func TestRecordWebViewMessage_BadCapabilityIsRejected(t *testing.T) {
	svc, _, _ := newTestSupportService(t)

	_, err := svc.RecordWebViewMessage(context.Background(), map[string]any{"type": models.CapabilityTestType})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRecordWebViewMessage_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestSupportService(t)

	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.RecordWebViewMessage(context.Background(), map[string]any{"axeptioSyncSuccess": false})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestSaveReport(t *testing.T) {
	svc, repo, _ := newTestSupportService(t)
	report := models.DiagnosticReport{Platform: models.PlatformIOS, PlatformVersion: "17.0"}

	repo.EXPECT().SaveReport(gomock.Any(), models.StoredReport{ID: "rec-1", CreatedAt: fixedNow, Report: report}).Return(nil)

	stored, err := svc.SaveReport(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", stored.ID)
	assert.Equal(t, report, stored.Report)
}

func TestSaveReport_Error(t *testing.T) {
	svc, repo, _ := newTestSupportService(t)

	repo.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(store.ErrReportAlreadyExists)

	_, err := svc.SaveReport(context.Background(), models.DiagnosticReport{})
	assert.ErrorIs(t, err, store.ErrReportAlreadyExists)
}

func TestListMethodsDelegate(t *testing.T) {
	svc, repo, _ := newTestSupportService(t)
	ctx := context.Background()

	repo.EXPECT().ListReports(gomock.Any(), 5).Return([]models.StoredReport{{ID: "r"}}, nil)
	repo.EXPECT().ListSyncResults(gomock.Any(), 6).Return(nil, errors.New("boom"))
	repo.EXPECT().ListCapabilityResults(gomock.Any(), 7).Return([]models.StoredCapabilityResult{{ID: "c"}}, nil)

	reports, err := svc.ListReports(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	_, err = svc.ListSyncResults(ctx, 6)
	assert.Error(t, err)

	caps, err := svc.ListCapabilityResults(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "c", caps[0].ID)
}
