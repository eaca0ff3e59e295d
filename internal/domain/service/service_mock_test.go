package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockMessageRepo    *mocks.MockMessageRepo
	mockCredentialRepo *mocks.MockCredentialRepo
	mockCredentialGate *mocks.MockCredentialGate
	mockCache          *mocks.MockCredentialCache
	mockSender         *mocks.MockSender
	mockMetrics        *mocks.MockMetrics
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	messageRepo := mocks.NewMockMessageRepo(ctrl)
	dm.EXPECT().Message().Return(messageRepo).AnyTimes()

	credentialRepo := mocks.NewMockCredentialRepo(ctrl)
	dm.EXPECT().Credential().Return(credentialRepo).AnyTimes()

	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveSweep(gomock.Any()).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockMessageRepo:    messageRepo,
		mockCredentialRepo: credentialRepo,
		mockCredentialGate: mocks.NewMockCredentialGate(ctrl),
		mockCache:          mocks.NewMockCredentialCache(ctrl),
		mockSender:         mocks.NewMockSender(ctrl),
		mockMetrics:        metrics,
	}

	return
}

func newYork(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
