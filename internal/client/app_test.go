package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/mock"
	"github.com/MKhiriev/consent-bridge/internal/service"
)

type fakeUI struct {
	runs int
	err  error
}

func (u *fakeUI) Run(context.Context) error {
	u.runs++
	return u.err
}

func newServices(t *testing.T, signKey string) (*service.ClientServices, *mock.MockBridgeAdapter) {
	t.Helper()

	bridge := mock.NewMockBridgeAdapter(gomock.NewController(t))
	cfg := config.ClientConfig{App: config.ClientApp{
		TokenSignKey:  signKey,
		TokenIssuer:   "issuer",
		TokenDuration: time.Minute,
		Operator:      "operator",
	}}
	return service.NewClientServices(bridge, cfg, logger.Nop()), bridge
}

func TestNewApp_Validation(t *testing.T) {
	services, _ := newServices(t, "key")

	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(services, nil, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(services, &fakeUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run_AuthorizesThenRunsUI(t *testing.T) {
	services, bridge := newServices(t, "key")
	bridge.EXPECT().SetToken(gomock.Any())

	ui := &fakeUI{}
	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}

func TestApp_Run_UIErrorPropagates(t *testing.T) {
	services, bridge := newServices(t, "key")
	bridge.EXPECT().SetToken(gomock.Any())

	ui := &fakeUI{err: errors.New("terminal gone")}
	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	assert.EqualError(t, app.Run(context.Background()), "terminal gone")
}

func TestApp_Run_UnauthorizedStillRunsUI(t *testing.T) {
	services, _ := newServices(t, "")

	ui := &fakeUI{}
	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}
