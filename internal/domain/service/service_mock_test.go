package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockTeamRepo    *mocks.MockTeamRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockTeamRepo:    mocks.NewMockTeamRepo(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	return
}

// newTestTeam builds a team service over snapshot with deterministic ids
// (id-1, id-2, ...). Saves succeed unless the test sets its own expectation
// first.
func newTestTeam(t *testing.T, m allMocks, snapshot entity.Snapshot) *teamService {
	t.Helper()

	m.mockTeamRepo.EXPECT().Load(gomock.Any()).Return(snapshot).Times(1)

	s := newTeam(context.Background(), m.mockTeamRepo, zerolog.Nop())
	require.NotNil(t, s)

	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return s
}

func allowSaves(m allMocks) {
	m.mockTeamRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.mockTeamRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}
