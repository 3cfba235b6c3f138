package factory

import (
	"context"

	"github.com/mcoot/playerdna/internal/dependencies/mocks"
	"github.com/mcoot/playerdna/internal/model"
	"github.com/mcoot/playerdna/internal/storage/memory"
	"github.com/mcoot/playerdna/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Test doubles for test control
	MemoryStorage *memory.Storage
	MockUpstream  *mocks.MockUpstream
}

// NewTestApp creates an App backed by in-memory fixtures and a mocked upstream
// with no API key configured
func NewTestApp() *TestApp {
	store := memory.New()
	upstream := mocks.NewMockUpstream()

	app := newWithDependencies(store, upstream, testutil.NopLogger())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
		MockUpstream:  upstream,
	}
}

// Test fixture documents loaded by LoadTestFixtures
const (
	TestPlayerStats  = `{"player_name":"Test Player","steam_level":27,"total_hours":1834,"played_games":143,"completion_percent":38}`
	TestAchievements = `[{"appid":440,"name":"Team Fortress 2","percent":64.5,"achievements":[{"name":"TF_PLAY_GAME_EVERYCLASS","percent":52.1}]}]`
	TestPcsrProfile  = `{"type":"CSTH","axes":{"Challenge Nature":{"code":"C","score":0.8}}}`
)

// LoadTestFixtures stores a small set of fixture documents under the names the
// player service serves
func (t *TestApp) LoadTestFixtures() error {
	ctx := context.Background()
	fixtures := map[string]string{
		model.PlayerStatsFixture:  TestPlayerStats,
		model.AchievementsFixture: TestAchievements,
		model.PcsrProfileFixture:  TestPcsrProfile,
	}
	for name, doc := range fixtures {
		if err := t.MemoryStorage.SaveFixture(ctx, name, []byte(doc)); err != nil {
			return err
		}
	}
	return nil
}
