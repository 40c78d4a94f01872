package overlay

import (
	"testing"

	"github.com/penwyp/go-battle-overlay/internal/core/battle"
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/i18n"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/core/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *battle.Snapshot {
	return &battle.Snapshot{
		AvatarLineup: []battle.Avatar{{ID: 1102, Name: "Seele"}, {ID: 1101, Name: "Bronya"}},
		BattleAvatars: []battle.BattleAvatar{
			{Stats: battle.Stats{HP: 1000, AV: 12.5}},
			{Stats: battle.Stats{HP: 1400, AV: 30}},
		},
		RealTimeDamages:     []float64{12000, 3000},
		TotalDamage:         15000,
		ActionValue:         150,
		LastWaveActionValue: 100,
		TurnHistory: []battle.TurnRecord{
			{AvatarsTurnDamage: []float64{12000, 0}},
			{AvatarsTurnDamage: []float64{0, 3000}},
		},
		AVHistory: []battle.AVRecord{
			{ActionValue: 72.5, AvatarsTurnDamage: []float64{12000, 0}},
			{ActionValue: 150, AvatarsTurnDamage: []float64{12000, 3000}},
		},
		EnemyLineup:   []uint32{9001, 9999},
		Enemies:       []battle.Enemy{{ID: 300, Name: "Frostspawn"}},
		BattleEnemies: []battle.BattleEnemy{{Entity: 9001, Stats: battle.Stats{HP: 5230.5}}},
	}
}

func identity(key string) string { return key }

func TestComposeLegend(t *testing.T) {
	frame := Compose(sampleSnapshot(), config.Default("en"), identity, model.Viewport{Width: 800})

	require.Len(t, frame.Legend, 2)
	assert.Equal(t, "   12K | 80.0% |    80/AV |@Seele", frame.Legend[0].Text)
	assert.Equal(t, "    3K | 20.0% |    20/AV |@Bronya", frame.Legend[1].Text)
	assert.Equal(t, palette.ColorFor(0), frame.Legend[0].Color)
	assert.Equal(t, palette.ColorFor(1), frame.Legend[1].Color)
}

func TestComposeLegendNamesTrialCharacters(t *testing.T) {
	snap := sampleSnapshot()
	snap.AvatarLineup[1].Name = ""
	tr, err := i18n.New("zh-CN")
	require.NoError(t, err)

	frame := Compose(snap, config.Default("zh-CN"), tr.Func(), model.Viewport{Width: 800})
	assert.Equal(t, "试用角色 2", frame.Legend[1].Name)
}

func TestComposePieOnlyWithPositiveTotal(t *testing.T) {
	cfg := config.Default("en")

	frame := Compose(sampleSnapshot(), cfg, identity, model.Viewport{})
	require.Len(t, frame.Pie, 2)
	for i, shape := range frame.Pie {
		assert.Equal(t, i, shape.Index)
		assert.Equal(t, PieStrokeWidth, shape.StrokeWidth)
		assert.Equal(t, palette.ColorFor(i).LinearMultiply(cfg.PieChartOpacity), shape.Fill)
		assert.Equal(t, [2]float64{0, 0}, shape.Points[0])
		assert.Equal(t, [2]float64{0, 0}, shape.Points[len(shape.Points)-1])
	}
	// first slice starts at 12 o'clock
	assert.InDelta(t, 0.0, frame.Pie[0].Points[1][0], 1e-9)
	assert.InDelta(t, -0.8, frame.Pie[0].Points[1][1], 1e-9)

	empty := sampleSnapshot()
	empty.TotalDamage = 0
	empty.RealTimeDamages = []float64{0, 0}
	frame = Compose(empty, cfg, identity, model.Viewport{})
	assert.Empty(t, frame.Pie)
	assert.Equal(t, "     0 |  0.0% |     0/AV |@Seele", frame.Legend[0].Text)
}

func TestComposeBars(t *testing.T) {
	snap := sampleSnapshot()
	snap.AvatarLineup[0].Name = "Dan Heng Imbibitor Lunae"

	frame := Compose(snap, config.Default("en"), identity, model.Viewport{Width: 160})
	assert.Equal(t, 10, frame.LabelWidth)
	require.Len(t, frame.Bars, 2)

	assert.Equal(t, 0.0, frame.Bars[0].X)
	assert.Equal(t, 0.7, frame.Bars[0].Width)
	assert.Equal(t, 12000.0, frame.Bars[0].Value)
	assert.Equal(t, "Dan Heng\nImbibitor\nLunae", frame.Bars[0].Label)
	assert.Equal(t, "Bronya", frame.Bars[1].Label)
	assert.Equal(t, "12K", frame.FormatValue(12000))
}

func TestComposeGraphFollowsUnitToggle(t *testing.T) {
	cfg := config.Default("en")

	frame := Compose(sampleSnapshot(), cfg, identity, model.Viewport{})
	assert.Equal(t, config.GraphTurn, frame.Graph.Unit)
	assert.Equal(t, "Turn", frame.Graph.XLabel)
	assert.Equal(t, "Damage", frame.Graph.YLabel)
	require.Len(t, frame.Graph.Lines, 2)
	assert.Equal(t, 1.0, frame.Graph.Lines[0].Points[0].X)
	assert.Equal(t, LineWidth, frame.Graph.Lines[0].Width)

	cfg.ToggleGraphUnit()
	frame = Compose(sampleSnapshot(), cfg, identity, model.Viewport{})
	assert.Equal(t, config.GraphActionValue, frame.Graph.Unit)
	assert.Equal(t, "Action Value", frame.Graph.XLabel)
	assert.Equal(t, 72.5, frame.Graph.Lines[0].Points[0].X)
}

func TestComposePanels(t *testing.T) {
	frame := Compose(sampleSnapshot(), config.Default("en"), identity, model.Viewport{})
	require.Len(t, frame.Panels, 3)

	damage, av, dpav := frame.Panels[0], frame.Panels[1], frame.Panels[2]
	assert.Equal(t, "Total Damage: 15,000.00", damage.Title)
	assert.Equal(t, model.PanelRow{Name: "Seele", Value: "12,000.00"}, damage.Rows[0])

	assert.Equal(t, "AV: 50.00", av.Title)
	assert.Equal(t, model.PanelRow{Name: "Total Elapsed AV", Value: "150.00"}, av.Rows[0])
	assert.Equal(t, model.PanelRow{Name: "Seele", Value: "62.50"}, av.Rows[1])
	assert.Equal(t, model.PanelRow{Name: "Bronya", Value: "80.00"}, av.Rows[2])

	assert.Equal(t, "DPAV: 100.00", dpav.Title)
	assert.Equal(t, model.PanelRow{Name: "Bronya", Value: "20.00"}, dpav.Rows[1])
	assert.Equal(t, 50.0, frame.CurrentWaveAV)
}

func TestComposeEnemiesSkipsUnknownEntities(t *testing.T) {
	frame := Compose(sampleSnapshot(), config.Default("en"), identity, model.Viewport{})
	require.Len(t, frame.Enemies, 1)
	assert.Equal(t, "Frostspawn: 5230.50 HP", frame.Enemies[0].Text)
}

func TestComposeStreamerBannerAndVisibility(t *testing.T) {
	cfg := config.Default("en")
	frame := Compose(sampleSnapshot(), cfg, identity, model.Viewport{})
	assert.Equal(t, config.AppName, frame.StreamerBanner)
	assert.True(t, frame.Visible)

	cfg.StreamerMode = false
	cfg.AutoShowHideUI = true
	frame = Compose(&battle.Snapshot{}, cfg, identity, model.Viewport{})
	assert.Empty(t, frame.StreamerBanner)
	assert.False(t, frame.Visible)
	assert.False(t, frame.HasData())
}

func TestComposeDoesNotMutateInputs(t *testing.T) {
	snap := sampleSnapshot()
	cfg := config.Default("en")
	before := snap.Clone()
	cfgBefore := cfg.Clone()

	Compose(snap, cfg, nil, model.Viewport{Width: 300})
	assert.Equal(t, before, snap)
	assert.Equal(t, cfgBefore, cfg)
}

func TestComposeNilInputs(t *testing.T) {
	frame := Compose(nil, nil, nil, model.Viewport{})
	assert.NotNil(t, frame)
	assert.Empty(t, frame.Legend)
	assert.Empty(t, frame.Pie)
	assert.Len(t, frame.Panels, 3)
}

func TestRatioGuards(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(10, 0))
	assert.Equal(t, 25.0, Percentage(1, 4))
	assert.Equal(t, 42.0, DPAV(42, 0))
	assert.Equal(t, 2.0, DPAV(42, 21))
}
