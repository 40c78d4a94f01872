package overlay

import (
	"fmt"

	"github.com/penwyp/go-battle-overlay/internal/core/battle"
	"github.com/penwyp/go-battle-overlay/internal/core/chart"
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/i18n"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/core/palette"
	"github.com/penwyp/go-battle-overlay/internal/util"
)

const (
	// PieStrokeWidth is the outline width of a pie slice
	PieStrokeWidth = 1.5
	// LineWidth is the width of every damage graph polyline
	LineWidth = 2.0
)

// Compose turns one snapshot into render-ready frame data. It reads the
// snapshot once and neither mutates nor retains its inputs.
func Compose(snap *battle.Snapshot, cfg *config.Config, tr i18n.Translate, vp model.Viewport) *model.Frame {
	if snap == nil {
		snap = &battle.Snapshot{}
	}
	if cfg == nil {
		cfg = config.Default("")
	}
	if tr == nil {
		tr = func(key string) string { return key }
	}

	lineup := snap.AvatarLineup
	labelWidth := util.LabelWidthBudget(vp.Width, len(lineup))
	wrap := func(name string) string { return util.WrapLabel(name, labelWidth) }

	frame := &model.Frame{
		Visible:       !cfg.AutoShowHideUI || len(lineup) > 0,
		TotalDamage:   snap.TotalDamage,
		ActionValue:   snap.ActionValue,
		CurrentWaveAV: snap.CurrentWaveActionValue(),
		LabelWidth:    labelWidth,
		FormatValue:   util.FormatDamage,
		FormatLabel:   wrap,
	}
	if cfg.StreamerMode {
		frame.StreamerBanner = cfg.StreamerMsg
	}

	// slice angles divide by the damage sum, so both totals must be positive
	if snap.TotalDamage > 0 && chart.SumDamages(snap.RealTimeDamages) > 0 {
		frame.Pie = composePie(snap, cfg)
	}
	frame.Legend = composeLegend(snap, tr)
	frame.Bars = composeBars(snap, wrap)
	frame.Graph = composeGraph(snap, cfg.GraphXUnit, tr)
	frame.Panels = composePanels(snap, tr)
	frame.Enemies = composeEnemies(snap, tr)

	return frame
}

func composePie(snap *battle.Snapshot, cfg *config.Config) []model.PieShape {
	slices := chart.BuildPieSegments(snap.RealTimeDamages, snap.AvatarLineup)
	shapes := make([]model.PieShape, 0, len(slices))
	for _, s := range slices {
		color := palette.ColorFor(s.Index)
		shapes = append(shapes, model.PieShape{
			Name:        s.Avatar.Name,
			Index:       s.Index,
			Value:       s.Segment.Value,
			Points:      s.Segment.Points,
			Stroke:      color,
			StrokeWidth: PieStrokeWidth,
			Fill:        color.LinearMultiply(cfg.PieChartOpacity),
		})
	}
	return shapes
}

func composeLegend(snap *battle.Snapshot, tr i18n.Translate) []model.LegendLine {
	lines := make([]model.LegendLine, 0, len(snap.AvatarLineup))
	for i, avatar := range snap.AvatarLineup {
		damage := snap.DamageAt(i)
		percentage := Percentage(damage, snap.TotalDamage)
		dpav := DPAV(damage, snap.ActionValue)

		name := avatar.Name
		if name == "" {
			name = fmt.Sprintf("%s %d", tr("Trial"), i+1)
		}

		lines = append(lines, model.LegendLine{
			Color:      palette.ColorFor(i),
			Name:       name,
			Damage:     damage,
			Percentage: percentage,
			DPAV:       dpav,
			Text: fmt.Sprintf("%6s |%5.1f%% |%6s/AV |@%s",
				util.FormatDamage(damage), percentage, util.FormatDamage(dpav), name),
		})
	}
	return lines
}

func composeBars(snap *battle.Snapshot, wrap func(string) string) []model.BarShape {
	entries := chart.BuildBars(snap.RealTimeDamages, snap.AvatarLineup)
	bars := make([]model.BarShape, 0, len(entries))
	for pos, entry := range entries {
		bars = append(bars, model.BarShape{
			X:     float64(pos),
			Value: entry.Value,
			Width: chart.BarWidth,
			Color: palette.ColorFor(entry.PaletteIndex),
			Name:  entry.Avatar.Name,
			Label: chart.AxisLabel(snap.AvatarLineup, float64(pos), wrap),
		})
	}
	return bars
}

func composeGraph(snap *battle.Snapshot, unit config.GraphUnit, tr i18n.Translate) model.Graph {
	graph := model.Graph{Unit: unit, YLabel: tr("Damage")}

	var lines []chart.Polyline
	if unit == config.GraphActionValue {
		graph.XLabel = tr("Action Value")
		lines = chart.BuildAVSeries(snap.AvatarLineup, snap.AVHistory)
	} else {
		graph.Unit = config.GraphTurn
		graph.XLabel = tr("Turn")
		lines = chart.BuildTurnSeries(snap.AvatarLineup, snap.TurnHistory)
	}

	graph.Lines = make([]model.GraphLine, 0, len(lines))
	for _, line := range lines {
		graph.Lines = append(graph.Lines, model.GraphLine{
			Name:   line.Avatar.Name,
			Color:  palette.ColorFor(line.PaletteIndex),
			Width:  LineWidth,
			Points: line.Points,
		})
	}
	return graph
}

func composePanels(snap *battle.Snapshot, tr i18n.Translate) []model.Panel {
	lineup := snap.AvatarLineup
	wave := snap.CurrentWaveActionValue()

	damage := model.Panel{Title: fmt.Sprintf("%s: %s", tr("Total Damage"), util.FormatFixed2(snap.TotalDamage))}
	av := model.Panel{
		Title: fmt.Sprintf("%s: %s", tr("AV"), util.FormatFixed2(wave)),
		Rows: []model.PanelRow{{
			Name:  tr("Total Elapsed AV"),
			Value: util.FormatFixed2(snap.ActionValue),
		}},
	}
	dpav := model.Panel{Title: fmt.Sprintf("%s: %s", tr("DPAV"), util.FormatFixed2(DPAV(snap.TotalDamage, snap.ActionValue)))}

	for i, avatar := range lineup {
		dmg := snap.DamageAt(i)
		damage.Rows = append(damage.Rows, model.PanelRow{Name: avatar.Name, Value: util.FormatFixed2(dmg)})

		avatarAV := wave
		if i < len(snap.BattleAvatars) {
			avatarAV += snap.BattleAvatars[i].Stats.AV
		}
		av.Rows = append(av.Rows, model.PanelRow{Name: avatar.Name, Value: util.FormatFixed2(avatarAV)})

		dpav.Rows = append(dpav.Rows, model.PanelRow{Name: avatar.Name, Value: util.FormatFixed2(DPAV(dmg, snap.ActionValue))})
	}

	return []model.Panel{damage, av, dpav}
}

func composeEnemies(snap *battle.Snapshot, tr i18n.Translate) []model.EnemyLine {
	lines := make([]model.EnemyLine, 0, len(snap.EnemyLineup))
	for _, entity := range snap.EnemyLineup {
		name, i, ok := snap.EnemyName(entity)
		if !ok {
			continue
		}
		hp := snap.BattleEnemies[i].Stats.HP
		lines = append(lines, model.EnemyLine{
			Name: name,
			HP:   hp,
			Text: fmt.Sprintf("%s: %.2f %s", name, hp, tr("HP")),
		})
	}
	return lines
}

// Percentage is damage as a share of total, zero when total is not positive
func Percentage(damage, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return damage / total * 100
}

// DPAV is damage per action value, falling back to raw damage before any
// action value has elapsed.
func DPAV(damage, actionValue float64) float64 {
	if actionValue > 0 {
		return damage / actionValue
	}
	return damage
}
