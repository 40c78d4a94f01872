// Package battle holds the read-only battle snapshot consumed once per frame.
package battle

// Avatar is a player-controlled combatant in the lineup
type Avatar struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Stats holds the live numbers of one battle entity
type Stats struct {
	HP float64 `json:"hp"`
	AV float64 `json:"av"`
}

// BattleAvatar is the in-battle state of a lineup member, index-aligned with the lineup
type BattleAvatar struct {
	Stats Stats `json:"battle_stats"`
}

// Enemy describes an enemy's static data
type Enemy struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// BattleEnemy is the in-battle state of an enemy entity
type BattleEnemy struct {
	Entity uint32 `json:"entity"`
	Stats  Stats  `json:"battle_stats"`
}

// TurnRecord is the damage each lineup member contributed during one turn
type TurnRecord struct {
	AvatarsTurnDamage []float64 `json:"avatars_turn_damage"`
}

// AVRecord samples per-avatar damage at a cumulative action value
type AVRecord struct {
	ActionValue       float64   `json:"action_value"`
	AvatarsTurnDamage []float64 `json:"avatars_turn_damage"`
}

// Snapshot is a frame-stable view of the battle. RealTimeDamages and
// BattleAvatars are index-aligned with AvatarLineup, as is every history
// row's damage vector. Enemies and BattleEnemies are index-aligned with
// each other; EnemyLineup lists the entities currently on the field.
type Snapshot struct {
	AvatarLineup        []Avatar       `json:"avatar_lineup"`
	BattleAvatars       []BattleAvatar `json:"battle_avatars"`
	RealTimeDamages     []float64      `json:"real_time_damages"`
	TotalDamage         float64        `json:"total_damage"`
	ActionValue         float64        `json:"action_value"`
	LastWaveActionValue float64        `json:"last_wave_action_value"`
	TurnHistory         []TurnRecord   `json:"turn_history"`
	AVHistory           []AVRecord     `json:"av_history"`
	EnemyLineup         []uint32       `json:"enemy_lineup"`
	Enemies             []Enemy        `json:"enemies"`
	BattleEnemies       []BattleEnemy  `json:"battle_enemies"`
}

//go:generate mockgen -destination=mock/mock_source.go -package=mock -source=types.go Source

// Source hands out snapshots. Every call returns an independent copy the
// caller may read for the duration of a frame while the battle moves on.
type Source interface {
	Snapshot() (*Snapshot, error)
}

// Clone deep-copies the snapshot so later mutation of s is invisible to the copy
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	out := *s
	out.AvatarLineup = cloneSlice(s.AvatarLineup)
	out.BattleAvatars = cloneSlice(s.BattleAvatars)
	out.RealTimeDamages = cloneSlice(s.RealTimeDamages)
	out.EnemyLineup = cloneSlice(s.EnemyLineup)
	out.Enemies = cloneSlice(s.Enemies)
	out.BattleEnemies = cloneSlice(s.BattleEnemies)

	if s.TurnHistory != nil {
		out.TurnHistory = make([]TurnRecord, len(s.TurnHistory))
		for i, turn := range s.TurnHistory {
			out.TurnHistory[i] = TurnRecord{AvatarsTurnDamage: cloneSlice(turn.AvatarsTurnDamage)}
		}
	}
	if s.AVHistory != nil {
		out.AVHistory = make([]AVRecord, len(s.AVHistory))
		for i, rec := range s.AVHistory {
			out.AVHistory[i] = AVRecord{
				ActionValue:       rec.ActionValue,
				AvatarsTurnDamage: cloneSlice(rec.AvatarsTurnDamage),
			}
		}
	}
	return &out
}

// CurrentWaveActionValue is the action value elapsed since the last wave boundary
func (s *Snapshot) CurrentWaveActionValue() float64 {
	return s.ActionValue - s.LastWaveActionValue
}

// DamageAt returns the real-time damage of lineup position i, zero when absent
func (s *Snapshot) DamageAt(i int) float64 {
	if i < 0 || i >= len(s.RealTimeDamages) {
		return 0
	}
	return s.RealTimeDamages[i]
}

// EnemyName resolves an enemy entity id to its display name
func (s *Snapshot) EnemyName(entity uint32) (string, int, bool) {
	for i, be := range s.BattleEnemies {
		if be.Entity != entity {
			continue
		}
		name := ""
		if i < len(s.Enemies) {
			name = s.Enemies[i].Name
		}
		return name, i, true
	}
	return "", -1, false
}

// StaticSource always serves copies of a fixed snapshot
type StaticSource struct {
	snapshot *Snapshot
}

// NewStaticSource wraps a snapshot; the snapshot is copied immediately
func NewStaticSource(s *Snapshot) *StaticSource {
	if s == nil {
		s = &Snapshot{}
	}
	return &StaticSource{snapshot: s.Clone()}
}

// Snapshot returns a copy of the wrapped snapshot
func (s *StaticSource) Snapshot() (*Snapshot, error) {
	return s.snapshot.Clone(), nil
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
