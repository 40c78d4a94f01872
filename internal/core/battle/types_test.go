package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		AvatarLineup:        []Avatar{{ID: 1, Name: "Seele"}, {ID: 2, Name: "Silver Wolf"}},
		BattleAvatars:       []BattleAvatar{{Stats: Stats{AV: 12}}, {Stats: Stats{AV: 40}}},
		RealTimeDamages:     []float64{3000, 1000},
		TotalDamage:         4000,
		ActionValue:         250,
		LastWaveActionValue: 150,
		TurnHistory:         []TurnRecord{{AvatarsTurnDamage: []float64{3000, 0}}},
		AVHistory:           []AVRecord{{ActionValue: 80, AvatarsTurnDamage: []float64{3000, 1000}}},
		EnemyLineup:         []uint32{7},
		Enemies:             []Enemy{{ID: 1, Name: "Cocolia"}},
		BattleEnemies:       []BattleEnemy{{Entity: 7, Stats: Stats{HP: 52000}}},
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleSnapshot()
	copied := original.Clone()
	require.Equal(t, original, copied)

	original.AvatarLineup[0].Name = "changed"
	original.RealTimeDamages[0] = 1
	original.TurnHistory[0].AvatarsTurnDamage[0] = 1
	original.AVHistory[0].AvatarsTurnDamage[1] = 1
	original.BattleEnemies[0].Stats.HP = 1

	assert.Equal(t, "Seele", copied.AvatarLineup[0].Name)
	assert.Equal(t, 3000.0, copied.RealTimeDamages[0])
	assert.Equal(t, 3000.0, copied.TurnHistory[0].AvatarsTurnDamage[0])
	assert.Equal(t, 1000.0, copied.AVHistory[0].AvatarsTurnDamage[1])
	assert.Equal(t, 52000.0, copied.BattleEnemies[0].Stats.HP)
}

func TestCloneNil(t *testing.T) {
	var s *Snapshot
	assert.Nil(t, s.Clone())
}

func TestCurrentWaveActionValue(t *testing.T) {
	assert.Equal(t, 100.0, sampleSnapshot().CurrentWaveActionValue())
}

func TestDamageAtOutOfRange(t *testing.T) {
	s := sampleSnapshot()
	assert.Equal(t, 1000.0, s.DamageAt(1))
	assert.Equal(t, 0.0, s.DamageAt(5))
	assert.Equal(t, 0.0, s.DamageAt(-1))
}

func TestEnemyName(t *testing.T) {
	s := sampleSnapshot()

	name, idx, ok := s.EnemyName(7)
	assert.True(t, ok)
	assert.Equal(t, "Cocolia", name)
	assert.Equal(t, 0, idx)

	_, _, ok = s.EnemyName(99)
	assert.False(t, ok)
}

func TestStaticSourceReturnsIndependentCopies(t *testing.T) {
	src := NewStaticSource(sampleSnapshot())

	first, err := src.Snapshot()
	require.NoError(t, err)
	first.RealTimeDamages[0] = 0

	second, err := src.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 3000.0, second.RealTimeDamages[0])
}
