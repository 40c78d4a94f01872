package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/penwyp/go-battle-overlay/internal/core/battle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{
  "avatar_lineup": [{"id": 1102, "name": "Seele"}, {"id": 1101, "name": "Bronya"}],
  "battle_avatars": [{"battle_stats": {"hp": 1000, "av": 12.5}}, {"battle_stats": {"hp": 1400, "av": 30}}],
  "real_time_damages": [12000, 3000],
  "total_damage": 15000,
  "action_value": 150,
  "last_wave_action_value": 100,
  "turn_history": [{"avatars_turn_damage": [12000, 0]}, {"avatars_turn_damage": [0, 3000]}],
  "av_history": [{"action_value": 72.5, "avatars_turn_damage": [12000, 0]}],
  "enemy_lineup": [9001],
  "enemies": [{"id": 300, "name": "Frostspawn"}],
  "battle_enemies": [{"entity": 9001, "battle_stats": {"hp": 5230.5, "av": 0}}]
}`

func writeSnapshot(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(t, os.Rename(tmp, path))
}

func waitForEvent(t *testing.T, fs *FileSource) Event {
	t.Helper()
	select {
	case e := <-fs.Events():
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot event")
		return Event{}
	}
}

func TestDecode(t *testing.T) {
	snap, err := Decode([]byte(sampleSnapshot))
	require.NoError(t, err)

	require.Len(t, snap.AvatarLineup, 2)
	assert.Equal(t, "Seele", snap.AvatarLineup[0].Name)
	assert.Equal(t, 12.5, snap.BattleAvatars[0].Stats.AV)
	assert.Equal(t, 15000.0, snap.TotalDamage)
	assert.Equal(t, 50.0, snap.CurrentWaveActionValue())
	assert.Equal(t, []float64{0, 3000}, snap.TurnHistory[1].AvatarsTurnDamage)
	assert.Equal(t, []uint32{9001}, snap.EnemyLineup)

	name, _, ok := snap.EnemyName(9001)
	assert.True(t, ok)
	assert.Equal(t, "Frostspawn", name)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("{oops"))
	assert.Error(t, err)
}

func TestFileSourceInitialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.json")
	writeSnapshot(t, path, sampleSnapshot)

	fs, err := NewFileSource(path)
	require.NoError(t, err)
	defer fs.Close()

	snap, err := fs.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 15000.0, snap.TotalDamage)
}

func TestFileSourceReturnsIndependentCopies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.json")
	writeSnapshot(t, path, sampleSnapshot)

	fs, err := NewFileSource(path)
	require.NoError(t, err)
	defer fs.Close()

	first, err := fs.Snapshot()
	require.NoError(t, err)
	first.RealTimeDamages[0] = -1
	first.AvatarLineup[0].Name = "changed"

	second, err := fs.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 12000.0, second.RealTimeDamages[0])
	assert.Equal(t, "Seele", second.AvatarLineup[0].Name)
}

func TestFileSourceMissingFileThenCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.json")

	fs, err := NewFileSource(path)
	require.NoError(t, err)
	defer fs.Close()

	_, err = fs.Snapshot()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	writeSnapshot(t, path, sampleSnapshot)
	e := waitForEvent(t, fs)
	assert.NoError(t, e.Err)

	snap, err := fs.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.AvatarLineup, 2)
}

func TestFileSourceReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.json")
	writeSnapshot(t, path, sampleSnapshot)

	fs, err := NewFileSource(path)
	require.NoError(t, err)
	defer fs.Close()

	writeSnapshot(t, path, `{"avatar_lineup": [{"id": 1, "name": "Pela"}], "real_time_damages": [42], "total_damage": 42}`)

	require.Eventually(t, func() bool {
		snap, err := fs.Snapshot()
		return err == nil && snap.TotalDamage == 42
	}, 5*time.Second, 20*time.Millisecond)
}

func TestFileSourceKeepsPreviousOnBadDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.json")
	writeSnapshot(t, path, sampleSnapshot)

	fs, err := NewFileSource(path)
	require.NoError(t, err)
	defer fs.Close()

	writeSnapshot(t, path, "{truncated")
	e := waitForEvent(t, fs)
	assert.Error(t, e.Err)

	snap, err := fs.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 15000.0, snap.TotalDamage)
}

func TestFileSourceIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battle.json")
	writeSnapshot(t, path, sampleSnapshot)

	fs, err := NewFileSource(path)
	require.NoError(t, err)
	defer fs.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))

	select {
	case e := <-fs.Events():
		t.Fatalf("unexpected event for %s", e.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileSourceCloseIsIdempotent(t *testing.T) {
	fs, err := NewFileSource(filepath.Join(t.TempDir(), "battle.json"))
	require.NoError(t, err)

	assert.NoError(t, fs.Close())
	assert.NoError(t, fs.Close())
}

func TestFileSourceSatisfiesSource(t *testing.T) {
	var _ battle.Source = (*FileSource)(nil)
}
