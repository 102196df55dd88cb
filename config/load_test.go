package config

import (
	"maps"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesKeepsUnsetValues(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	doc := `
player:
  speed: 7
room:
  gridMult: 0.25
camera:
  panDuration: 0
`
	require.NoError(t, LoadOverrides(strings.NewReader(doc)))

	assert.Equal(t, 7.0, Player.Speed)
	assert.Equal(t, 0.25, Player.AttackDuration, "untouched field keeps its default")
	assert.Equal(t, 0.25, Room.GridMult)
	assert.Equal(t, 16.0, Room.Width)
	assert.Equal(t, 0.0, Camera.PanDuration)
	assert.Equal(t, 60, C.TPS)
}

func TestLoadOverridesReplacesEnemyType(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	doc := `
enemy:
  types:
    Spiker:
      name: Spiker
      behavior: spiker
      maxHealth: 3
      touchDamage: 1
      collisionSize: 0.5
`
	require.NoError(t, LoadOverrides(strings.NewReader(doc)))

	spiker := Enemy.Types["Spiker"]
	assert.Equal(t, 3, spiker.MaxHealth)
	assert.Equal(t, 0.0, spiker.InvincibleDuration, "the whole entry is replaced")
	assert.Contains(t, Enemy.Types, "Skeletos")
}

func TestLoadOverridesEmptyDocument(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, LoadOverrides(strings.NewReader("")))
	assert.Equal(t, 5.0, Player.Speed)
}

func TestLoadOverridesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero tps", "screen:\n  tps: 0\n"},
		{"zero grid", "room:\n  gridMult: 0\n"},
		{"not yaml", "player: [speed\n"},
		{"enemy type with zero tps", "screen:\n  tps: 0\nenemy:\n  types:\n    Skeletos:\n      maxHealth: 99\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			before := maps.Clone(Enemy.Types)

			assert.Error(t, LoadOverrides(strings.NewReader(tt.doc)))
			assert.Equal(t, 60, C.TPS)
			assert.Equal(t, 0.5, Room.GridMult)
			assert.Equal(t, before, Enemy.Types)
			assert.Equal(t, 4, Enemy.Types["Skeletos"].MaxHealth)
		})
	}
}

func TestLoadOverridesFileMissing(t *testing.T) {
	err := LoadOverridesFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestStateNames(t *testing.T) {
	for _, s := range []StateID{Idle, Move, Attack, Transition, Knockback, Dead} {
		assert.Equal(t, s, ParseState(s.String()))
	}
	assert.Equal(t, "unknown", StateID(42).String())
	assert.Equal(t, StateNone, ParseState("flying"))

	text, err := Knockback.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "knockback", string(text))

	var s StateID
	require.NoError(t, s.UnmarshalText([]byte("attack")))
	assert.Equal(t, Attack, s)
}

func TestAnimationKey(t *testing.T) {
	assert.Equal(t, "Dray_Walk_3", AnimationKey("Dray", ClipWalk, 3))
}
