package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="16" height="48"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="40" y="8">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="3" x="20" y="8">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Dummies">
  <object id="4" name="right" x="50" y="8">
   <properties>
    <property name="knockback" type="bool" value="false"/>
   </properties>
   <point/>
  </object>
  <object id="5" name="left" x="30" y="8">
   <properties>
    <property name="health" type="int" value="25"/>
    <property name="invulnFrames" type="int" value="4"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Walls"/>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/small.tmx": &fstest.MapFile{Data: []byte(smallArena)},
	}

	data, err := LoadArena(fsys, "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", data.Name)
	assert.Equal(t, 64, data.MapWidth)
	assert.Equal(t, 48, data.MapHeight)
	assert.Equal(t, []SolidRect{{X: 0, Y: 0, W: 16, H: 48}}, data.SolidRects)

	require.Len(t, data.SpawnPoints, 2)
	assert.Equal(t, 0, data.SpawnPoints[0].Index)
	assert.Equal(t, 20.0, data.SpawnPoints[0].X)

	require.Len(t, data.Dummies, 2)
	left, right := data.Dummies[0], data.Dummies[1]
	assert.Equal(t, "left", left.Name)
	assert.Equal(t, 25, left.Health)
	assert.Equal(t, 4, left.InvulnFrames)
	assert.Nil(t, left.CanKnockback)

	assert.Equal(t, "right", right.Name)
	assert.Zero(t, right.Health)
	require.NotNil(t, right.CanKnockback)
	assert.False(t, *right.CanKnockback)
}

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx":  &fstest.MapFile{Data: []byte(noSpawnArena)},
		"levels/broken.tmx": &fstest.MapFile{Data: []byte("<map")},
	}

	cases := []struct {
		name string
		path string
		want string
	}{
		{"missing", "levels/missing.tmx", "load TMX levels/missing.tmx"},
		{"malformed", "levels/broken.tmx", "load TMX levels/broken.tmx"},
		{"no_spawn", "levels/empty.tmx", "no PlayerSpawn objects"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadArena(fsys, c.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestLoadShippedArena(t *testing.T) {
	data, err := LoadArena(os.DirFS("../../assets"), "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, data.MapWidth)
	assert.Len(t, data.SpawnPoints, 1)
	assert.Len(t, data.Dummies, 3)
	// Two floor rows plus the side walls
	assert.Len(t, data.SolidRects, 2*40+2)
}
