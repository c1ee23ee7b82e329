package deck

import (
	"errors"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/patchwork/model"
)

func rng() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestRead(t *testing.T) {
	src := `# currency price time height width cells
0 2 1 1 2 1 1

2 10 4 2 3 1 1 1 0 1 0
`
	patches, err := Read(strings.NewReader(src), rng())
	require.NoError(t, err)
	require.Len(t, patches, 2)

	assert.Equal(t, 2, patches[0].Width())
	assert.Equal(t, 1, patches[0].Height())
	assert.Equal(t, 2, patches[0].Price())

	p := patches[1]
	assert.Equal(t, []int{2, 10, 4}, []int{p.Currency(), p.Price(), p.Time()})
	assert.Equal(t, [][]bool{{true, true, true}, {false, true, false}}, p.Mask())
	assert.Equal(t, uint8(0xff), p.Color().A)
}

func TestReadErrorsNameTheLine(t *testing.T) {
	cases := map[string]string{
		"too few fields": "1 2 3 1",
		"not a number":   "1 x 3 1 1 1",
		"bad size":       "1 2 3 0 1",
		"cell count":     "1 2 3 1 2 1",
		"bad cell":       "1 2 3 1 1 2",
		"negative price": "1 -2 3 1 1 1",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader("0 1 1 1 1 1\n"+line+"\n"), rng())
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidArgument), "got %v", err)
			assert.True(t, strings.HasPrefix(err.Error(), "line 2:"), err.Error())
		})
	}
}

func TestShippedDeck(t *testing.T) {
	patches, err := Load(filepath.Join("..", DefaultPath), rng())
	require.NoError(t, err)
	assert.Len(t, patches, 33)
	for _, p := range patches {
		assert.True(t, p.Width() <= 5 && p.Height() <= 5, p.String())
		assert.True(t, p.Cells() > 0)
	}
}

func TestLoadOrBasic(t *testing.T) {
	logger, hook := test.NewNullLogger()

	patches := LoadOrBasic(filepath.Join("testdata", "missing.txt"), rng(), logger)
	assert.Len(t, patches, 40)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)

	dir, err := ioutil.TempDir("", "deck")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "deck.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte("1 1 1 1 1 1\n"), 0644))

	hook.Reset()
	patches = LoadOrBasic(path, rng(), logger)
	assert.Len(t, patches, 1)
	assert.Equal(t, log.InfoLevel, hook.LastEntry().Level)

	require.NoError(t, ioutil.WriteFile(path, []byte("# nothing\n"), 0644))
	patches = LoadOrBasic(path, rng(), logger)
	assert.Len(t, patches, 40, "an empty deck falls back too")
}
