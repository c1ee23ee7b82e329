package deck

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/patchwork/model"
)

const DefaultPath = "data/patches.txt"

// Load reads a deck file from disk.
func Load(path string, rng *rand.Rand) ([]*model.Patch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, rng)
}

// LoadOrBasic falls back to the basic deck when the file cannot be used.
func LoadOrBasic(path string, rng *rand.Rand, logger log.FieldLogger) []*model.Patch {
	patches, err := Load(path, rng)
	if err != nil || len(patches) == 0 {
		logger.Warnf("deck %s unusable (%v), using the basic deck", path, err)
		return model.BasicDeck(rng)
	}
	logger.Infof("deck %s loaded, %d patches", path, len(patches))
	return patches
}

// Read parses one patch per line:
//   currency price time height width cell...
// with height*width cells given as 0 or 1.
func Read(reader io.Reader, rng *rand.Rand) ([]*model.Patch, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	patches := make([]*model.Patch, 0)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		p, err := parse(strings.Fields(s), rng)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		patches = append(patches, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patches, nil
}

func parse(fields []string, rng *rand.Rand) (*model.Patch, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: %d fields, want at least 5", model.ErrInvalidArgument, len(fields))
	}
	nums := make([]int, 5)
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q is not a number", model.ErrInvalidArgument, i+1, fields[i])
		}
		nums[i] = n
	}
	currency, price, time, height, width := nums[0], nums[1], nums[2], nums[3], nums[4]
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", model.ErrInvalidArgument, width, height)
	}
	cells := fields[5:]
	if len(cells) != height*width {
		return nil, fmt.Errorf("%w: %d cells, want %d", model.ErrInvalidArgument, len(cells), height*width)
	}
	mask := make([][]bool, height)
	for r := range mask {
		mask[r] = make([]bool, width)
		for c := range mask[r] {
			switch cells[r*width+c] {
			case "0":
			case "1":
				mask[r][c] = true
			default:
				return nil, fmt.Errorf("%w: cell %q is neither 0 nor 1", model.ErrInvalidArgument, cells[r*width+c])
			}
		}
	}
	return model.NewPatch(currency, price, time, mask, width, height, randomColor(rng))
}

func randomColor(rng *rand.Rand) color.RGBA {
	channel := func() uint8 { return uint8(50 + rng.Intn(205)) }
	return color.RGBA{R: channel(), G: channel(), B: channel(), A: 0xff}
}
